package dto

import (
	"delivery-simulation-service/internal/domain"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalReport(t *testing.T) {
	best := domain.NumericID("1")
	r := &domain.Report{
		Agents: []domain.AgentReport{
			{AgentID: domain.NumericID("1"), PackagesDelivered: 1, TotalDistance: 5, Efficiency: 5},
			{AgentID: domain.StringID("A2"), PackagesDelivered: 0},
			{AgentID: domain.NumericID("3"), PackagesDelivered: 3, TotalDistance: 21.37, Efficiency: 7.12},
		},
		BestAgent: &best,
	}

	out, err := MarshalReport(r)
	require.NoError(t, err)

	want := `{
    "agents": [
        {
            "agent_id": 1,
            "packages_delivered": 1,
            "total_distance": 5.0,
            "efficiency": 5.0
        },
        {
            "agent_id": "A2",
            "packages_delivered": 0,
            "total_distance": 0,
            "efficiency": 0
        },
        {
            "agent_id": 3,
            "packages_delivered": 3,
            "total_distance": 21.37,
            "efficiency": 7.12
        }
    ],
    "best_agent": 1
}`
	assert.Equal(t, want, string(out))
}

func TestMarshalReportWithoutBestAgent(t *testing.T) {
	out, err := MarshalReport(&domain.Report{Agents: []domain.AgentReport{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"agents": [], "best_agent": null}`, string(out))
}

func TestDatasetRequestToDomain(t *testing.T) {
	req := DatasetRequest{
		Warehouses: []WarehouseRecord{{ID: domain.NumericID("1"), X: 1, Y: 2}},
		Agents: []AgentRecord{
			{ID: domain.StringID("a"), X: 0, Y: 0},
			{ID: domain.StringID("b"), X: 5, Y: 5},
		},
		Packages: []PackageRecord{
			{ID: domain.NumericID("10"), WarehouseID: domain.NumericID("1"), DestinationX: 3, DestinationY: 4},
		},
	}

	ds, err := req.ToDomain()
	require.NoError(t, err)

	require.Len(t, ds.Agents, 2)
	assert.Equal(t, domain.StringID("a"), ds.Agents[0].ID)
	assert.Equal(t, domain.Location{X: 5, Y: 5}, ds.Agents[1].Location())

	require.Len(t, ds.Packages, 1)
	assert.Equal(t, domain.Location{X: 3, Y: 4}, ds.Packages[0].Destination)
	assert.Nil(t, ds.Packages[0].AssignedAgent)

	w, err := ds.Warehouse(domain.NumericID("1"))
	require.NoError(t, err)
	assert.Equal(t, domain.Location{X: 1, Y: 2}, w.Location)
}

func TestDatasetRequestToDomainDuplicateWarehouse(t *testing.T) {
	req := DatasetRequest{
		Warehouses: []WarehouseRecord{{ID: domain.NumericID("1")}, {ID: domain.NumericID("1")}},
	}

	_, err := req.ToDomain()
	require.ErrorIs(t, err, domain.ErrDuplicateWarehouse)
}

func TestFloatNumberExponentCutoff(t *testing.T) {
	tests := map[float64]string{
		5:         "5.0",
		21.37:     "21.37",
		1e15:      "1000000000000000.0",
		1e16:      "1e+16",
		1.5e17:    "1.5e+17",
		0.0001:    "0.0001",
		0.000015:  "1.5e-05",
		123456.78: "123456.78",
	}

	for in, want := range tests {
		assert.Equal(t, json.Number(want), floatNumber(in), "floatNumber(%v)", in)
	}
}

func TestMarshalReportEscapesStringIDsAsASCII(t *testing.T) {
	best := domain.StringID("a<b>&c")
	r := &domain.Report{
		Agents: []domain.AgentReport{
			{AgentID: domain.StringID("café"), PackagesDelivered: 1, TotalDistance: 2, Efficiency: 2},
			{AgentID: domain.StringID("😀\x7f"), PackagesDelivered: 0},
		},
		BestAgent: &best,
	}

	out, err := MarshalReport(r)
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, `"agent_id": "caf\u00e9"`)
	assert.Contains(t, s, `"agent_id": "\ud83d\ude00\u007f"`)
	assert.Contains(t, s, `"best_agent": "a<b>&c"`)
}
