package main

import (
	"bytes"
	"context"
	"delivery-simulation-service/internal/config"
	"delivery-simulation-service/internal/domain"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWritesReport(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "data.json")
	reportPath := filepath.Join(dir, "report.json")

	require.NoError(t, os.WriteFile(dataPath, []byte(`{
		"warehouses": [{"id": 1, "x": 0, "y": 0}],
		"agents": [{"id": 1, "x": 0, "y": 0}, {"id": 2, "x": 10, "y": 10}],
		"packages": [
			{"id": 1, "warehouse_id": 1, "destination_x": 3, "destination_y": 4},
			{"id": 2, "warehouse_id": 1, "destination_x": 1, "destination_y": 0}
		]
	}`), 0o644))

	var stdout bytes.Buffer
	cfg := config.Config{DataPath: dataPath, ReportPath: reportPath}
	require.NoError(t, run(context.Background(), cfg, &stdout))
	assert.Equal(t, "Delivery simulation completed. Report generated.\n", stdout.String())

	got, err := os.ReadFile(reportPath)
	require.NoError(t, err)

	// Agent 1: 0 + 5 for the first package, then 5 back to the hub + 1.
	assert.JSONEq(t, `{
		"agents": [
			{"agent_id": 1, "packages_delivered": 2, "total_distance": 11.0, "efficiency": 5.5},
			{"agent_id": 2, "packages_delivered": 0, "total_distance": 0, "efficiency": 0}
		],
		"best_agent": 1
	}`, string(got))
}

func TestRunConfigurationError(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "data.yaml")
	reportPath := filepath.Join(dir, "report.json")

	require.NoError(t, os.WriteFile(dataPath, []byte(`
warehouses: []
agents: [{id: 1, x: 0, y: 0}]
packages: [{id: 1, warehouse_id: 7, destination_x: 0, destination_y: 0}]
`), 0o644))

	err := run(context.Background(), config.Config{DataPath: dataPath, ReportPath: reportPath}, &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, domain.IsConfigurationError(err))

	_, statErr := os.Stat(reportPath)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}
