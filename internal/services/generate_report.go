package services

import (
	"delivery-simulation-service/internal/domain"
	"strconv"
)

// GenerateReport aggregates per-agent statistics in agent order.
//
// Efficiency is distance per delivered package (0 for idle agents). The best
// agent has the strictly lowest unrounded efficiency among agents that delivered
// at least one package; the first such agent wins ties.
func GenerateReport(agents []*domain.Agent) *domain.Report {
	report := &domain.Report{
		Agents: make([]domain.AgentReport, 0, len(agents)),
	}

	var bestEfficiency float64
	for _, a := range agents {
		s := a.State
		efficiency := Efficiency(s)

		report.Agents = append(report.Agents, domain.AgentReport{
			AgentID:           a.ID,
			PackagesDelivered: s.PackagesDelivered,
			TotalDistance:     Round2(s.TotalDistance),
			Efficiency:        Round2(efficiency),
		})

		if s.PackagesDelivered == 0 {
			continue
		}
		if report.BestAgent == nil || efficiency < bestEfficiency {
			id := a.ID
			report.BestAgent = &id
			bestEfficiency = efficiency
		}
	}

	return report
}

// Efficiency returns total distance per delivered package, or 0 when the agent
// delivered nothing.
func Efficiency(s domain.AgentState) float64 {
	if s.PackagesDelivered == 0 {
		return 0
	}
	return s.TotalDistance / float64(s.PackagesDelivered)
}

// Round2 rounds to two decimal places using round-half-even on the exact
// binary value, so 2.675 (stored as 2.67499…) becomes 2.67 and 0.125 becomes 0.12.
func Round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}
