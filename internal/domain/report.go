package domain

// Per-agent delivery statistics.
// TotalDistance and Efficiency are rounded to two decimal places.
type AgentReport struct {
	AgentID           ID
	PackagesDelivered int
	TotalDistance     float64
	Efficiency        float64
}

// Represents the outcome of a simulation run.
// BestAgent is nil when no agent delivered anything.
type Report struct {
	Agents    []AgentReport
	BestAgent *ID
}
