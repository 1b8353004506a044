package domain

// Mutable per-agent simulation state.
// TotalDistance and PackagesDelivered only grow within a run.
type AgentState struct {
	Location          Location
	TotalDistance     float64
	PackagesDelivered int
}

// Delivery agent with its current state.
type Agent struct {
	ID    ID
	State AgentState
}

func NewAgent(id ID, start Location) *Agent {
	return &Agent{
		ID:    id,
		State: AgentState{Location: start},
	}
}

// Location returns the agent's current position.
func (a *Agent) Location() Location { return a.State.Location }

// Deliver applies a single delivery to the agent's state.
func (a *Agent) Deliver(w Warehouse, p Package) {
	a.State = ApplyDelivery(a.State, w, p)
}

// ApplyDelivery returns the agent state after travelling to the warehouse,
// then to the package destination. The input state is not modified.
func ApplyDelivery(s AgentState, w Warehouse, p Package) AgentState {
	toWarehouse := s.Location.DistanceTo(w.Location)
	toDestination := w.Location.DistanceTo(p.Destination)

	return AgentState{
		Location:          p.Destination,
		TotalDistance:     s.TotalDistance + toWarehouse + toDestination,
		PackagesDelivered: s.PackagesDelivered + 1,
	}
}
