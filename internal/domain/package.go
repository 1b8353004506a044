package domain

// Represents a single delivery unit handled by the system.
// A Package is picked up at its warehouse and dropped off at Destination.
// AssignedAgent is populated exactly once by package assignment and is a
// non-owning reference into the run's agent list.
type Package struct {
	ID            ID
	WarehouseID   ID
	Destination   Location
	AssignedAgent *Agent
}
