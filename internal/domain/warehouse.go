package domain

// Fixed pickup point referenced by packages. Immutable after load.
type Warehouse struct {
	ID       ID
	Location Location
}
