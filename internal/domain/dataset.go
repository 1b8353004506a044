package domain

import "fmt"

// Dataset is the full in-memory input of one simulation run.
// Agents and Packages keep load order; that order drives assignment,
// simulation and reporting.
type Dataset struct {
	Warehouses map[IDKey]*Warehouse
	Agents     []*Agent
	Packages   []*Package

	warehouseOrder []IDKey
}

// NewDataset builds a Dataset, registering warehouses by id.
// Warehouse ids must be unique.
func NewDataset(warehouses []Warehouse, agents []*Agent, packages []*Package) (*Dataset, error) {
	registry := make(map[IDKey]*Warehouse, len(warehouses))
	order := make([]IDKey, 0, len(warehouses))
	for i := range warehouses {
		w := warehouses[i]
		key := w.ID.Key()
		if _, ok := registry[key]; ok {
			return nil, fmt.Errorf("new dataset: warehouse %s: %w", w.ID, ErrDuplicateWarehouse)
		}
		registry[key] = &w
		order = append(order, key)
	}

	if agents == nil {
		agents = []*Agent{}
	}
	if packages == nil {
		packages = []*Package{}
	}

	return &Dataset{
		Warehouses: registry,
		Agents:     agents,
		Packages:   packages,

		warehouseOrder: order,
	}, nil
}

// Warehouse looks up a warehouse by id. Numeric ids match by value.
func (d *Dataset) Warehouse(id ID) (*Warehouse, error) {
	w, ok := d.Warehouses[id.Key()]
	if !ok {
		return nil, fmt.Errorf("warehouse %s: %w", id, ErrUnknownWarehouse)
	}
	return w, nil
}

// OrderedWarehouses returns the warehouses in load order.
func (d *Dataset) OrderedWarehouses() []*Warehouse {
	out := make([]*Warehouse, 0, len(d.warehouseOrder))
	for _, key := range d.warehouseOrder {
		out = append(out, d.Warehouses[key])
	}
	return out
}
