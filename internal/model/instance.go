package model

import (
	"errors"
	"fmt"
)

// Instance is a fully normalized single-item lot-sizing instance.
// Units:
// - Demand: units per period
// - SetupCost: $ per production run, per period
// - UnitCost: $ per unit produced, per period
// - HoldingCost: $ per unit of ending inventory, per period
// - Capacity: max producible units per period (nil = uncapacitated)
// - InitialInventory: units on hand before period 1
type Instance struct {
	Demand           []float64
	SetupCost        []float64
	UnitCost         []float64
	HoldingCost      []float64
	Capacity         []float64
	InitialInventory float64
}

// Horizon returns the number of planning periods T.
func (in *Instance) Horizon() int { return len(in.Demand) }

// Capacitated reports whether per-period production limits apply.
func (in *Instance) Capacitated() bool { return len(in.Capacity) > 0 }

// TotalDemand returns the sum of all period demands.
func (in *Instance) TotalDemand() float64 {
	sum := 0.0
	for _, d := range in.Demand {
		sum += d
	}
	return sum
}

func NewInstance(demand []float64, setup, unit, holding FlexVec, capacity []float64, initialInventory float64) (*Instance, error) {
	t := len(demand)
	in := &Instance{
		Demand:           demand,
		SetupCost:        setup.Expand(t),
		UnitCost:         unit.Expand(t),
		HoldingCost:      holding.Expand(t),
		Capacity:         capacity,
		InitialInventory: initialInventory,
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return in, nil
}

func (in *Instance) Validate() error {
	t := len(in.Demand)
	if t == 0 {
		return errors.New("demand must have at least one period")
	}
	for i, d := range in.Demand {
		if d < 0 {
			return fmt.Errorf("demand[%d] must be >= 0", i)
		}
	}
	if err := checkCostVec("setup_cost", in.SetupCost, t); err != nil {
		return err
	}
	if err := checkCostVec("unit_cost", in.UnitCost, t); err != nil {
		return err
	}
	if err := checkCostVec("holding_cost", in.HoldingCost, t); err != nil {
		return err
	}
	if in.Capacitated() {
		if len(in.Capacity) != t {
			return fmt.Errorf("capacity must have the same length as demand (got %d, want %d)", len(in.Capacity), t)
		}
		for i, c := range in.Capacity {
			if c < 0 {
				return fmt.Errorf("capacity[%d] must be >= 0", i)
			}
		}
	}
	if in.InitialInventory < 0 {
		return errors.New("initial_inventory must be >= 0")
	}
	return nil
}

func checkCostVec(name string, v []float64, t int) error {
	if len(v) != t {
		return fmt.Errorf("%s must be a scalar or have the same length as demand (got %d, want %d)", name, len(v), t)
	}
	for i, x := range v {
		if x < 0 {
			return fmt.Errorf("%s[%d] must be >= 0", name, i)
		}
	}
	return nil
}
