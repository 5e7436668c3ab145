package model

import "errors"

// ItemParams defines the cost structure of a single item.
// These are the scalar defaults applied to every period; per-period vectors
// in a query override them.
type ItemParams struct {
	SetupCost        float64
	UnitCost         float64
	HoldingCost      float64
	InitialInventory float64
	// CapacityPerPeriod caps production in every period. 0 = uncapacitated.
	CapacityPerPeriod float64
}

// Item is a convenience wrapper bundling a name with its params.
type Item struct {
	Name   string
	Params ItemParams
}

func NewItem(name string, params ItemParams) (*Item, error) {
	it := &Item{Name: name, Params: params}
	if err := it.Validate(); err != nil {
		return nil, err
	}
	return it, nil
}

func (it *Item) Validate() error {
	p := it.Params
	if p.SetupCost < 0 {
		return errors.New("SetupCost must be >= 0")
	}
	if p.UnitCost < 0 {
		return errors.New("UnitCost must be >= 0")
	}
	if p.HoldingCost < 0 {
		return errors.New("HoldingCost must be >= 0")
	}
	if p.InitialInventory < 0 {
		return errors.New("InitialInventory must be >= 0")
	}
	if p.CapacityPerPeriod < 0 {
		return errors.New("CapacityPerPeriod must be >= 0")
	}
	return nil
}

// Instance builds a lot-sizing instance from this item's params and a demand
// vector. The item's scalar costs are broadcast over the horizon.
func (it *Item) Instance(demand []float64) (*Instance, error) {
	var capacity []float64
	if it.Params.CapacityPerPeriod > 0 {
		capacity = make([]float64, len(demand))
		for i := range capacity {
			capacity[i] = it.Params.CapacityPerPeriod
		}
	}
	return NewInstance(
		demand,
		FlexVec{it.Params.SetupCost},
		FlexVec{it.Params.UnitCost},
		FlexVec{it.Params.HoldingCost},
		capacity,
		it.Params.InitialInventory,
	)
}
