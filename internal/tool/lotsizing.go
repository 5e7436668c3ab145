package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"lotsize-planner/internal/model"
	"lotsize-planner/internal/solver"
)

// SolveInput is the JSON query shape shared by all lot-sizing tools.
// Cost fields accept a scalar (applied to every period) or a per-period array.
type SolveInput struct {
	Demand           []float64     `json:"demand"`
	SetupCost        model.FlexVec `json:"setup_cost"`
	UnitCost         model.FlexVec `json:"unit_cost"`
	HoldingCost      model.FlexVec `json:"holding_cost"`
	InitialInventory float64       `json:"initial_inventory"`
	Capacity         []float64     `json:"capacity,omitempty"`
}

// SolveOutput matches the detailed result shape of the original tools:
// production plan, ending inventory, setup flags and the optimal cost.
type SolveOutput struct {
	ProductionPlan []float64 `json:"production_plan"`
	Inventory      []float64 `json:"inventory"`
	Setup          []int     `json:"setup"`
	TotalCost      float64   `json:"total_cost"`
}

// BasicOutput is the (production_plan, total_cost) shape for quick use.
type BasicOutput struct {
	ProductionPlan []float64 `json:"production_plan"`
	TotalCost      float64   `json:"total_cost"`
}

// DefaultRegistry registers the four lot-sizing tools against a shared set of
// solver options.
func DefaultRegistry(opts solver.Options) *Registry {
	r := NewRegistry()
	// Registration only fails on duplicate or malformed definitions, which
	// would be a programming error here.
	mustRegister(r, Tool{
		Name: "solve_lot_sizing",
		Description: "Compute the optimal single-item lot-sizing plan " +
			"(fixed setup cost, no capacity limit) and return the production plan, " +
			"ending inventory, setup flags, and total cost.",
		InputSchema: solveSchema(false),
		Handler:     solveHandler(opts, false, false),
	})
	mustRegister(r, Tool{
		Name: "solve_lot_sizing_basic",
		Description: "Compute the optimal single-item lot-sizing plan and return " +
			"only the production plan and total cost.",
		InputSchema: solveSchema(false),
		Handler:     solveHandler(opts, false, true),
	})
	mustRegister(r, Tool{
		Name: "solve_capacitated_lot_sizing",
		Description: "Compute the optimal single-item lot-sizing plan with a " +
			"per-period production capacity limit and return the production plan, " +
			"ending inventory, setup flags, and total cost.",
		InputSchema: solveSchema(true),
		Handler:     solveHandler(opts, true, false),
	})
	mustRegister(r, Tool{
		Name: "solve_capacitated_lot_sizing_basic",
		Description: "Compute the optimal capacitated lot-sizing plan and return " +
			"only the production plan and total cost.",
		InputSchema: solveSchema(true),
		Handler:     solveHandler(opts, true, true),
	})
	return r
}

func mustRegister(r *Registry, t Tool) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

func solveHandler(opts solver.Options, capacitated, basic bool) Handler {
	return func(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
		var q SolveInput
		if err := json.Unmarshal(input, &q); err != nil {
			return nil, fmt.Errorf("invalid input: %w", err)
		}
		if capacitated && len(q.Capacity) == 0 {
			return nil, fmt.Errorf("'capacity' is required for the capacitated tool")
		}
		if !capacitated {
			q.Capacity = nil
		}

		in, err := model.NewInstance(q.Demand, q.SetupCost, q.UnitCost, q.HoldingCost, q.Capacity, q.InitialInventory)
		if err != nil {
			return nil, err
		}

		sol, err := solver.Solve(in, opts)
		if err != nil {
			return nil, err
		}

		if basic {
			return marshalOutput(BasicOutput{
				ProductionPlan: sol.Production,
				TotalCost:      sol.TotalCost,
			})
		}
		return marshalOutput(SolveOutput{
			ProductionPlan: sol.Production,
			Inventory:      sol.Inventory,
			Setup:          sol.Setup,
			TotalCost:      sol.TotalCost,
		})
	}
}

func marshalOutput(v any) (json.RawMessage, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}
	return out, nil
}

func solveSchema(capacitated bool) Schema {
	num := func(desc string) Property { return Property{Type: "number", Description: desc} }
	props := map[string]Property{
		"demand": {
			Type:        "array",
			Items:       &Property{Type: "number"},
			Description: "Demand quantity for each period (length T).",
		},
		"setup_cost":   num("Fixed cost incurred whenever production occurs in a period. Scalar or per-period array."),
		"unit_cost":    num("Variable production cost per unit produced. Scalar or per-period array."),
		"holding_cost": num("Inventory carrying cost per unit per period. Scalar or per-period array."),
		"initial_inventory": num("On-hand stock before period 1. Defaults to 0."),
	}
	required := []string{"demand", "setup_cost", "unit_cost", "holding_cost"}
	if capacitated {
		props["capacity"] = Property{
			Type:        "array",
			Items:       &Property{Type: "number"},
			Description: "Maximum producible units per period (same length as demand).",
		}
		required = append(required, "capacity")
	}
	return Schema{Type: "object", Properties: props, Required: required}
}
