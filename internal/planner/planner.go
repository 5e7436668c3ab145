package planner

import (
	"fmt"

	"lotsize-planner/internal/model"
	"lotsize-planner/internal/solver"
)

type Planner struct {
	Options solver.Options
}

func New(opts solver.Options) *Planner { return &Planner{Options: opts} }

// Run solves the instance and expands the raw solution vectors into a
// per-period plan. records, when non-empty, must align with the instance's
// horizon and only contributes timestamps and item/location labels to the
// rows.
func (p *Planner) Run(in *model.Instance, records []model.DemandRecord) (*Result, error) {
	if in == nil {
		return nil, fmt.Errorf("instance is nil")
	}
	if len(records) > 0 && len(records) != in.Horizon() {
		return nil, fmt.Errorf("demand records length %d does not match horizon %d", len(records), in.Horizon())
	}

	sol, err := solver.Solve(in, p.Options)
	if err != nil {
		return nil, err
	}

	t := in.Horizon()
	rows := make([]PlanRow, 0, t)
	cum := 0.0
	invStart := in.InitialInventory

	for i := 0; i < t; i++ {
		setupCost := in.SetupCost[i] * float64(sol.Setup[i])
		prodCost := in.UnitCost[i] * sol.Production[i]
		holdCost := in.HoldingCost[i] * sol.Inventory[i]
		periodCost := setupCost + prodCost + holdCost
		cum += periodCost

		row := PlanRow{
			Index: i,

			Demand: in.Demand[i],

			Action: model.ActionFromQuantity(sol.Production[i]),
			Setup:  sol.Setup[i],

			Production: sol.Production[i],

			InventoryStart: invStart,
			InventoryEnd:   sol.Inventory[i],

			SetupCost:      setupCost,
			ProductionCost: prodCost,
			HoldingCost:    holdCost,

			PeriodCost: periodCost,
			CumCost:    cum,
		}
		if len(records) > 0 {
			row.PeriodStart = records[i].PeriodStart
			row.PeriodEnd = records[i].PeriodEnd
			row.Item = records[i].Item
			row.Location = records[i].Location
		}
		rows = append(rows, row)
		invStart = sol.Inventory[i]
	}

	res := &Result{
		Rows: rows,

		TotalCost:      sol.TotalCost,
		SetupCost:      sol.Breakdown.SetupCost,
		ProductionCost: sol.Breakdown.ProductionCost,
		HoldingCost:    sol.Breakdown.HoldingCost,

		SetupCount:      sol.SetupCount(),
		EndingInventory: sol.Inventory[t-1],

		SolverStatus: sol.Status,
		SolveTime:    sol.SolveTime,
	}
	for _, q := range sol.Production {
		res.TotalProduced += q
	}
	return res, nil
}
