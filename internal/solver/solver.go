// Package solver builds the lot-sizing MILP and delegates it to HiGHS.
//
// The formulation is the classical fixed-charge (Wagner-Whitin style) model:
//
//	min  sum_t setup_t*y_t + unit_t*prod_t + hold_t*inv_t
//	s.t. inv_{t-1} + prod_t - inv_t = demand_t      (inv_{-1} = initial inventory)
//	     prod_t <= M * y_t
//	     prod_t <= capacity_t                        (capacitated variant)
//	     prod_t, inv_t >= 0, y_t binary
//
// Everything hard (branch-and-bound, cuts, presolve) lives in the solver
// library; this package only lays out columns and rows and maps statuses.
package solver

import (
	"fmt"
	"math"
	"time"

	"lotsize-planner/internal/model"

	"github.com/bartolsthoorn/gohighs/highs"
)

// Solve builds the MILP for the given instance and runs HiGHS on it.
// A non-optimal terminal status is reported as an error wrapping one of the
// sentinel errors in errors.go.
func Solve(in *model.Instance, opts Options) (*Solution, error) {
	if in == nil {
		return nil, fmt.Errorf("instance is nil")
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("invalid instance: %w", err)
	}

	t := in.Horizon()
	m := buildModel(in)

	started := time.Now()
	sol, err := m.Solve(opts.solveOptions()...)
	elapsed := time.Since(started)
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}
	if err := statusError(sol); err != nil {
		return nil, err
	}

	out := &Solution{
		Production: make([]float64, t),
		Inventory:  make([]float64, t),
		Setup:      make([]int, t),
		Status:     sol.Status.String(),
		SolveTime:  elapsed,
		TotalCost:  sol.Objective,
	}
	for i := 0; i < t; i++ {
		out.Production[i] = clampTiny(sol.ColValues[colProd(i, t)])
		out.Inventory[i] = clampTiny(sol.ColValues[colInv(i, t)])
		out.Setup[i] = int(math.Round(sol.ColValues[colSetup(i, t)]))
	}
	out.Breakdown = breakdown(in, out)
	return out, nil
}

// Column layout: production in [0,T), inventory in [T,2T), setups in [2T,3T).
func colProd(i, t int) int  { return i }
func colInv(i, t int) int   { return t + i }
func colSetup(i, t int) int { return 2*t + i }

func buildModel(in *model.Instance) *highs.Model {
	t := in.Horizon()
	n := 3 * t

	m := &highs.Model{
		ColCosts: make([]float64, n),
		ColLower: make([]float64, n),
		ColUpper: make([]float64, n),
		VarTypes: make([]highs.VariableType, n),
	}

	// The linking big-M. With capacities the largest capacity is a natural
	// big-M; without them total demand plus the opening stock bounds any
	// sensible lot.
	bigM := in.TotalDemand() + in.InitialInventory
	if in.Capacitated() {
		bigM = 0
		for _, c := range in.Capacity {
			if c > bigM {
				bigM = c
			}
		}
	}

	for i := 0; i < t; i++ {
		p, v, y := colProd(i, t), colInv(i, t), colSetup(i, t)

		m.ColCosts[p] = in.UnitCost[i]
		m.ColLower[p] = 0
		m.ColUpper[p] = highs.Inf()
		if in.Capacitated() {
			m.ColUpper[p] = in.Capacity[i]
		}
		m.VarTypes[p] = highs.Continuous

		m.ColCosts[v] = in.HoldingCost[i]
		m.ColLower[v] = 0
		m.ColUpper[v] = highs.Inf()
		m.VarTypes[v] = highs.Continuous

		m.ColCosts[y] = in.SetupCost[i]
		m.ColLower[y] = 0
		m.ColUpper[y] = 1
		m.VarTypes[y] = highs.Integer
	}

	for i := 0; i < t; i++ {
		// Inventory balance: inv_{i-1} + prod_i - inv_i = demand_i.
		// The opening stock folds into period 1's right-hand side.
		rhs := in.Demand[i]
		cols := []int{colProd(i, t), colInv(i, t)}
		vals := []float64{1, -1}
		if i == 0 {
			rhs -= in.InitialInventory
		} else {
			cols = append(cols, colInv(i-1, t))
			vals = append(vals, 1)
		}
		m.AddSparseRow(rhs, cols, vals, rhs)
	}

	for i := 0; i < t; i++ {
		// Setup linking: prod_i - M*y_i <= 0.
		m.AddSparseRow(highs.NegInf(),
			[]int{colProd(i, t), colSetup(i, t)},
			[]float64{1, -bigM},
			0)
	}

	return m
}

func breakdown(in *model.Instance, sol *Solution) CostBreakdown {
	var b CostBreakdown
	for i := range in.Demand {
		b.SetupCost += in.SetupCost[i] * float64(sol.Setup[i])
		b.ProductionCost += in.UnitCost[i] * sol.Production[i]
		b.HoldingCost += in.HoldingCost[i] * sol.Inventory[i]
	}
	return b
}

// clampTiny zeroes out solver round-off noise on variables bounded below at 0.
func clampTiny(x float64) float64 {
	if math.Abs(x) < 1e-9 {
		return 0
	}
	return x
}
