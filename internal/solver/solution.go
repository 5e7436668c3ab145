package solver

import "time"

// Solution is the solved lot-sizing plan in raw vector form.
type Solution struct {
	// Production is the quantity produced in each period.
	Production []float64
	// Inventory is the ending inventory of each period.
	Inventory []float64
	// Setup is the 0/1 production flag for each period.
	Setup []int

	// TotalCost is the objective value (setup + production + holding).
	TotalCost float64
	Breakdown CostBreakdown

	// Status is the solver's terminal status string, e.g. "Optimal".
	Status    string
	SolveTime time.Duration
}

// CostBreakdown splits the objective into its three components.
type CostBreakdown struct {
	SetupCost      float64
	ProductionCost float64
	HoldingCost    float64
}

// SetupCount returns the number of periods with a production run.
func (s *Solution) SetupCount() int {
	n := 0
	for _, y := range s.Setup {
		n += y
	}
	return n
}
