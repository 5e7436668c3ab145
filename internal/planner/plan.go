package planner

import (
	"time"

	"lotsize-planner/internal/model"
)

// PlanRow is one row of per-period output.
// This is the primary artifact for "what the plan does" in each period.
type PlanRow struct {
	Index int

	PeriodStart time.Time
	PeriodEnd   time.Time

	Item     string
	Location string

	Demand float64

	Action model.Action
	Setup  int

	Production float64

	InventoryStart float64
	InventoryEnd   float64

	SetupCost      float64
	ProductionCost float64
	HoldingCost    float64

	PeriodCost float64
	CumCost    float64
}

type Result struct {
	Rows []PlanRow

	TotalCost      float64
	SetupCost      float64
	ProductionCost float64
	HoldingCost    float64

	SetupCount     int
	TotalProduced  float64
	EndingInventory float64

	SolverStatus string
	SolveTime    time.Duration
}
