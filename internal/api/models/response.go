package models

import "time"

// SolveResponse represents the response from a solve run
type SolveResponse struct {
	ID      string      `json:"id,omitempty"`
	Status  string      `json:"status"`
	Summary PlanSummary `json:"summary"`
	Plan    []PlanRow   `json:"plan,omitempty"`
}

// PlanSummary contains aggregated plan results
type PlanSummary struct {
	TotalCost      float64 `json:"total_cost"`
	SetupCost      float64 `json:"setup_cost"`
	ProductionCost float64 `json:"production_cost"`
	HoldingCost    float64 `json:"holding_cost"`

	Periods         int     `json:"periods"`
	SetupCount      int     `json:"setup_count"`
	TotalProduced   float64 `json:"total_produced"`
	EndingInventory float64 `json:"ending_inventory"`

	SolverStatus string  `json:"solver_status"`
	SolveTimeMs  float64 `json:"solve_time_ms"`
}

// PlanRow represents one period in the production plan
type PlanRow struct {
	Index          int       `json:"index"`
	PeriodStart    time.Time `json:"period_start,omitempty"`
	PeriodEnd      time.Time `json:"period_end,omitempty"`
	Item           string    `json:"item,omitempty"`
	Location       string    `json:"location,omitempty"`
	Demand         float64   `json:"demand"`
	Action         string    `json:"action"` // "PRODUCE", "IDLE"
	Setup          int       `json:"setup"`
	Production     float64   `json:"production"`
	InventoryStart float64   `json:"inventory_start"`
	InventoryEnd   float64   `json:"inventory_end"`
	SetupCost      float64   `json:"setup_cost"`
	ProductionCost float64   `json:"production_cost"`
	HoldingCost    float64   `json:"holding_cost"`
	PeriodCost     float64   `json:"period_cost"`
	CumCost        float64   `json:"cum_cost"`
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation
type ComparisonResult struct {
	Name    string      `json:"name"`
	Summary PlanSummary `json:"summary"`
}

// RankResponse represents the response from ranking items
type RankResponse struct {
	Rankings []Ranking `json:"rankings"`
}

// Ranking represents one ranked item
type Ranking struct {
	Rank          int     `json:"rank"`
	Item          string  `json:"item"`
	Location      string  `json:"location"`
	Periods       int     `json:"periods"`
	TotalDemand   float64 `json:"total_demand"`
	LotForLotCost float64 `json:"lot_for_lot_cost"`
	OptimalCost   float64 `json:"optimal_cost"`
	Savings       float64 `json:"savings"`
	SetupCount    int     `json:"setup_count"`
}

// ItemInfo represents information about an item preset
type ItemInfo struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	File  string    `json:"file"`
	Specs ItemSpecs `json:"specs"`
}

// ItemSpecs contains the item's cost structure
type ItemSpecs struct {
	SetupCost         float64 `json:"setup_cost"`
	UnitCost          float64 `json:"unit_cost"`
	HoldingCost       float64 `json:"holding_cost"`
	CapacityPerPeriod float64 `json:"capacity_per_period,omitempty"`
}

// FormulationInfo describes one of the supported model formulations
type FormulationInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes a formulation parameter
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "float", "int", "string", "array"
	Description string      `json:"description"`
	Default     interface{} `json:"default,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
