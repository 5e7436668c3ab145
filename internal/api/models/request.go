package models

import "lotsize-planner/internal/model"

// SolveRequest represents the request body for solving a lot-sizing query
type SolveRequest struct {
	Query   SolveQuery   `json:"query" binding:"required"`
	Config  PlanConfig   `json:"config,omitempty"`
	Options SolveOptions `json:"options,omitempty"`
}

// SolveQuery is the lot-sizing instance as submitted by the caller.
// Cost fields accept a scalar or a per-period array; when omitted they fall
// back to the item preset referenced by the config.
type SolveQuery struct {
	Demand           []float64     `json:"demand" binding:"required"`
	SetupCost        model.FlexVec `json:"setup_cost,omitempty"`
	UnitCost         model.FlexVec `json:"unit_cost,omitempty"`
	HoldingCost      model.FlexVec `json:"holding_cost,omitempty"`
	InitialInventory float64       `json:"initial_inventory,omitempty"`
	Capacity         []float64     `json:"capacity,omitempty"`
}

// PlanConfig contains item and solver configuration
type PlanConfig struct {
	ItemFile string       `json:"item_file,omitempty"`
	Item     ItemConfig   `json:"item,omitempty"`
	Solver   SolverConfig `json:"solver,omitempty"`
}

// ItemConfig defines item cost parameters
type ItemConfig struct {
	Name              string  `json:"name,omitempty"`
	SetupCost         float64 `json:"setup_cost,omitempty"`
	UnitCost          float64 `json:"unit_cost,omitempty"`
	HoldingCost       float64 `json:"holding_cost,omitempty"`
	InitialInventory  float64 `json:"initial_inventory,omitempty"`
	CapacityPerPeriod float64 `json:"capacity_per_period,omitempty"`
}

// SolverConfig defines solver options
type SolverConfig struct {
	TimeLimitSeconds float64 `json:"time_limit_seconds,omitempty"`
	MIPGap           float64 `json:"mip_gap,omitempty"`
	Threads          int     `json:"threads,omitempty"`
}

// SolveOptions contains optional solve parameters
type SolveOptions struct {
	IncludePlan bool `json:"include_plan,omitempty"` // default: false
}

// CompareRequest represents a request to compare multiple cost scenarios
// against the same demand vector
type CompareRequest struct {
	Query      SolveQuery      `json:"query" binding:"required"`
	BaseConfig PlanConfig      `json:"base_config"`
	Variations []PlanVariation `json:"variations" binding:"required"`
}

// PlanVariation defines a variation to test
type PlanVariation struct {
	Name   string     `json:"name" binding:"required"`
	Config PlanConfig `json:"config"`
}

// RankRequest represents a request to rank items by batching savings
type RankRequest struct {
	APIKey    string `form:"api_key" binding:"required"` // forecast feed API key
	SeriesID  string `form:"series_id" binding:"required"`
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
	ItemIDs   string `form:"item_ids,omitempty"` // comma-separated; default: catalog
	Limit     int    `form:"limit,omitempty"`    // default: 10

	// Cost structure applied to every ranked item.
	SetupCost   float64 `form:"setup_cost,omitempty"`
	UnitCost    float64 `form:"unit_cost,omitempty"`
	HoldingCost float64 `form:"holding_cost,omitempty"`
}
