package handlers

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"lotsize-planner/internal/api/models"
	"lotsize-planner/internal/config"
	"lotsize-planner/internal/model"
	"lotsize-planner/internal/planner"
	"lotsize-planner/internal/solver"

	"github.com/gin-gonic/gin"
)

// SolveHandler handles solve-related requests
type SolveHandler struct{}

// NewSolveHandler creates a new solve handler
func NewSolveHandler() *SolveHandler {
	return &SolveHandler{}
}

// RunSolve handles POST /api/v1/solve
func (h *SolveHandler) RunSolve(c *gin.Context) {
	var req models.SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	cfg, err := h.buildConfig(req.Config)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	in, err := buildInstance(req.Query, cfg)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_QUERY",
				Message: err.Error(),
			},
		})
		return
	}

	p := planner.New(cfg.Solver.ToOptions())
	result, err := p.Run(in, nil)
	if err != nil {
		writeSolverError(c, err)
		return
	}

	c.JSON(http.StatusOK, buildResponse(result, req.Options.IncludePlan))
}

// CompareSolves handles POST /api/v1/solve/compare
func (h *SolveHandler) CompareSolves(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	comparison := make([]models.ComparisonResult, 0, len(req.Variations))

	for _, variation := range req.Variations {
		merged := h.mergeConfig(req.BaseConfig, variation.Config)

		cfg, err := h.buildConfig(merged)
		if err != nil {
			continue // Skip invalid configs
		}
		in, err := buildInstance(req.Query, cfg)
		if err != nil {
			continue
		}

		p := planner.New(cfg.Solver.ToOptions())
		result, err := p.Run(in, nil)
		if err != nil {
			continue // Skip failed solves
		}

		comparison = append(comparison, models.ComparisonResult{
			Name:    variation.Name,
			Summary: buildSummary(result),
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

// Helper methods

func (h *SolveHandler) buildConfig(req models.PlanConfig) (*config.Config, error) {
	cfg := &config.Config{
		ItemFile: req.ItemFile,
		Item: config.ItemConfig{
			Name:              req.Item.Name,
			SetupCost:         req.Item.SetupCost,
			UnitCost:          req.Item.UnitCost,
			HoldingCost:       req.Item.HoldingCost,
			InitialInventory:  req.Item.InitialInventory,
			CapacityPerPeriod: req.Item.CapacityPerPeriod,
		},
		Solver: config.SolverConfig{
			TimeLimitSeconds: req.Solver.TimeLimitSeconds,
			MIPGap:           req.Solver.MIPGap,
			Threads:          req.Solver.Threads,
		},
	}

	// If item_file is set, load it and merge request overrides onto it.
	// item_file should be just the preset name (e.g., "widgets"); files are
	// looked up in the items directory.
	if cfg.ItemFile != "" {
		itemPath := filepath.Join(ItemDir(), cfg.ItemFile+".yaml")
		loaded, err := config.LoadUnchecked(itemPath)
		if err == nil {
			cfg.Item = config.MergeItem(loaded.Item, cfg.Item)
		} else {
			log.Printf("SolveHandler: Failed to load item file %s: %v", itemPath, err)
		}
	}

	return cfg, nil
}

func (h *SolveHandler) mergeConfig(base, override models.PlanConfig) models.PlanConfig {
	merged := base
	if override.ItemFile != "" {
		merged.ItemFile = override.ItemFile
	}
	if override.Item.Name != "" {
		merged.Item.Name = override.Item.Name
	}
	if override.Item.SetupCost != 0 {
		merged.Item.SetupCost = override.Item.SetupCost
	}
	if override.Item.UnitCost != 0 {
		merged.Item.UnitCost = override.Item.UnitCost
	}
	if override.Item.HoldingCost != 0 {
		merged.Item.HoldingCost = override.Item.HoldingCost
	}
	if override.Item.InitialInventory != 0 {
		merged.Item.InitialInventory = override.Item.InitialInventory
	}
	if override.Item.CapacityPerPeriod != 0 {
		merged.Item.CapacityPerPeriod = override.Item.CapacityPerPeriod
	}
	if override.Solver.TimeLimitSeconds != 0 {
		merged.Solver.TimeLimitSeconds = override.Solver.TimeLimitSeconds
	}
	if override.Solver.MIPGap != 0 {
		merged.Solver.MIPGap = override.Solver.MIPGap
	}
	return merged
}

// buildInstance resolves the effective instance: costs given explicitly in
// the query win, otherwise the item preset's scalar costs apply.
func buildInstance(q models.SolveQuery, cfg *config.Config) (*model.Instance, error) {
	setup := q.SetupCost
	if len(setup) == 0 {
		setup = model.FlexVec{cfg.Item.SetupCost}
	}
	unit := q.UnitCost
	if len(unit) == 0 {
		unit = model.FlexVec{cfg.Item.UnitCost}
	}
	holding := q.HoldingCost
	if len(holding) == 0 {
		holding = model.FlexVec{cfg.Item.HoldingCost}
	}

	initial := q.InitialInventory
	if initial == 0 {
		initial = cfg.Item.InitialInventory
	}

	capacity := q.Capacity
	if len(capacity) == 0 && cfg.Item.CapacityPerPeriod > 0 {
		capacity = make([]float64, len(q.Demand))
		for i := range capacity {
			capacity[i] = cfg.Item.CapacityPerPeriod
		}
	}

	return model.NewInstance(q.Demand, setup, unit, holding, capacity, initial)
}

func writeSolverError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, solver.ErrInfeasible):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INFEASIBLE",
				Message: err.Error(),
			},
		})
	case errors.Is(err, solver.ErrUnbounded):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "UNBOUNDED",
				Message: err.Error(),
			},
		})
	case errors.Is(err, solver.ErrTimeLimit):
		c.JSON(http.StatusGatewayTimeout, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "TIME_LIMIT",
				Message: err.Error(),
			},
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SOLVER_ERROR",
				Message: err.Error(),
			},
		})
	}
}

func buildResponse(result *planner.Result, includePlan bool) models.SolveResponse {
	response := models.SolveResponse{
		Status:  "completed",
		Summary: buildSummary(result),
	}
	if includePlan {
		response.Plan = convertPlan(result.Rows)
	}
	return response
}

func buildSummary(result *planner.Result) models.PlanSummary {
	return models.PlanSummary{
		TotalCost:      result.TotalCost,
		SetupCost:      result.SetupCost,
		ProductionCost: result.ProductionCost,
		HoldingCost:    result.HoldingCost,

		Periods:         len(result.Rows),
		SetupCount:      result.SetupCount,
		TotalProduced:   result.TotalProduced,
		EndingInventory: result.EndingInventory,

		SolverStatus: result.SolverStatus,
		SolveTimeMs:  float64(result.SolveTime) / float64(time.Millisecond),
	}
}

func convertPlan(rows []planner.PlanRow) []models.PlanRow {
	out := make([]models.PlanRow, len(rows))
	for i, r := range rows {
		out[i] = models.PlanRow{
			Index:          r.Index,
			PeriodStart:    r.PeriodStart,
			PeriodEnd:      r.PeriodEnd,
			Item:           r.Item,
			Location:       r.Location,
			Demand:         r.Demand,
			Action:         string(r.Action),
			Setup:          r.Setup,
			Production:     r.Production,
			InventoryStart: r.InventoryStart,
			InventoryEnd:   r.InventoryEnd,
			SetupCost:      r.SetupCost,
			ProductionCost: r.ProductionCost,
			HoldingCost:    r.HoldingCost,
			PeriodCost:     r.PeriodCost,
			CumCost:        r.CumCost,
		}
	}
	return out
}
