package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"lotsize-planner/internal/analysis"
	"lotsize-planner/internal/api/models"
	"lotsize-planner/internal/data"
	"lotsize-planner/internal/model"
	"lotsize-planner/internal/solver"

	"github.com/gin-gonic/gin"
)

// RankHandler handles ranking-related requests
type RankHandler struct{}

// NewRankHandler creates a new rank handler
func NewRankHandler() *RankHandler {
	return &RankHandler{}
}

// RankItems handles GET /api/v1/rank
func (h *RankHandler) RankItems(c *gin.Context) {
	var req models.RankRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	if err := validateAPIKey(req.APIKey); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_API_KEY",
				Message: err.Error(),
			},
		})
		return
	}

	if _, err := time.Parse("2006-01-02", req.StartDate); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_DATE",
				Message: "start_date must be in YYYY-MM-DD format",
			},
		})
		return
	}
	if _, err := time.Parse("2006-01-02", req.EndDate); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_DATE",
				Message: "end_date must be in YYYY-MM-DD format",
			},
		})
		return
	}

	itemIDs, err := resolveItemIDs(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NO_ITEMS",
				Message: err.Error(),
			},
		})
		return
	}

	client := data.NewForecastClient(req.APIKey, "")

	byItem := make(map[string][]model.DemandRecord)
	for _, itemID := range itemIDs {
		resp, err := client.QueryItemByString(req.SeriesID, itemID, req.StartDate, req.EndDate)
		if err != nil {
			if fErr, ok := err.(*data.ForecastError); ok {
				statusCode := http.StatusBadRequest
				if fErr.StatusCode == http.StatusForbidden || fErr.StatusCode == http.StatusUnauthorized {
					statusCode = http.StatusUnauthorized
				} else if fErr.StatusCode == http.StatusTooManyRequests {
					statusCode = http.StatusTooManyRequests
				}
				c.JSON(statusCode, models.ErrorResponse{
					Error: models.ErrorDetail{
						Code:    fErr.Code,
						Message: fErr.Message,
						Details: map[string]interface{}{
							"status_code": fErr.StatusCode,
							"retry_after": fErr.RetryAfter,
							"item":        itemID,
						},
					},
				})
				return
			}
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "DATA_FETCH_ERROR",
					Message: err.Error(),
				},
			})
			return
		}
		for item, records := range data.GroupByItem(resp) {
			byItem[item] = append(byItem[item], records...)
		}
	}

	params := model.ItemParams{
		SetupCost:   req.SetupCost,
		UnitCost:    req.UnitCost,
		HoldingCost: req.HoldingCost,
	}
	ranked := analysis.RankBySavings(byItem, params, solver.Options{})

	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > len(ranked) {
		limit = len(ranked)
	}

	rankings := make([]models.Ranking, 0, limit)
	for i := 0; i < limit; i++ {
		r := ranked[i]
		rankings = append(rankings, models.Ranking{
			Rank:          i + 1,
			Item:          r.Item,
			Location:      r.Location,
			Periods:       r.Periods,
			TotalDemand:   r.TotalDemand,
			LotForLotCost: r.LotForLotCost,
			OptimalCost:   r.OptimalCost,
			Savings:       r.Savings,
			SetupCount:    r.SetupCount,
		})
	}

	c.JSON(http.StatusOK, models.RankResponse{Rankings: rankings})
}

// resolveItemIDs returns the explicit item_ids list, falling back to the
// curated catalog when none are given.
func resolveItemIDs(req models.RankRequest) ([]string, error) {
	if req.ItemIDs != "" {
		parts := strings.Split(req.ItemIDs, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out, nil
		}
	}

	cat, err := data.LoadCatalog(data.GetDefaultCatalogPath())
	if err != nil {
		return nil, fmt.Errorf("no item_ids given and catalog unavailable: %v", err)
	}
	out := make([]string, 0, len(cat.Items))
	for _, it := range cat.Items {
		if req.SeriesID == "" || it.SeriesID == "" || it.SeriesID == req.SeriesID {
			out = append(out, it.ID)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no items found for series %q", req.SeriesID)
	}
	return out, nil
}

// validateAPIKey performs basic validation on the API key
func validateAPIKey(apiKey string) error {
	if apiKey == "" {
		return fmt.Errorf("API key is required")
	}
	if len(apiKey) < 10 {
		return fmt.Errorf("API key appears to be invalid (too short)")
	}
	if len(strings.TrimSpace(apiKey)) == 0 {
		return fmt.Errorf("API key cannot be empty or whitespace")
	}
	return nil
}
