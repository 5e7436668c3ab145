package handlers

import (
	"net/http"

	"lotsize-planner/internal/api/models"

	"github.com/gin-gonic/gin"
)

// FormulationHandler handles formulation-related requests
type FormulationHandler struct{}

// NewFormulationHandler creates a new formulation handler
func NewFormulationHandler() *FormulationHandler {
	return &FormulationHandler{}
}

// ListFormulations handles GET /api/v1/formulations
func (h *FormulationHandler) ListFormulations(c *gin.Context) {
	formulations := []models.FormulationInfo{
		{
			Name: "uncapacitated",
			Description: "Classic Wagner-Whitin lot sizing. Production in a period is " +
				"unlimited; the solver trades setup costs against inventory carrying costs.",
			Parameters: []models.ParameterInfo{
				{
					Name:        "demand",
					Type:        "array",
					Description: "Demand quantity for each period",
				},
				{
					Name:        "setup_cost",
					Type:        "float",
					Description: "Fixed cost incurred whenever production occurs in a period (scalar or per-period array)",
				},
				{
					Name:        "unit_cost",
					Type:        "float",
					Description: "Variable production cost per unit (scalar or per-period array)",
				},
				{
					Name:        "holding_cost",
					Type:        "float",
					Description: "Inventory carrying cost per unit per period (scalar or per-period array)",
				},
				{
					Name:        "initial_inventory",
					Type:        "float",
					Description: "On-hand stock before period 1",
					Default:     0.0,
				},
			},
		},
		{
			Name: "capacitated",
			Description: "Lot sizing with a per-period production capacity limit. " +
				"May be infeasible when cumulative capacity cannot cover cumulative demand.",
			Parameters: []models.ParameterInfo{
				{
					Name:        "capacity",
					Type:        "array",
					Description: "Maximum producible units per period (same length as demand)",
				},
			},
		},
	}

	c.JSON(http.StatusOK, gin.H{"formulations": formulations})
}
