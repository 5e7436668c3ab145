package tool

import (
	"context"
	"encoding/json"
	"testing"

	"lotsize-planner/internal/solver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleQuery = `{
	"demand": [100, 150, 80, 130],
	"setup_cost": 1000,
	"unit_cost": 50,
	"holding_cost": 2
}`

func TestDefaultRegistry_ListsFourTools(t *testing.T) {
	r := DefaultRegistry(solver.Options{})
	tools := r.List()
	require.Len(t, tools, 4)

	names := make([]string, len(tools))
	for i, tl := range tools {
		names[i] = tl.Name
		assert.NotEmpty(t, tl.Description, "%s has no description", tl.Name)
		assert.Equal(t, "object", tl.InputSchema.Type)
		assert.Contains(t, tl.InputSchema.Required, "demand")
	}
	// List is sorted by name.
	assert.Equal(t, []string{
		"solve_capacitated_lot_sizing",
		"solve_capacitated_lot_sizing_basic",
		"solve_lot_sizing",
		"solve_lot_sizing_basic",
	}, names)
}

func TestCall_SolveLotSizing(t *testing.T) {
	r := DefaultRegistry(solver.Options{})

	raw, err := r.Call(context.Background(), "solve_lot_sizing", json.RawMessage(sampleQuery))
	require.NoError(t, err)

	var out SolveOutput
	require.NoError(t, json.Unmarshal(raw, &out))

	assert.InDelta(t, 25400, out.TotalCost, 1e-6)
	require.Len(t, out.ProductionPlan, 4)
	assert.InDelta(t, 460, out.ProductionPlan[0], 1e-6)
	assert.Equal(t, []int{1, 0, 0, 0}, out.Setup)
	assert.InDelta(t, 0, out.Inventory[3], 1e-6)
}

func TestCall_BasicOutputShape(t *testing.T) {
	r := DefaultRegistry(solver.Options{})

	raw, err := r.Call(context.Background(), "solve_lot_sizing_basic", json.RawMessage(sampleQuery))
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Contains(t, fields, "production_plan")
	assert.Contains(t, fields, "total_cost")
	assert.NotContains(t, fields, "inventory")
	assert.NotContains(t, fields, "setup")
}

func TestCall_Capacitated(t *testing.T) {
	r := DefaultRegistry(solver.Options{})

	query := `{
		"demand": [100, 150, 80, 130],
		"setup_cost": 1000,
		"unit_cost": 50,
		"holding_cost": 2,
		"capacity": [300, 300, 300, 300]
	}`
	raw, err := r.Call(context.Background(), "solve_capacitated_lot_sizing", json.RawMessage(query))
	require.NoError(t, err)

	var out SolveOutput
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.InDelta(t, 25560, out.TotalCost, 1e-6)
}

func TestCall_CapacitatedRequiresCapacity(t *testing.T) {
	r := DefaultRegistry(solver.Options{})

	_, err := r.Call(context.Background(), "solve_capacitated_lot_sizing", json.RawMessage(sampleQuery))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capacity")
}

func TestCall_UncapacitatedIgnoresCapacity(t *testing.T) {
	r := DefaultRegistry(solver.Options{})

	// A capacity field on the uncapacitated tool is dropped, not an error.
	query := `{
		"demand": [100, 150, 80, 130],
		"setup_cost": 1000,
		"unit_cost": 50,
		"holding_cost": 2,
		"capacity": [300, 300, 300, 300]
	}`
	raw, err := r.Call(context.Background(), "solve_lot_sizing", json.RawMessage(query))
	require.NoError(t, err)

	var out SolveOutput
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.InDelta(t, 25400, out.TotalCost, 1e-6)
}

func TestCall_UnknownTool(t *testing.T) {
	r := DefaultRegistry(solver.Options{})
	_, err := r.Call(context.Background(), "solve_everything", json.RawMessage(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tool")
}

func TestCall_InvalidJSON(t *testing.T) {
	r := DefaultRegistry(solver.Options{})
	_, err := r.Call(context.Background(), "solve_lot_sizing", json.RawMessage(`{not json`))
	require.Error(t, err)
}

func TestCall_InvalidQuery(t *testing.T) {
	r := DefaultRegistry(solver.Options{})
	_, err := r.Call(context.Background(), "solve_lot_sizing", json.RawMessage(`{
		"demand": [],
		"setup_cost": 1000,
		"unit_cost": 50,
		"holding_cost": 2
	}`))
	require.Error(t, err)
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	noop := func(ctx context.Context, in json.RawMessage) (json.RawMessage, error) { return in, nil }

	require.NoError(t, r.Register(Tool{Name: "a", Handler: noop}))
	assert.Error(t, r.Register(Tool{Name: "a", Handler: noop}), "duplicate name")
	assert.Error(t, r.Register(Tool{Handler: noop}), "missing name")
	assert.Error(t, r.Register(Tool{Name: "b"}), "missing handler")
}
