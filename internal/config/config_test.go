package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_Inline(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `
item:
  name: widgets
  setup_cost: 1000
  unit_cost: 50
  holding_cost: 2
solver:
  time_limit_seconds: 30
  mip_gap: 0.001
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Item.Name != "widgets" || c.Item.SetupCost != 1000 {
		t.Errorf("item not loaded: %+v", c.Item)
	}
	opts := c.Solver.ToOptions()
	if opts.TimeLimitSeconds != 30 || opts.MIPGap != 0.001 {
		t.Errorf("solver options not mapped: %+v", opts)
	}
}

func TestLoad_ItemFileRelativeToConfigDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "widgets.yaml", `
item:
  name: widgets
  setup_cost: 1000
  unit_cost: 50
  holding_cost: 2
  capacity_per_period: 300
`)
	path := writeFile(t, dir, "config.yaml", `
item_file: widgets.yaml
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Item.Name != "widgets" || c.Item.CapacityPerPeriod != 300 {
		t.Errorf("item file not resolved relative to config dir: %+v", c.Item)
	}
}

func TestLoad_ItemOverridesItemFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "widgets.yaml", `
item:
  name: widgets
  setup_cost: 1000
  unit_cost: 50
  holding_cost: 2
`)
	path := writeFile(t, dir, "config.yaml", `
item_file: widgets.yaml
item:
  setup_cost: 750
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Item.SetupCost != 750 {
		t.Errorf("override not applied: SetupCost = %f", c.Item.SetupCost)
	}
	if c.Item.Name != "widgets" || c.Item.UnitCost != 50 {
		t.Errorf("base fields lost in merge: %+v", c.Item)
	}
}

func TestLoad_InvalidItem(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `
item:
  setup_cost: -5
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a negative setup cost")
	}
}

func TestLoad_InvalidSolver(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `
solver:
  time_limit_seconds: -1
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a negative time limit")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestMergeItem(t *testing.T) {
	base := ItemConfig{Name: "widgets", SetupCost: 1000, UnitCost: 50, HoldingCost: 2}
	got := MergeItem(base, ItemConfig{HoldingCost: 4, InitialInventory: 25})
	if got.HoldingCost != 4 || got.InitialInventory != 25 {
		t.Errorf("overrides not applied: %+v", got)
	}
	if got.Name != "widgets" || got.SetupCost != 1000 {
		t.Errorf("base fields lost: %+v", got)
	}
}
