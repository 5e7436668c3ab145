package planner

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"lotsize-planner/internal/model"
	"lotsize-planner/internal/solver"
)

func testInstance(t *testing.T) *model.Instance {
	t.Helper()
	// Zero demand in period 2; one batch in period 1 beats two setups.
	in, err := model.NewInstance(
		[]float64{10, 0, 20},
		model.FlexVec{100}, model.FlexVec{1}, model.FlexVec{0.5},
		nil, 0,
	)
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}
	return in
}

func TestPlannerRun(t *testing.T) {
	res, err := New(solver.Options{}).Run(testInstance(t), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(res.Rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(res.Rows))
	}
	if got := res.TotalCost; got != 150 {
		t.Errorf("TotalCost = %f, want 150", got)
	}
	if res.SetupCount != 1 {
		t.Errorf("SetupCount = %d, want 1", res.SetupCount)
	}
	if res.TotalProduced != 30 {
		t.Errorf("TotalProduced = %f, want 30", res.TotalProduced)
	}
	if res.EndingInventory != 0 {
		t.Errorf("EndingInventory = %f, want 0", res.EndingInventory)
	}

	first := res.Rows[0]
	if first.Action != model.ActionProduce || first.Production != 30 {
		t.Errorf("period 0: action=%s production=%f, want PRODUCE 30", first.Action, first.Production)
	}
	if first.InventoryStart != 0 || first.InventoryEnd != 20 {
		t.Errorf("period 0 inventory: start=%f end=%f, want 0 and 20", first.InventoryStart, first.InventoryEnd)
	}

	second := res.Rows[1]
	if second.Action != model.ActionIdle {
		t.Errorf("period 1: action=%s, want IDLE", second.Action)
	}
	if second.InventoryStart != 20 {
		t.Errorf("period 1 InventoryStart = %f, want 20", second.InventoryStart)
	}

	last := res.Rows[2]
	if last.InventoryEnd != 0 {
		t.Errorf("period 2 InventoryEnd = %f, want 0", last.InventoryEnd)
	}
	if last.CumCost != res.TotalCost {
		t.Errorf("final CumCost = %f, want TotalCost %f", last.CumCost, res.TotalCost)
	}
}

func TestPlannerRun_RecordsLabelRows(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	records := make([]model.DemandRecord, 3)
	for i := range records {
		records[i] = model.DemandRecord{
			PeriodStart: start.AddDate(0, 0, i*7),
			PeriodEnd:   start.AddDate(0, 0, (i+1)*7),
			Item:        "WIDGET-A",
			Location:    "ATLANTA",
		}
	}

	res, err := New(solver.Options{}).Run(testInstance(t), records)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.Rows[1].Item != "WIDGET-A" || res.Rows[1].Location != "ATLANTA" {
		t.Errorf("row labels not carried through: %+v", res.Rows[1])
	}
	if !res.Rows[2].PeriodStart.Equal(start.AddDate(0, 0, 14)) {
		t.Errorf("row 2 PeriodStart = %v", res.Rows[2].PeriodStart)
	}
}

func TestPlannerRun_RecordsLengthMismatch(t *testing.T) {
	records := []model.DemandRecord{{Item: "WIDGET-A"}}
	_, err := New(solver.Options{}).Run(testInstance(t), records)
	if err == nil {
		t.Fatal("expected an error for mismatched records length")
	}
}

func TestWritePlanCSV(t *testing.T) {
	res, err := New(solver.Options{}).Run(testInstance(t), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	path := filepath.Join(t.TempDir(), "plan.csv")
	if err := WritePlanCSV(path, res.Rows); err != nil {
		t.Fatalf("WritePlanCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	all, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("got %d csv rows, want header + 3", len(all))
	}
	if all[0][0] != "index" || all[0][15] != "cum_cost" {
		t.Errorf("unexpected header: %v", all[0])
	}
	if all[1][6] != "PRODUCE" {
		t.Errorf("row 1 action = %q, want PRODUCE", all[1][6])
	}
	if all[2][6] != "IDLE" {
		t.Errorf("row 2 action = %q, want IDLE", all[2][6])
	}
	// Empty timestamps for unlabeled rows.
	if all[1][1] != "" {
		t.Errorf("row 1 period_start = %q, want empty", all[1][1])
	}
}
