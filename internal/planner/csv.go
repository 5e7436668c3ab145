package planner

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

func WritePlanCSV(path string, rows []PlanRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index",
		"period_start",
		"period_end",
		"item",
		"location",
		"demand",
		"action",
		"setup",
		"production",
		"inventory_start",
		"inventory_end",
		"setup_cost",
		"production_cost",
		"holding_cost",
		"period_cost",
		"cum_cost",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.Index),
			fmtTime(r.PeriodStart),
			fmtTime(r.PeriodEnd),
			r.Item,
			r.Location,
			fmtFloat(r.Demand),
			string(r.Action),
			strconv.Itoa(r.Setup),
			fmtFloat(r.Production),
			fmtFloat(r.InventoryStart),
			fmtFloat(r.InventoryEnd),
			fmtFloat(r.SetupCost),
			fmtFloat(r.ProductionCost),
			fmtFloat(r.HoldingCost),
			fmtFloat(r.PeriodCost),
			fmtFloat(r.CumCost),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
