package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"lotsize-planner/internal/config"
	"lotsize-planner/internal/model"
	"lotsize-planner/internal/planner"
	"lotsize-planner/internal/solver"
)

// Demo:
// - Load a demand forecast JSON response from sample_demand.json
// - Instantiate an item with default costs
// - Solve the lot-sizing model and print the per-period plan
func main() {
	dataPath := flag.String("data", "sample_demand.json", "Path to demand forecast JSON (sample_demand.json)")
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	n := flag.Int("n", 12, "Number of periods to plan")
	outCSV := flag.String("out", "", "Optional path to write plan CSV (e.g. results/plan.csv)")
	flag.Parse()

	raw, err := os.ReadFile(*dataPath)
	if err != nil {
		panic(err)
	}

	var resp model.ForecastResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		panic(err)
	}
	if len(resp.Data) == 0 {
		panic("no data in JSON")
	}

	// Defaults (can be overridden via --config).
	params := model.ItemParams{
		SetupCost:   1000,
		UnitCost:    50,
		HoldingCost: 2,
	}
	opts := solver.Options{}

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		params = cfg.Item.ToModelParams()
		opts = cfg.Solver.ToOptions()
	}

	records := resp.Data
	if *n > 0 && *n < len(records) {
		records = records[:*n]
	}

	item, err := model.NewItem("demo", params)
	if err != nil {
		panic(err)
	}
	in, err := item.Instance(model.DemandVector(records))
	if err != nil {
		panic(err)
	}

	p := planner.New(opts)
	res, err := p.Run(in, records)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%-6s %-10s %-8s %-12s %-12s %-12s\n",
		"period", "demand", "setup", "production", "inventory", "cum_cost")
	for _, row := range res.Rows {
		fmt.Printf("%-6d %-10.1f %-8d %-12.1f %-12.1f %-12.2f\n",
			row.Index, row.Demand, row.Setup, row.Production, row.InventoryEnd, row.CumCost)
	}
	fmt.Printf("\nTotal cost=$%.2f Setups=%d Solver=%s in %v\n",
		res.TotalCost, res.SetupCount, res.SolverStatus, res.SolveTime)

	if *outCSV != "" {
		if err := planner.WritePlanCSV(*outCSV, res.Rows); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %s\n", *outCSV)
	}
}
