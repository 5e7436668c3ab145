package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"lotsize-planner/internal/analysis"
	"lotsize-planner/internal/config"
	"lotsize-planner/internal/data"
	"lotsize-planner/internal/model"
	"lotsize-planner/internal/planner"
	"lotsize-planner/internal/solver"
	"lotsize-planner/internal/tool"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "solve":
		cmdSolve(os.Args[2:])
	case "plan":
		cmdPlan(os.Args[2:])
	case "rank":
		cmdRank(os.Args[2:])
	case "tools":
		cmdTools(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli solve [--tool solve_lot_sizing] [--in query.json]   (default: read JSON from stdin)")
	fmt.Println("  cli plan --data sample_demand.json --config examples/config.yaml --out results/plan.csv")
	fmt.Println("  cli rank --data sample_demand.json --setup-cost 1000 --unit-cost 50 --holding-cost 2")
	fmt.Println("  cli tools [--schemas]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - solve pipes a JSON query through one of the registered tools and prints JSON")
	fmt.Println("  - plan writes a per-period production plan CSV for a demand series")
	fmt.Println("  - rank scores items by batching savings over a lot-for-lot baseline")
}

func cmdSolve(args []string) {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	toolName := fs.String("tool", "solve_lot_sizing", "Tool to invoke (see 'cli tools')")
	inPath := fs.String("in", "-", "Query JSON path ('-' = stdin)")
	timeLimit := fs.Float64("time-limit", 0, "Solver time limit in seconds (0 = none)")
	_ = fs.Parse(args)

	var raw []byte
	var err error
	if *inPath == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(*inPath)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "read query: %v\n", err)
		os.Exit(1)
	}

	registry := tool.DefaultRegistry(solver.Options{TimeLimitSeconds: *timeLimit})
	out, err := registry.Call(context.Background(), *toolName, raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	var pretty map[string]any
	if err := json.Unmarshal(out, &pretty); err != nil {
		fmt.Fprintf(os.Stderr, "decode result: %v\n", err)
		os.Exit(1)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(pretty); err != nil {
		fmt.Fprintf(os.Stderr, "encode result: %v\n", err)
		os.Exit(1)
	}
}

func cmdPlan(args []string) {
	fs := flag.NewFlagSet("plan", flag.ExitOnError)
	dataPath := fs.String("data", "sample_demand.json", "Path to demand forecast JSON")
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "results/plan.csv", "Output CSV path")
	item := fs.String("item", "", "Optional: restrict to one item ID")
	n := fs.Int("n", 0, "Optional: limit to first N periods (0=all)")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	resp, err := data.LoadForecastJSON(*dataPath)
	if err != nil {
		panic(err)
	}
	records := resp.Data
	if *item != "" {
		records = data.GroupByItem(resp)[*item]
		if len(records) == 0 {
			fmt.Printf("no records for item %q in %s\n", *item, *dataPath)
			os.Exit(1)
		}
	}
	if *n > 0 && *n < len(records) {
		records = records[:*n]
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	it, err := model.NewItem(cfg.Item.Name, cfg.Item.ToModelParams())
	if err != nil {
		panic(err)
	}
	in, err := it.Instance(model.DemandVector(records))
	if err != nil {
		panic(err)
	}

	p := planner.New(cfg.Solver.ToOptions())
	res, err := p.Run(in, records)
	if err != nil {
		panic(err)
	}

	// ensure output dir exists
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := planner.WritePlanCSV(*outPath, res.Rows); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(res.Rows), *outPath)
	fmt.Printf("Total cost=$%.2f (setup $%.2f, production $%.2f, holding $%.2f)\n",
		res.TotalCost, res.SetupCost, res.ProductionCost, res.HoldingCost)
	fmt.Printf("Setups=%d Ending inventory=%.2f Solver=%s in %v\n",
		res.SetupCount, res.EndingInventory, res.SolverStatus, res.SolveTime)
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	dataPaths := fs.String("data", "sample_demand.json", "Comma-separated JSON paths or a directory")
	setupCost := fs.Float64("setup-cost", 1000, "Fixed setup cost per production run")
	unitCost := fs.Float64("unit-cost", 0, "Variable cost per unit")
	holdingCost := fs.Float64("holding-cost", 1, "Holding cost per unit per period")
	_ = fs.Parse(args)

	paths := splitPaths(*dataPaths)
	byItem := map[string][]model.DemandRecord{}
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			panic(err)
		}
		if info.IsDir() {
			entries, err := os.ReadDir(p)
			if err != nil {
				panic(err)
			}
			for _, e := range entries {
				if e.IsDir() {
					continue
				}
				if !strings.HasSuffix(e.Name(), ".json") {
					continue
				}
				resp, err := data.LoadForecastJSON(filepath.Join(p, e.Name()))
				if err != nil {
					panic(err)
				}
				mergeByItem(byItem, data.GroupByItem(resp))
			}
		} else {
			resp, err := data.LoadForecastJSON(p)
			if err != nil {
				panic(err)
			}
			mergeByItem(byItem, data.GroupByItem(resp))
		}
	}

	params := model.ItemParams{
		SetupCost:   *setupCost,
		UnitCost:    *unitCost,
		HoldingCost: *holdingCost,
	}
	ranked := analysis.RankBySavings(byItem, params, solver.Options{})
	fmt.Printf("%-4s %-18s %-12s %-8s %-12s %-12s %-12s %-8s\n",
		"rank", "item", "location", "periods", "lot4lot$", "optimal$", "savings$", "setups")
	for i, r := range ranked {
		fmt.Printf("%-4d %-18s %-12s %-8d %-12.2f %-12.2f %-12.2f %-8d\n",
			i+1,
			r.Item,
			r.Location,
			r.Periods,
			r.LotForLotCost,
			r.OptimalCost,
			r.Savings,
			r.SetupCount,
		)
	}
}

func cmdTools(args []string) {
	fs := flag.NewFlagSet("tools", flag.ExitOnError)
	schemas := fs.Bool("schemas", false, "Print full JSON schemas instead of a summary")
	_ = fs.Parse(args)

	registry := tool.DefaultRegistry(solver.Options{})
	if *schemas {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(registry.List()); err != nil {
			panic(err)
		}
		return
	}
	for _, t := range registry.List() {
		fmt.Printf("%-36s %s\n", t.Name, t.Description)
	}
}

func splitPaths(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func mergeByItem(dst, src map[string][]model.DemandRecord) {
	for k, v := range src {
		dst[k] = append(dst[k], v...)
	}
}
