package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"lotsize-planner/internal/data"
)

func main() {
	var (
		seriesID   = flag.String("series-id", "weekly_demand_forecast", "Forecast series ID")
		outputPath = flag.String("output", "", "Output file path (default: ./data/catalog.json)")
		seedFile   = flag.String("seed", "", "Path to existing catalog to use as seed")
		days       = flag.Int("days", 28, "Number of days to look back when refreshing metadata")
	)
	flag.Parse()

	apiKey := os.Getenv("FORECAST_API_KEY")
	if apiKey == "" {
		log.Fatal("FORECAST_API_KEY environment variable is required")
	}

	if *outputPath == "" {
		*outputPath = data.GetDefaultCatalogPath()
	}

	client := data.NewForecastClient(apiKey, "")

	fmt.Printf("Updating item catalog for series: %s\n", *seriesID)

	// Load existing catalog as seed if provided
	var existing []data.CatalogItem
	seedPath := *seedFile
	if seedPath == "" {
		seedPath = data.GetDefaultCatalogPath()
	}
	if cat, err := data.LoadCatalog(seedPath); err == nil {
		existing = cat.Items
		fmt.Printf("Loaded %d existing items from %s\n", len(existing), seedPath)
	}
	if len(existing) == 0 {
		log.Fatal("no seed items available; the forecast feed requires an item_id per query, so the catalog can only be refreshed from a seed list")
	}

	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -*days)

	fmt.Printf("Querying items from %s to %s to refresh metadata...\n",
		startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))

	items := make([]data.CatalogItem, 0, len(existing))
	for _, seed := range existing {
		resp, err := client.QueryItem(data.QueryItemParams{
			SeriesID:  *seriesID,
			ItemID:    seed.ID,
			StartTime: startDate,
			EndTime:   endDate,
		})
		if err != nil {
			log.Printf("skipping %s: %v", seed.ID, err)
			continue
		}
		item := seed
		item.SeriesID = *seriesID
		if len(resp.Data) > 0 {
			item.Location = resp.Data[0].Location
		}
		items = append(items, item)
	}

	fmt.Printf("Found %d live items\n", len(items))

	cat := &data.Catalog{
		SeriesID:  *seriesID,
		UpdatedAt: time.Now().Format(time.RFC3339),
		Items:     items,
	}

	if err := data.SaveCatalog(cat, *outputPath); err != nil {
		log.Fatalf("Failed to save catalog: %v", err)
	}

	fmt.Printf("Saved %d items to %s\n", len(items), *outputPath)
}
