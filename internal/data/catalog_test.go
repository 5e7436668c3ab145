package data

import (
	"path/filepath"
	"testing"
)

func TestCatalogSaveLoad(t *testing.T) {
	cat := &Catalog{
		SeriesID:  "weekly_demand_forecast",
		UpdatedAt: "2026-08-30T00:00:00Z",
		Items: []CatalogItem{
			{ID: "WIDGET-A", Name: "Widget A", Location: "DC-WEST", SeriesID: "weekly_demand_forecast"},
			{ID: "GASKET-9", Name: "Gasket 9", Location: "DC-EAST", SeriesID: "weekly_demand_forecast"},
		},
	}

	// SaveCatalog creates intermediate directories.
	path := filepath.Join(t.TempDir(), "data", "catalog.json")
	if err := SaveCatalog(cat, path); err != nil {
		t.Fatalf("SaveCatalog: %v", err)
	}

	loaded, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if loaded.SeriesID != cat.SeriesID {
		t.Errorf("SeriesID = %q", loaded.SeriesID)
	}
	if len(loaded.Items) != 2 || loaded.Items[1].ID != "GASKET-9" {
		t.Errorf("items round trip failed: %+v", loaded.Items)
	}
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestGetDefaultCatalogPath(t *testing.T) {
	t.Setenv("CATALOG_FILE", "/tmp/custom-catalog.json")
	if got := GetDefaultCatalogPath(); got != "/tmp/custom-catalog.json" {
		t.Errorf("GetDefaultCatalogPath = %q", got)
	}

	t.Setenv("CATALOG_FILE", "")
	if got := GetDefaultCatalogPath(); got != "./data/catalog.json" {
		t.Errorf("GetDefaultCatalogPath = %q", got)
	}
}
