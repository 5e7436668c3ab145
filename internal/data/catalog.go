package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// CatalogItem represents an item known to the forecast feed
type CatalogItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`  // e.g., "DC-WEST"
	SeriesID string `json:"series_id"` // Series this item belongs to
}

// Catalog represents a collection of forecastable items
type Catalog struct {
	SeriesID  string        `json:"series_id"`
	UpdatedAt string        `json:"updated_at"` // ISO 8601 timestamp
	Items     []CatalogItem `json:"items"`
}

// LoadCatalog loads the item catalog from a JSON file
func LoadCatalog(filePath string) (*Catalog, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var cat Catalog
	if err := json.Unmarshal(raw, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return &cat, nil
}

// SaveCatalog saves the item catalog to a JSON file
func SaveCatalog(cat *Catalog, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	raw, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := os.WriteFile(filePath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}

	return nil
}

// GetDefaultCatalogPath returns the default path for the catalog file
func GetDefaultCatalogPath() string {
	if path := os.Getenv("CATALOG_FILE"); path != "" {
		return path
	}
	return "./data/catalog.json"
}
