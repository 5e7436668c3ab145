package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"lotsize-planner/internal/api/models"
	"lotsize-planner/internal/config"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

// ItemHandler handles item-preset requests
type ItemHandler struct {
	itemDir string
}

// ItemDir resolves the preset directory: ITEM_DIR env var, else
// examples/items under the working directory.
func ItemDir() string {
	dir := os.Getenv("ITEM_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", "items")
		} else {
			dir = "./examples/items"
		}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return dir
}

// NewItemHandler creates a new item handler
func NewItemHandler() *ItemHandler {
	dir := ItemDir()
	log.Printf("ItemHandler: Using item directory: %s", dir)
	return &ItemHandler{itemDir: dir}
}

// GetItemDir returns the item directory path (for debugging)
func (h *ItemHandler) GetItemDir() string {
	return h.itemDir
}

// ListItems handles GET /api/v1/items
func (h *ItemHandler) ListItems(c *gin.Context) {
	items := []models.ItemInfo{}

	entries, err := os.ReadDir(h.itemDir)
	if err != nil {
		log.Printf("ItemHandler: Failed to read item directory %s: %v", h.itemDir, err)
		c.JSON(http.StatusOK, gin.H{"items": items})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(h.itemDir, entry.Name())
		info, err := h.loadItemInfo(path, entry.Name())
		if err != nil {
			log.Printf("ItemHandler: Failed to load item file %s: %v", path, err)
			continue // Skip invalid files
		}
		items = append(items, *info)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *ItemHandler) loadItemInfo(path, filename string) (*models.ItemInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Item config.ItemConfig `yaml:"item"`
	}
	if err := yaml.Unmarshal(raw, &wrapper); err != nil {
		return nil, err
	}

	// The filename without extension is the preset ID (e.g., "widgets.yaml" -> "widgets")
	id := strings.TrimSuffix(filename, ".yaml")

	name := wrapper.Item.Name
	if name == "" {
		name = id
	}

	return &models.ItemInfo{
		ID:   id,
		Name: name,
		File: path,
		Specs: models.ItemSpecs{
			SetupCost:         wrapper.Item.SetupCost,
			UnitCost:          wrapper.Item.UnitCost,
			HoldingCost:       wrapper.Item.HoldingCost,
			CapacityPerPeriod: wrapper.Item.CapacityPerPeriod,
		},
	}, nil
}
