package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"lotsize-planner/internal/model"
	"lotsize-planner/internal/solver"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load item parameters from a separate YAML (e.g. examples/items/*.yaml).
	// If both ItemFile and Item are provided, Item overrides ItemFile.
	ItemFile string       `yaml:"item_file"`
	Item     ItemConfig   `yaml:"item"`
	Solver   SolverConfig `yaml:"solver"`
}

type ItemConfig struct {
	Name              string  `yaml:"name"`
	SetupCost         float64 `yaml:"setup_cost"`
	UnitCost          float64 `yaml:"unit_cost"`
	HoldingCost       float64 `yaml:"holding_cost"`
	InitialInventory  float64 `yaml:"initial_inventory"`
	CapacityPerPeriod float64 `yaml:"capacity_per_period"`
}

type SolverConfig struct {
	TimeLimitSeconds float64 `yaml:"time_limit_seconds"`
	MIPGap           float64 `yaml:"mip_gap"`
	Threads          int     `yaml:"threads"`
	Output           bool    `yaml:"output"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If item_file is set, load it and merge in any explicit overrides from c.Item.
	if c.ItemFile != "" {
		itemPath := c.ItemFile
		if !filepath.IsAbs(itemPath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), itemPath)
			if _, err := os.Stat(cand); err == nil {
				itemPath = cand
			}
		}
		loaded, err := loadItemFile(itemPath)
		if err != nil {
			return nil, err
		}
		c.Item = MergeItem(loaded, c.Item)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	// Validate item params by constructing a model.Item.
	_, err := model.NewItem(c.Item.Name, c.Item.ToModelParams())
	if err != nil {
		return fmt.Errorf("item config invalid: %w", err)
	}
	if c.Solver.TimeLimitSeconds < 0 {
		return errors.New("solver.time_limit_seconds must be >= 0")
	}
	if c.Solver.MIPGap < 0 {
		return errors.New("solver.mip_gap must be >= 0")
	}
	if c.Solver.Threads < 0 {
		return errors.New("solver.threads must be >= 0")
	}
	return nil
}

func (i ItemConfig) ToModelParams() model.ItemParams {
	return model.ItemParams{
		SetupCost:         i.SetupCost,
		UnitCost:          i.UnitCost,
		HoldingCost:       i.HoldingCost,
		InitialInventory:  i.InitialInventory,
		CapacityPerPeriod: i.CapacityPerPeriod,
	}
}

func (s SolverConfig) ToOptions() solver.Options {
	return solver.Options{
		TimeLimitSeconds: s.TimeLimitSeconds,
		MIPGap:           s.MIPGap,
		Threads:          s.Threads,
		Output:           s.Output,
	}
}

type itemFileWrapper struct {
	Item ItemConfig `yaml:"item"`
}

func loadItemFile(path string) (ItemConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ItemConfig{}, err
	}
	var w itemFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ItemConfig{}, err
	}
	return w.Item, nil
}

// MergeItem overlays non-zero fields from override onto base.
// This is used when loading an item file and then applying overrides from the
// request or config.
func MergeItem(base, override ItemConfig) ItemConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.SetupCost != 0 {
		out.SetupCost = override.SetupCost
	}
	if override.UnitCost != 0 {
		out.UnitCost = override.UnitCost
	}
	if override.HoldingCost != 0 {
		out.HoldingCost = override.HoldingCost
	}
	if override.InitialInventory != 0 {
		out.InitialInventory = override.InitialInventory
	}
	if override.CapacityPerPeriod != 0 {
		out.CapacityPerPeriod = override.CapacityPerPeriod
	}
	return out
}
