package data

import (
	"encoding/json"
	"os"

	"lotsize-planner/internal/model"
)

func LoadForecastJSON(path string) (*model.ForecastResponse, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var resp model.ForecastResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GroupByItem splits a response into item-keyed record slices.
func GroupByItem(resp *model.ForecastResponse) map[string][]model.DemandRecord {
	out := map[string][]model.DemandRecord{}
	if resp == nil {
		return out
	}
	for _, r := range resp.Data {
		out[r.Item] = append(out[r.Item], r)
	}
	return out
}
