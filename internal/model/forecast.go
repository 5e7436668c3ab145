package model

import "time"

// ForecastResponse matches the JSON shape of sample_demand.json and of the
// demand forecast feed.
//
// Example:
// {
//   "status_code": 200,
//   "data": [ ... ]
// }
type ForecastResponse struct {
	StatusCode int            `json:"status_code"`
	Data       []DemandRecord `json:"data"`
}

// DemandRecord represents one forecast row: expected demand for an item at a
// location over one planning period. Timestamps are RFC3339 strings in the
// JSON.
type DemandRecord struct {
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`

	Item     string `json:"item"`
	Location string `json:"location"`

	// Quantity is the forecast demand in units for the period.
	Quantity float64 `json:"quantity"`
}

func (r DemandRecord) Duration() time.Duration {
	return r.PeriodEnd.Sub(r.PeriodStart)
}

// DemandVector flattens a record series into the per-period demand vector
// the solver consumes. Records are assumed to be in period order.
func DemandVector(records []DemandRecord) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.Quantity
	}
	return out
}
