package model

import "encoding/json"

// FlexVec is a cost vector that accepts either a JSON scalar or a JSON array.
// A scalar is broadcast over the planning horizon; an array is used as-is.
// Query shapes like {"setup_cost": 1000} and {"setup_cost": [1000, 800, ...]}
// are both valid.
type FlexVec []float64

func (v *FlexVec) UnmarshalJSON(data []byte) error {
	var scalar float64
	if err := json.Unmarshal(data, &scalar); err == nil {
		*v = FlexVec{scalar}
		return nil
	}
	var vec []float64
	if err := json.Unmarshal(data, &vec); err != nil {
		return err
	}
	*v = FlexVec(vec)
	return nil
}

func (v FlexVec) MarshalJSON() ([]byte, error) {
	if len(v) == 1 {
		return json.Marshal(v[0])
	}
	return json.Marshal([]float64(v))
}

// Expand broadcasts a single-element vector to length t. Vectors of any other
// length are returned unchanged; Instance.Validate catches mismatches.
func (v FlexVec) Expand(t int) []float64 {
	if len(v) == 1 && t > 1 {
		out := make([]float64, t)
		for i := range out {
			out[i] = v[0]
		}
		return out
	}
	return []float64(v)
}
