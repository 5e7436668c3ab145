package model

import (
	"encoding/json"
	"testing"
)

func TestNewInstance_BroadcastsScalarCosts(t *testing.T) {
	in, err := NewInstance(
		[]float64{100, 150, 80, 130},
		FlexVec{1000}, FlexVec{50}, FlexVec{2},
		nil, 0,
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := in.Horizon(); got != 4 {
		t.Fatalf("Horizon = %d, want 4", got)
	}
	if len(in.SetupCost) != 4 || in.SetupCost[3] != 1000 {
		t.Errorf("SetupCost not broadcast: %v", in.SetupCost)
	}
	if in.Capacitated() {
		t.Error("instance should be uncapacitated")
	}
	if got := in.TotalDemand(); got != 460 {
		t.Errorf("TotalDemand = %f, want 460", got)
	}
}

func TestNewInstance_PerPeriodCosts(t *testing.T) {
	in, err := NewInstance(
		[]float64{10, 20},
		FlexVec{100, 200}, FlexVec{1, 2}, FlexVec{0.5, 0.25},
		[]float64{30, 30}, 5,
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !in.Capacitated() {
		t.Error("instance should be capacitated")
	}
	if in.SetupCost[1] != 200 {
		t.Errorf("SetupCost[1] = %f, want 200", in.SetupCost[1])
	}
}

func TestInstanceValidate_Errors(t *testing.T) {
	cases := []struct {
		name     string
		demand   []float64
		setup    FlexVec
		unit     FlexVec
		holding  FlexVec
		capacity []float64
		initial  float64
	}{
		{name: "empty demand", demand: nil, setup: FlexVec{1}, unit: FlexVec{1}, holding: FlexVec{1}},
		{name: "negative demand", demand: []float64{10, -1}, setup: FlexVec{1}, unit: FlexVec{1}, holding: FlexVec{1}},
		{name: "negative setup", demand: []float64{10}, setup: FlexVec{-1}, unit: FlexVec{1}, holding: FlexVec{1}},
		{name: "cost length mismatch", demand: []float64{10, 20, 30}, setup: FlexVec{1, 2}, unit: FlexVec{1}, holding: FlexVec{1}},
		{name: "capacity length mismatch", demand: []float64{10, 20}, setup: FlexVec{1}, unit: FlexVec{1}, holding: FlexVec{1}, capacity: []float64{30}},
		{name: "negative capacity", demand: []float64{10}, setup: FlexVec{1}, unit: FlexVec{1}, holding: FlexVec{1}, capacity: []float64{-5}},
		{name: "negative initial inventory", demand: []float64{10}, setup: FlexVec{1}, unit: FlexVec{1}, holding: FlexVec{1}, initial: -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewInstance(tc.demand, tc.setup, tc.unit, tc.holding, tc.capacity, tc.initial)
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
		})
	}
}

func TestFlexVec_UnmarshalScalarAndArray(t *testing.T) {
	var q struct {
		Setup FlexVec `json:"setup_cost"`
	}
	if err := json.Unmarshal([]byte(`{"setup_cost": 1000}`), &q); err != nil {
		t.Fatalf("scalar: %v", err)
	}
	if len(q.Setup) != 1 || q.Setup[0] != 1000 {
		t.Errorf("scalar parse = %v, want [1000]", q.Setup)
	}

	if err := json.Unmarshal([]byte(`{"setup_cost": [10, 20, 30]}`), &q); err != nil {
		t.Fatalf("array: %v", err)
	}
	if len(q.Setup) != 3 || q.Setup[2] != 30 {
		t.Errorf("array parse = %v, want [10 20 30]", q.Setup)
	}

	if err := json.Unmarshal([]byte(`{"setup_cost": "oops"}`), &q); err == nil {
		t.Error("expected an error for a string cost")
	}
}

func TestItemInstance_AppliesCapacity(t *testing.T) {
	item, err := NewItem("widgets", ItemParams{
		SetupCost:         500,
		UnitCost:          10,
		HoldingCost:       1,
		CapacityPerPeriod: 200,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	in, err := item.Instance([]float64{50, 60, 70})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !in.Capacitated() {
		t.Fatal("instance should be capacitated")
	}
	for i, c := range in.Capacity {
		if c != 200 {
			t.Errorf("Capacity[%d] = %f, want 200", i, c)
		}
	}
}

func TestActionFromQuantity(t *testing.T) {
	if got := ActionFromQuantity(10); got != ActionProduce {
		t.Errorf("ActionFromQuantity(10) = %s, want PRODUCE", got)
	}
	if got := ActionFromQuantity(0); got != ActionIdle {
		t.Errorf("ActionFromQuantity(0) = %s, want IDLE", got)
	}
}
