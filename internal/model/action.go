package model

// Action is a human-friendly operating mode for a period.
// Keep these values stable; they are intended for CSV output.
type Action string

const (
	ActionProduce Action = "PRODUCE"
	ActionIdle    Action = "IDLE"
)

func ActionFromQuantity(qty float64) Action {
	if qty > 0 {
		return ActionProduce
	}
	return ActionIdle
}
