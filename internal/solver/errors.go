package solver

import (
	"errors"
	"fmt"

	"github.com/bartolsthoorn/gohighs/highs"
)

// Sentinel errors for the solver's terminal statuses. Callers can match them
// with errors.Is to distinguish "your instance is broken" from "the solver
// ran out of time".
var (
	ErrInfeasible = errors.New("model is infeasible")
	ErrUnbounded  = errors.New("model is unbounded")
	ErrTimeLimit  = errors.New("solver hit the time limit")
)

func statusError(sol *highs.Solution) error {
	if sol.IsOptimal() {
		return nil
	}
	switch {
	case sol.IsInfeasible():
		return fmt.Errorf("solver status %s: %w", sol.Status, ErrInfeasible)
	case sol.IsUnbounded():
		return fmt.Errorf("solver status %s: %w", sol.Status, ErrUnbounded)
	case sol.IsTimeLimit():
		return fmt.Errorf("solver status %s: %w", sol.Status, ErrTimeLimit)
	default:
		return fmt.Errorf("solver status %s: optimization failed", sol.Status)
	}
}
