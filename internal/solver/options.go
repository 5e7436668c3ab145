package solver

import "github.com/bartolsthoorn/gohighs/highs"

// Options are the solver knobs exposed to configuration. The zero value is
// usable: silent output, no time limit, solver defaults for gap and threads.
type Options struct {
	// TimeLimitSeconds bounds the solve wall time. 0 = no limit.
	TimeLimitSeconds float64
	// MIPGap is the relative optimality gap tolerance. 0 = solver default.
	MIPGap float64
	// Threads limits solver parallelism. 0 = solver default.
	Threads int
	// Output enables solver log output, useful when debugging a model.
	Output bool
}

func (o Options) solveOptions() []highs.SolveOption {
	opts := []highs.SolveOption{highs.WithOutput(o.Output)}
	if o.TimeLimitSeconds > 0 {
		opts = append(opts, highs.WithTimeLimit(o.TimeLimitSeconds))
	}
	if o.MIPGap > 0 {
		opts = append(opts, highs.WithMIPRelGap(o.MIPGap))
	}
	if o.Threads > 0 {
		opts = append(opts, highs.WithThreads(o.Threads))
	}
	return opts
}
