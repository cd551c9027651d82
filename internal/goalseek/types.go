package goalseek

import (
	"github.com/shopspring/decimal"

	"github.com/growthkit/mrrcalc/internal/domain"
)

// SeekRequest defines the parameters for a goal-seek run: which lever to
// move, what month-12 MRR to reach, and the override state the other levers
// are held at.
type SeekRequest struct {
	Assumptions domain.Assumptions
	Overrides   domain.Overrides
	Lever       domain.LeverID
	TargetMRR   decimal.Decimal

	MaxIterations int             // Maximum solver iterations
	Tolerance     decimal.Decimal // Acceptable MRR distance from target
}

// SeekResult contains the results of a goal-seek run
type SeekResult struct {
	Request         SeekRequest
	Success         bool
	Iterations      int
	ConvergenceInfo string

	// Lever value that reaches (or comes closest to) the target.
	OptimalValue decimal.Decimal `json:"optimal_value"`

	// Results at the optimal value.
	AchievedMRR decimal.Decimal    `json:"achieved_mrr"`
	Impact      domain.ImpactScore `json:"impact"`
}

// SolverOptions configures the solver algorithm
type SolverOptions struct {
	Tolerance     decimal.Decimal // Convergence tolerance in currency units
	MaxIterations int             // Maximum iterations
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.NewFromInt(500),
		MaxIterations: 60,
	}
}

// Validate checks if the request is internally consistent
func (r *SeekRequest) Validate() error {
	if _, ok := domain.LeverByID(r.Lever); !ok {
		return &SeekError{
			Operation: "validate_request",
			Message:   "unknown lever: " + string(r.Lever),
		}
	}
	if r.TargetMRR.LessThan(decimal.Zero) {
		return &SeekError{
			Operation: "validate_request",
			Message:   "target MRR cannot be negative",
		}
	}
	return nil
}

// SeekError represents errors from the goal seeker
type SeekError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *SeekError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *SeekError) Unwrap() error {
	return e.Cause
}
