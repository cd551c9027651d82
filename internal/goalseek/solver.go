package goalseek

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/growthkit/mrrcalc/internal/calculation"
	"github.com/growthkit/mrrcalc/internal/domain"
)

// Solver answers "what does this lever have to be for month-12 MRR to reach
// the target" by binary search over the lever's valid range. Month-12 MRR is
// monotonic in every lever, which makes bisection exact.
type Solver struct {
	CalcEngine *calculation.Engine
	Options    SolverOptions
}

// NewSolver creates a new goal-seek solver
func NewSolver(calcEngine *calculation.Engine, options SolverOptions) *Solver {
	return &Solver{
		CalcEngine: calcEngine,
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.Engine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

// convergedRange is the lever-value interval width below which the search
// stops refining.
var convergedRange = decimal.NewFromFloat(0.0001)

// Seek finds the lever value whose month-12 MRR is within tolerance of the
// target. The other levers keep whatever override state the request carries.
func (s *Solver) Seek(ctx context.Context, req SeekRequest) (*SeekResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Apply defaults
	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if req.Tolerance.IsZero() {
		req.Tolerance = s.Options.Tolerance
	}

	lever, _ := domain.LeverByID(req.Lever)
	lo, hi := lever.Min, lever.Max

	mrrAtLo := s.mrrAt(req, lo)
	mrrAtHi := s.mrrAt(req, hi)

	// The direction the lever moves MRR follows from the endpoints, not
	// from the lever's display metadata.
	increasing := mrrAtHi.GreaterThan(mrrAtLo)

	if err := s.checkReachable(req, lever, mrrAtLo, mrrAtHi); err != nil {
		return nil, err
	}

	iterations := 0
	for iterations < req.MaxIterations {
		iterations++

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		mid := lo.Add(hi).Div(decimal.NewFromInt(2))
		mrr := s.mrrAt(req, mid)

		diff := mrr.Sub(req.TargetMRR)
		if diff.Abs().LessThanOrEqual(req.Tolerance) {
			result := s.buildResult(req, mid, mrr, iterations)
			result.Success = true
			result.ConvergenceInfo = fmt.Sprintf("Converged to target MRR within $%s", req.Tolerance.StringFixed(0))
			return result, nil
		}

		below := mrr.LessThan(req.TargetMRR)
		if below == increasing {
			lo = mid
		} else {
			hi = mid
		}

		if hi.Sub(lo).LessThan(convergedRange) {
			result := s.buildResult(req, mid, mrr, iterations)
			result.Success = true
			result.ConvergenceInfo = "Binary search converged"
			return result, nil
		}
	}

	return nil, &SeekError{
		Operation: "seek",
		Message:   fmt.Sprintf("did not converge after %d iterations", req.MaxIterations),
	}
}

// checkReachable rejects targets outside the MRR range the lever can produce.
func (s *Solver) checkReachable(req SeekRequest, lever domain.Lever, mrrAtLo, mrrAtHi decimal.Decimal) error {
	floor, ceil := mrrAtLo, mrrAtHi
	if floor.GreaterThan(ceil) {
		floor, ceil = ceil, floor
	}

	slack := req.Tolerance
	if req.TargetMRR.LessThan(floor.Sub(slack)) || req.TargetMRR.GreaterThan(ceil.Add(slack)) {
		return &SeekError{
			Operation: "seek",
			Message: fmt.Sprintf("target MRR $%s is out of reach for %s: achievable range is $%s to $%s",
				req.TargetMRR.StringFixed(0), lever.ID, floor.StringFixed(0), ceil.StringFixed(0)),
		}
	}
	return nil
}

// mrrAt evaluates month-12 MRR with the sought lever set to value.
func (s *Solver) mrrAt(req SeekRequest, value decimal.Decimal) decimal.Decimal {
	ov := req.Overrides.WithLever(req.Lever, value)
	return s.CalcEngine.Project(req.Assumptions, ov, calculation.ImpactHorizonMonths)
}

func (s *Solver) buildResult(req SeekRequest, value, mrr decimal.Decimal, iterations int) *SeekResult {
	return &SeekResult{
		Request:      req,
		Iterations:   iterations,
		OptimalValue: value,
		AchievedMRR:  mrr,
		Impact:       s.CalcEngine.IndependentImpact(req.Assumptions, req.Lever, value),
	}
}
