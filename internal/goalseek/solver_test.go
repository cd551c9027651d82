package goalseek

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/growthkit/mrrcalc/internal/calculation"
	"github.com/growthkit/mrrcalc/internal/domain"
)

func TestNewSolver(t *testing.T) {
	calcEngine := calculation.NewEngine()
	options := DefaultSolverOptions()

	solver := NewSolver(calcEngine, options)

	if solver == nil {
		t.Fatal("Expected solver to be created, got nil")
	}

	if solver.CalcEngine != calcEngine {
		t.Error("Expected CalcEngine to match input")
	}

	if solver.Options.MaxIterations != options.MaxIterations {
		t.Error("Expected Options to match input")
	}
}

func TestNewDefaultSolver(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())

	if solver == nil {
		t.Fatal("Expected solver to be created, got nil")
	}

	expected := DefaultSolverOptions()
	if solver.Options.MaxIterations != expected.MaxIterations {
		t.Error("Expected default max iterations to be applied")
	}
	if !solver.Options.Tolerance.Equal(expected.Tolerance) {
		t.Error("Expected default tolerance to be applied")
	}
}

func TestSolver_Seek_MonetizationTarget(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())

	// 1262453 is the month-12 MRR with ARPU at 9; the solver should land
	// on a value very close to that.
	req := SeekRequest{
		Assumptions: domain.DefaultAssumptions(),
		Lever:       domain.LeverMonetization,
		TargetMRR:   decimal.NewFromInt(1262453),
	}

	result, err := solver.Seek(context.Background(), req)
	if err != nil {
		t.Fatalf("Expected seek to succeed, got %v", err)
	}

	if !result.Success {
		t.Error("Expected result to be marked successful")
	}

	distance := result.OptimalValue.Sub(decimal.NewFromInt(9)).Abs()
	if distance.GreaterThan(decimal.NewFromFloat(0.01)) {
		t.Errorf("Expected optimal ARPU near 9, got %s", result.OptimalValue)
	}

	mrrDistance := result.AchievedMRR.Sub(req.TargetMRR).Abs()
	if mrrDistance.GreaterThan(DefaultSolverOptions().Tolerance) {
		t.Errorf("Expected achieved MRR within tolerance of target, got %s", result.AchievedMRR)
	}
}

func TestSolver_Seek_ChurnTarget(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())

	// Churn moves MRR the other way: lower values mean more MRR. 974161 is
	// the month-12 MRR with churn at 2.
	req := SeekRequest{
		Assumptions: domain.DefaultAssumptions(),
		Lever:       domain.LeverRetention,
		TargetMRR:   decimal.NewFromInt(974161),
	}

	result, err := solver.Seek(context.Background(), req)
	if err != nil {
		t.Fatalf("Expected seek to succeed, got %v", err)
	}

	if !result.Success {
		t.Error("Expected result to be marked successful")
	}

	baseline := domain.DefaultAssumptions().ChurnRate
	if !result.OptimalValue.LessThan(baseline) {
		t.Errorf("Expected required churn below the baseline %s, got %s", baseline, result.OptimalValue)
	}

	mrrDistance := result.AchievedMRR.Sub(req.TargetMRR).Abs()
	if mrrDistance.GreaterThan(DefaultSolverOptions().Tolerance) {
		t.Errorf("Expected achieved MRR within tolerance of target, got %s", result.AchievedMRR)
	}
}

func TestSolver_Seek_HoldsOtherOverrides(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())

	churn := decimal.NewFromInt(2)
	req := SeekRequest{
		Assumptions: domain.DefaultAssumptions(),
		Overrides:   domain.Overrides{Churn: &churn},
		Lever:       domain.LeverMonetization,
		TargetMRR:   decimal.NewFromInt(1461242), // churn 2 scenario at ARPU 9
	}

	result, err := solver.Seek(context.Background(), req)
	if err != nil {
		t.Fatalf("Expected seek to succeed, got %v", err)
	}

	distance := result.OptimalValue.Sub(decimal.NewFromInt(9)).Abs()
	if distance.GreaterThan(decimal.NewFromFloat(0.01)) {
		t.Errorf("Expected optimal ARPU near 9 with churn held at 2, got %s", result.OptimalValue)
	}
}

func TestSolver_Seek_UnknownLever(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())

	req := SeekRequest{
		Assumptions: domain.DefaultAssumptions(),
		Lever:       domain.LeverID("velocity"),
		TargetMRR:   decimal.NewFromInt(1000000),
	}

	result, err := solver.Seek(context.Background(), req)

	if err == nil {
		t.Error("Expected error for unknown lever, got nil")
	}
	if result != nil {
		t.Error("Expected result to be nil for unknown lever")
	}
}

func TestSolver_Seek_UnreachableTarget(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())

	req := SeekRequest{
		Assumptions: domain.DefaultAssumptions(),
		Lever:       domain.LeverMonetization,
		TargetMRR:   decimal.NewFromInt(10000000),
	}

	result, err := solver.Seek(context.Background(), req)

	if err == nil {
		t.Fatal("Expected error for unreachable target, got nil")
	}
	if result != nil {
		t.Error("Expected result to be nil for unreachable target")
	}

	seekErr, ok := err.(*SeekError)
	if !ok {
		t.Fatalf("Expected *SeekError, got %T", err)
	}
	if !strings.Contains(seekErr.Message, "out of reach") {
		t.Errorf("Expected out-of-reach message, got %q", seekErr.Message)
	}
}

func TestSolver_Seek_NegativeTarget(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())

	req := SeekRequest{
		Assumptions: domain.DefaultAssumptions(),
		Lever:       domain.LeverMonetization,
		TargetMRR:   decimal.NewFromInt(-1),
	}

	_, err := solver.Seek(context.Background(), req)

	if err == nil {
		t.Error("Expected error for negative target, got nil")
	}
}

func TestSolver_Seek_ContextCancellation(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := SeekRequest{
		Assumptions: domain.DefaultAssumptions(),
		Lever:       domain.LeverMonetization,
		TargetMRR:   decimal.NewFromInt(1262453),
	}

	_, err := solver.Seek(ctx, req)

	if err == nil {
		t.Error("Expected context cancelled error")
	}
	if err != context.Canceled {
		t.Errorf("Expected context.Canceled error, got %v", err)
	}
}

func TestFormatResult(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())

	req := SeekRequest{
		Assumptions: domain.DefaultAssumptions(),
		Lever:       domain.LeverMonetization,
		TargetMRR:   decimal.NewFromInt(1262453),
	}

	result, err := solver.Seek(context.Background(), req)
	if err != nil {
		t.Fatalf("Expected seek to succeed, got %v", err)
	}

	out := FormatResult(result)

	if !strings.Contains(out, "GOAL SEEK") {
		t.Error("Expected header in formatted result")
	}
	if !strings.Contains(out, "Monetization") {
		t.Error("Expected lever name in formatted result")
	}
	if !strings.Contains(out, "$1262453") {
		t.Error("Expected target MRR in formatted result")
	}
}
