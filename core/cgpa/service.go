package cgpa

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/cgpa/core"
)

var errInvalidSemesters = fmt.Sprintf("number of semesters must be between 1 and %d", MaxSemesters)

type (
	ServiceDeps struct {
		Logger   core.Logger
		Validate *validator.Validate
		// ReferencePlan overrides DefaultCreditPlan when not empty.
		ReferencePlan []int
	}

	Service struct {
		log      core.Logger
		validate *validator.Validate
		plan     []int
	}
)

func NewService(deps ServiceDeps) *Service {
	plan := DefaultCreditPlan
	if len(deps.ReferencePlan) > 0 {
		plan = make([]int, len(deps.ReferencePlan))
		copy(plan, deps.ReferencePlan)
	}
	return &Service{
		log:      deps.Logger,
		validate: deps.Validate,
		plan:     plan,
	}
}

// ReferencePlan returns a copy of the plan used for default credits.
func (svc *Service) ReferencePlan() []int {
	return DeriveCreditPlan(len(svc.plan), svc.plan)
}

// CreditPlan returns the default credit load of a program of `total` semesters.
func (svc *Service) CreditPlan(total int) ([]int, error) {
	if total < 1 || total > MaxSemesters {
		return nil, core.NewValidationError(
			errors.New(errInvalidSemesters),
			core.FieldError{Field: "semesters", Error: errInvalidSemesters},
		)
	}
	return DeriveCreditPlan(total, svc.plan), nil
}

// Classifications returns the classification bands, highest first.
func (svc *Service) Classifications() []Band {
	bands := make([]Band, len(Bands))
	copy(bands, Bands)
	return bands
}

// Calculate validates calc then computes the CGPA of its completed semesters.
func (svc *Service) Calculate(calc Calculation) (Result, error) {
	if err := svc.validate.Struct(calc); err != nil {
		svc.log.Warn("calculation rejected", err)
		return Result{}, err
	}

	credits := calc.Credits
	if !calc.UseCustomCredits {
		credits = DeriveCreditPlan(calc.NumSemesters, svc.plan)
	}
	completed := calc.CompletedSemesters
	effCredits := credits[:completed]
	effGrades := calc.Grades[:completed]

	svc.log.Info(fmt.Sprintf(
		"calculation requested: %d of %d semesters, %d credits",
		completed, calc.NumSemesters, TotalCredits(effCredits),
	))

	value, err := Compute(effGrades, effCredits)
	if err != nil {
		svc.log.Warn("calculation failed", err)
		field := "grades"
		if errors.Is(err, ErrNoCredits) {
			field = "credits"
		}
		return Result{}, core.NewValidationError(err, core.FieldError{Field: field, Error: err.Error()})
	}

	res := Result{
		CGPA:               value,
		TotalCredits:       TotalCredits(effCredits),
		Classification:     Classify(value),
		Breakdown:          BuildBreakdown(completed, effCredits, effGrades),
		CompletedSemesters: completed,
		TotalSemesters:     calc.NumSemesters,
		RemainingSemesters: calc.NumSemesters - completed,
		Trend:              AnalyzeTrend(effGrades),
	}
	svc.log.Info(fmt.Sprintf("calculation succeeded: %.2f (%s)", res.CGPA, res.Classification))
	return res, nil
}
