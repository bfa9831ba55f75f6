package cgpa

import (
	"errors"
	"math"
)

var (
	// errors
	ErrLengthMismatch = errors.New("grades and credits must have the same number of semesters")
	ErrOutOfRange     = errors.New("grades must be between 0 and 10 and credits between 0 and 35")
	ErrNoCredits      = errors.New("at least one semester must carry positive credit")
)

// DeriveCreditPlan returns a credit plan of `total` semesters built from `reference`:
// truncated when shorter, padded with the last reference value when longer.
func DeriveCreditPlan(total int, reference []int) []int {
	if total <= 0 || len(reference) == 0 {
		return []int{}
	}
	plan := make([]int, total)
	n := copy(plan, reference)
	last := reference[len(reference)-1]
	for i := n; i < total; i++ {
		plan[i] = last
	}
	return plan
}

// Compute returns the credit-weighted average of grades.
// No rounding is applied.
func Compute(grades []float64, credits []int) (float64, error) {
	if len(grades) != len(credits) {
		return 0, ErrLengthMismatch
	}

	var total int
	var weighted float64
	for i, cr := range credits {
		g := grades[i]
		if cr < 0 || cr > MaxCredits || g < 0 || g > MaxGradePoint || math.IsNaN(g) {
			return 0, ErrOutOfRange
		}
		total += cr
		weighted += g * float64(cr)
	}
	if total <= 0 {
		return 0, ErrNoCredits
	}
	return weighted / float64(total), nil
}

// Classify maps a CGPA to its standing. Thresholds are inclusive on the lower side.
func Classify(cgpa float64) Classification {
	for _, b := range Bands[:len(Bands)-1] {
		if cgpa >= b.LowerBound {
			return b.Label
		}
	}
	return Bands[len(Bands)-1].Label
}

// BuildBreakdown returns one row per completed semester.
// credits and grades are expected to hold `completed` entries; extra entries are ignored.
func BuildBreakdown(completed int, credits []int, grades []float64) []BreakdownRow {
	n := completed
	if len(credits) < n {
		n = len(credits)
	}
	if len(grades) < n {
		n = len(grades)
	}
	if n < 0 {
		n = 0
	}

	rows := make([]BreakdownRow, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, BreakdownRow{
			SemesterRecord: SemesterRecord{
				Semester:   i + 1,
				Credits:    credits[i],
				GradePoint: grades[i],
			},
			Weighted: grades[i] * float64(credits[i]),
		})
	}
	return rows
}

// TotalCredits sums the credit loads.
func TotalCredits(credits []int) int {
	var total int
	for _, cr := range credits {
		total += cr
	}
	return total
}
