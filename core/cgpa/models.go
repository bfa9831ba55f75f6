package cgpa

import "github.com/trezcool/cgpa/core"

// Domain limits of a single calculation.
const (
	DefaultSemesterCount = 8
	MaxSemesters         = core.MaxPlanSemesters
	MaxCredits           = core.MaxSemesterCredits
	MaxGradePoint        = 10.0
)

// DefaultCreditPlan is the reference credit load per semester (GEC Computer curriculum).
var DefaultCreditPlan = []int{16, 18, 23, 24, 22, 22, 17, 18}

// Classification is the academic standing derived from a CGPA.
type Classification string

const (
	Outstanding      Classification = "Outstanding"
	Excellent        Classification = "Excellent"
	Good             Classification = "Good"
	Satisfactory     Classification = "Satisfactory"
	NeedsImprovement Classification = "Needs improvement"
)

// Band is a classification threshold: every CGPA >= LowerBound (and below the previous band) gets Label.
type Band struct {
	LowerBound float64        `json:"lower_bound"`
	Label      Classification `json:"label"`
	Color      string         `json:"color"`
	Emoji      string         `json:"emoji"`
}

// Bands are ordered from the highest standing to the lowest.
// The last band has no lower bound.
var Bands = []Band{
	{LowerBound: 9.0, Label: Outstanding, Color: "#10B981", Emoji: "🌟"},
	{LowerBound: 8.0, Label: Excellent, Color: "#3B82F6", Emoji: "⭐"},
	{LowerBound: 7.0, Label: Good, Color: "#8B5CF6", Emoji: "✨"},
	{LowerBound: 6.0, Label: Satisfactory, Color: "#F59E0B", Emoji: "👍"},
	{Label: NeedsImprovement, Color: "#EF4444", Emoji: "💪"},
}

const unknownColor = "#6B7280"

// Color returns the display color of the classification.
func (c Classification) Color() string {
	for _, b := range Bands {
		if b.Label == c {
			return b.Color
		}
	}
	return unknownColor
}

// Emoji returns the performance marker shown next to a CGPA; empty if unknown.
func (c Classification) Emoji() string {
	for _, b := range Bands {
		if b.Label == c {
			return b.Emoji
		}
	}
	return ""
}

// Rank orders classifications: 0 for NeedsImprovement up to 4 for Outstanding; -1 if unknown.
func (c Classification) Rank() int {
	for i, b := range Bands {
		if b.Label == c {
			return len(Bands) - 1 - i
		}
	}
	return -1
}

// SemesterRecord holds the published results of one semester.
type SemesterRecord struct {
	Semester   int     `json:"semester"` // 1-based
	Credits    int     `json:"credits"`
	GradePoint float64 `json:"sgpa"`
}

// BreakdownRow is a SemesterRecord with its contribution to the weighted sum.
type BreakdownRow struct {
	SemesterRecord
	Weighted float64 `json:"weighted"`
}

// Result is the outcome of a successful calculation.
type Result struct {
	CGPA               float64        `json:"cgpa"`
	TotalCredits       int            `json:"total_credits"`
	Classification     Classification `json:"classification"`
	Breakdown          []BreakdownRow `json:"breakdown"`
	CompletedSemesters int            `json:"completed_semesters"`
	TotalSemesters     int            `json:"total_semesters"`
	RemainingSemesters int            `json:"remaining_semesters"`
	Trend              Trend          `json:"trend"`
}

// Calculation contains the information needed to compute a CGPA.
// Credits may be omitted unless UseCustomCredits is set, the default plan is used instead.
// Grades hold one SGPA per completed semester; extra grades for future semesters are ignored.
type Calculation struct {
	NumSemesters       int       `json:"num_semesters" validate:"required,min=1,max=12"`
	CompletedSemesters int       `json:"completed_semesters" validate:"required,min=1,ltefield=NumSemesters"`
	UseCustomCredits   bool      `json:"use_custom_credits"`
	Credits            []int     `json:"credits" validate:"omitempty,dive,min=0,max=35"`
	Grades             []float64 `json:"grades" validate:"required,min=1,dive,min=0,max=10"`
}
