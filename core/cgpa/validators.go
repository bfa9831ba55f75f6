package cgpa

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/cgpa/core"
)

var (
	creditsLenTag  = "credits_len"
	creditsLenText = "one credit entry is required per semester"

	gradesLenTag  = "grades_len"
	gradesLenText = "one SGPA is required per completed semester"

	completedTag  = "ltefield"
	completedText = "completed semesters must be between 1 and the number of semesters"
)

// InitValidators registers the struct validations and messages of this package.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	validate.RegisterStructValidation(calculationStructValidation, Calculation{})
	core.RegisterCustomTranslation(validate, translator, creditsLenTag, creditsLenText)
	core.RegisterCustomTranslation(validate, translator, gradesLenTag, gradesLenText)
	core.RegisterCustomTranslation(validate, translator, completedTag, completedText, true)
}

// calculationStructValidation checks that the per-semester lists match the semester counts.
func calculationStructValidation(sl validator.StructLevel) {
	calc, ok := sl.Current().Interface().(Calculation)
	if !ok {
		return
	}
	if calc.UseCustomCredits && len(calc.Credits) != calc.NumSemesters {
		sl.ReportError(calc.Credits, "credits", "Credits", creditsLenTag, "")
	}
	if calc.CompletedSemesters > 0 && len(calc.Grades) > 0 &&
		len(calc.Grades) != calc.CompletedSemesters && len(calc.Grades) != calc.NumSemesters {
		sl.ReportError(calc.Grades, "grades", "Grades", gradesLenTag, "")
	}
}
