package echoapi

import (
	"fmt"
	"net/http"
	"strconv"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/cgpa/core"
	"github.com/trezcool/cgpa/core/cgpa"
)

const (
	indexPage    = "index"
	defaultGrade = 7.0
)

type (
	formPages struct {
		conf       *core.Config
		svc        *cgpa.Service
		translator ut.Translator
	}

	formRow struct {
		Semester    int
		Credits     int
		Grade       float64
		CreditError string
		GradeError  string
	}

	formView struct {
		AppName          string
		DocsURL          string
		DefaultSemesters int
		MaxSemesters     int
		MaxCredits       int

		NumSemesters       int
		CompletedSemesters int
		UseCustomCredits   bool
		Rows               []formRow
		Errors             map[string]string

		Result      *cgpa.Result
		ResultColor string
	}
)

func registerFormPages(app *echo.Echo, conf *core.Config, svc *cgpa.Service, translator ut.Translator) {
	pages := formPages{conf: conf, svc: svc, translator: translator}

	app.GET("/", pages.form)
	app.POST("/", pages.submit)
}

func (p *formPages) newView(calc cgpa.Calculation) formView {
	view := formView{
		AppName:            p.conf.AppName,
		DocsURL:            p.conf.DocsURL,
		DefaultSemesters:   len(p.svc.ReferencePlan()),
		MaxSemesters:       cgpa.MaxSemesters,
		MaxCredits:         cgpa.MaxCredits,
		NumSemesters:       calc.NumSemesters,
		CompletedSemesters: calc.CompletedSemesters,
		UseCustomCredits:   calc.UseCustomCredits,
	}

	rows := calc.NumSemesters
	if rows < 1 || rows > cgpa.MaxSemesters {
		rows = len(calc.Grades)
	}
	plan := cgpa.DeriveCreditPlan(rows, p.svc.ReferencePlan())
	view.Rows = make([]formRow, rows)
	for i := range view.Rows {
		row := formRow{Semester: i + 1, Credits: plan[i], Grade: defaultGrade}
		if calc.UseCustomCredits && i < len(calc.Credits) {
			row.Credits = calc.Credits[i]
		}
		if i < len(calc.Grades) {
			row.Grade = calc.Grades[i]
		}
		view.Rows[i] = row
	}
	return view
}

// defaultSemesters is the reference plan length, capped to what a calculation accepts.
func (p *formPages) defaultSemesters() int {
	return min(len(p.svc.ReferencePlan()), cgpa.MaxSemesters)
}

// form renders an empty form, with `?semesters=N` rows (default: the reference plan length).
func (p *formPages) form(ctx echo.Context) error {
	semesters := p.defaultSemesters()
	if err := echo.QueryParamsBinder(ctx).Int("semesters", &semesters).BindError(); err != nil {
		semesters = p.defaultSemesters()
		calc := cgpa.Calculation{NumSemesters: semesters, CompletedSemesters: semesters}
		return p.renderErrors(ctx, calc, map[string]string{"num_semesters": "must be an integer"})
	}
	if semesters < 1 || semesters > cgpa.MaxSemesters {
		semesters = p.defaultSemesters()
	}

	view := p.newView(cgpa.Calculation{NumSemesters: semesters, CompletedSemesters: semesters})
	return ctx.Render(http.StatusOK, indexPage, view)
}

// submit computes the CGPA of the submitted form and renders it below the form.
// Invalid inputs re-render the form with the errors next to the faulty fields.
func (p *formPages) submit(ctx echo.Context) error {
	calc, fldErrs := p.bindCalculation(ctx)
	if len(fldErrs) > 0 {
		return p.renderErrors(ctx, calc, fldErrs)
	}

	res, err := p.svc.Calculate(calc)
	if err != nil {
		switch vErr := errors.Cause(err).(type) {
		case validator.ValidationErrors:
			return p.renderErrors(ctx, calc, core.FieldErrors(vErr, p.translator))
		case *core.ValidationError:
			fldErrs = make(map[string]string, len(vErr.Fields))
			for _, fe := range vErr.Fields {
				fldErrs[fe.Field] = fe.Error
			}
			if len(fldErrs) == 0 {
				fldErrs["form"] = vErr.Error()
			}
			return p.renderErrors(ctx, calc, fldErrs)
		default:
			return err
		}
	}

	view := p.newView(calc)
	view.Result = &res
	view.ResultColor = res.Classification.Color()
	return ctx.Render(http.StatusOK, indexPage, view)
}

func (p *formPages) renderErrors(ctx echo.Context, calc cgpa.Calculation, fldErrs map[string]string) error {
	view := p.newView(calc)
	view.Errors = fldErrs
	for i := range view.Rows {
		view.Rows[i].CreditError = fldErrs[fmt.Sprintf("credits[%d]", i)]
		view.Rows[i].GradeError = fldErrs[fmt.Sprintf("grades[%d]", i)]
	}
	return ctx.Render(http.StatusBadRequest, indexPage, view)
}

// bindCalculation reads the urlencoded form. Every semester row posts one `credits` and one `grades` value.
func (p *formPages) bindCalculation(ctx echo.Context) (cgpa.Calculation, map[string]string) {
	var calc cgpa.Calculation
	fldErrs := make(map[string]string)

	params, err := ctx.FormParams()
	if err != nil {
		fldErrs["form"] = "invalid form data"
		return calc, fldErrs
	}

	parseInt := func(field string) int {
		n, err := strconv.Atoi(core.CleanString(params.Get(field)))
		if err != nil {
			fldErrs[field] = "must be an integer"
		}
		return n
	}
	calc.NumSemesters = parseInt("num_semesters")
	calc.CompletedSemesters = parseInt("completed_semesters")
	calc.UseCustomCredits, _ = strconv.ParseBool(params.Get("use_custom_credits"))

	for i, raw := range params["credits"] {
		n, err := strconv.Atoi(core.CleanString(raw))
		if err != nil {
			fldErrs[fmt.Sprintf("credits[%d]", i)] = "must be an integer"
		}
		calc.Credits = append(calc.Credits, n)
	}
	for i, raw := range params["grades"] {
		f, err := strconv.ParseFloat(core.CleanString(raw), 64)
		if err != nil {
			fldErrs[fmt.Sprintf("grades[%d]", i)] = "must be a number"
		}
		calc.Grades = append(calc.Grades, f)
	}
	return calc, fldErrs
}
