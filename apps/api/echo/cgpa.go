package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/cgpa/core"
	"github.com/trezcool/cgpa/core/cgpa"
)

type cgpaApi struct {
	svc *cgpa.Service
}

func registerCgpaAPI(g *echo.Group, svc *cgpa.Service) {
	api := cgpaApi{svc: svc}

	g.POST("/cgpa", api.calculate)
	g.GET("/credit-plan", api.creditPlan)
	g.GET("/classifications", api.classifications)
}

// Handlers

func (api *cgpaApi) calculate(ctx echo.Context) error {
	var data cgpa.Calculation
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Calculation")
	}
	res, err := api.svc.Calculate(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *cgpaApi) creditPlan(ctx echo.Context) error {
	semesters := cgpa.DefaultSemesterCount
	if err := echo.QueryParamsBinder(ctx).Int("semesters", &semesters).BindError(); err != nil {
		return core.NewValidationError(err, core.FieldError{Field: "semesters", Error: "must be an integer"})
	}

	plan, err := api.svc.CreditPlan(semesters)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, CreditPlanResponse{
		Semesters:    semesters,
		Credits:      plan,
		TotalCredits: cgpa.TotalCredits(plan),
	})
}

func (api *cgpaApi) classifications(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Classifications())
}

type CreditPlanResponse struct {
	Semesters    int   `json:"semesters"`
	Credits      []int `json:"credits"`
	TotalCredits int   `json:"total_credits"`
}
