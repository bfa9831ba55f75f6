package tests

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	. "github.com/trezcool/cgpa/apps/api/echo"
	"github.com/trezcool/cgpa/core/cgpa"
	logsvc "github.com/trezcool/cgpa/services/logger"
	"github.com/trezcool/cgpa/tests"
)

func Test_formPages_form(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantRows int
	}{
		{name: "default program", path: "/", wantRows: 8},
		{name: "custom program", path: "/?semesters=3", wantRows: 3},
		{name: "out of range program", path: "/?semesters=42", wantRows: 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, tt.path)
			app.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
			body := rec.Body.String()
			assert.Equal(t, tt.wantRows, strings.Count(body, `name="grades"`))
			assert.Contains(t, body, "View CGPA calculation guide")
			assert.NotContains(t, body, "Your academic performance")
		})
	}
}

func Test_formPages_form_badSemesters(t *testing.T) {
	req, rec := newRequest(http.MethodGet, "/?semesters=lol")
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, `<span class="error">must be an integer</span>`)
	assert.Equal(t, 8, strings.Count(body, `name="grades"`))
}

func Test_formPages_form_longReferencePlan(t *testing.T) {
	plan := make([]int, cgpa.MaxSemesters+2)
	for i := range plan {
		plan[i] = 20
	}
	svc, translator, _ := testutil.NewService(plan...)
	std, _ := test.NewNullLogger()
	srv := NewServer(ServerDeps{
		Conf:       testutil.NewConfig(),
		Logger:     logsvc.NewConsoleLogger(std),
		CgpaSvc:    svc,
		Translator: translator,
	})

	req, rec := newRequest(http.MethodGet, "/")
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Equal(t, cgpa.MaxSemesters, strings.Count(body, `name="grades"`))
	assert.Contains(t, body, `name="num_semesters" min="1" max="12" step="1" value="12"`)

	// the rendered form can be submitted as is
	form := url.Values{"num_semesters": {"12"}, "completed_semesters": {"12"}}
	for i := 0; i < cgpa.MaxSemesters; i++ {
		form.Add("credits", "20")
		form.Add("grades", "7")
	}
	req, rec = newFormRequest(form)
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Your academic performance")
}

func Test_formPages_submit(t *testing.T) {
	form := url.Values{
		"num_semesters":       {"4"},
		"completed_semesters": {"4"},
		"use_custom_credits":  {"true"},
		"credits":             {"20", "22", "18", "20"},
		"grades":              {"8.0", "9.0", "7.5", "8.5"},
	}
	req, rec := newFormRequest(form)
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Your academic performance")
	assert.Contains(t, body, "Excellent")
	assert.Contains(t, body, "⭐")
	assert.Contains(t, body, "Stable performance")
	assert.NotContains(t, body, "semester(s) remaining")
	assert.Equal(t, 4, strings.Count(body, `name="grades"`))

	last := logHook.LastEntry()
	if assert.NotNil(t, last) {
		assert.Equal(t, logrus.InfoLevel, last.Level)
		assert.Contains(t, last.Message, "calculation succeeded")
	}
}

func Test_formPages_submit_partial(t *testing.T) {
	form := url.Values{
		"num_semesters":       {"8"},
		"completed_semesters": {"2"},
		"credits":             {"1", "1", "1", "1", "1", "1", "1", "1"}, // ignored without use_custom_credits
		"grades":              {"9.5", "9.0", "7", "7", "7", "7", "7", "7"},
	}
	req, rec := newFormRequest(form)
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Outstanding")
	assert.Contains(t, body, "You have 6 semester(s) remaining in your plan.")
	assert.Contains(t, body, `<div class="metric-value">34</div>`)
}

func Test_formPages_submit_invalid(t *testing.T) {
	tests := []struct {
		name    string
		form    url.Values
		wantErr string
	}{
		{
			name: "not a number",
			form: url.Values{
				"num_semesters": {"2"}, "completed_semesters": {"2"}, "grades": {"8", "lol"},
			},
			wantErr: "must be a number",
		},
		{
			name: "missing semesters",
			form: url.Values{
				"completed_semesters": {"2"}, "grades": {"8", "9"},
			},
			wantErr: "must be an integer",
		},
		{
			name: "grade out of range",
			form: url.Values{
				"num_semesters": {"2"}, "completed_semesters": {"2"}, "grades": {"8", "10.5"},
			},
			wantErr: "grades[1] must be 10 or less",
		},
		{
			name: "completed above total",
			form: url.Values{
				"num_semesters": {"2"}, "completed_semesters": {"3"}, "grades": {"8", "9", "7"},
			},
			wantErr: "completed semesters must be between 1 and the number of semesters",
		},
		{
			name: "no credits",
			form: url.Values{
				"num_semesters": {"2"}, "completed_semesters": {"2"}, "use_custom_credits": {"true"},
				"credits": {"0", "0"}, "grades": {"8", "9"},
			},
			wantErr: "at least one semester must carry positive credit",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newFormRequest(tt.form)
			app.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
			body := rec.Body.String()
			assert.Contains(t, body, tt.wantErr)
			assert.NotContains(t, body, "Your academic performance")
		})
	}
}
