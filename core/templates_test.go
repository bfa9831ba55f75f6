package core

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRow struct {
	Semester    int
	Credits     int
	Grade       float64
	CreditError string
	GradeError  string
}

type testView struct {
	AppName            string
	DocsURL            string
	DefaultSemesters   int
	MaxSemesters       int
	MaxCredits         int
	NumSemesters       int
	CompletedSemesters int
	UseCustomCredits   bool
	Rows               []testRow
	Errors             map[string]string
	Result             interface{}
	ResultColor        string
}

func TestTemplates_Render(t *testing.T) {
	tmpls := NewTemplates(true)

	view := testView{
		AppName:            "CGPA Calculator",
		DocsURL:            "https://example.test/guide",
		DefaultSemesters:   8,
		MaxSemesters:       12,
		MaxCredits:         35,
		NumSemesters:       2,
		CompletedSemesters: 2,
		Rows:               []testRow{{Semester: 1, Credits: 16, Grade: 7}, {Semester: 2, Credits: 18, Grade: 7, GradeError: "bad grade"}},
		Errors:             map[string]string{"num_semesters": "too many"},
	}

	var buff bytes.Buffer
	require.NoError(t, tmpls.Render(&buff, "index", view))
	out := buff.String()
	assert.Contains(t, out, "<title>CGPA Calculator</title>")
	assert.Contains(t, out, `href="https://example.test/guide"`)
	assert.Contains(t, out, "too many")
	assert.Contains(t, out, "bad grade")
	assert.NotContains(t, out, "Your academic performance")
}

func TestTemplates_Render_unknown(t *testing.T) {
	var buff bytes.Buffer
	err := NewTemplates(false).Render(&buff, "lol", nil)
	assert.EqualError(t, err, `template "lol" not found`)
	assert.Zero(t, buff.Len())
}

func TestPercent(t *testing.T) {
	percent := templateFuncs["percent"].(func(v, max float64) float64)
	assert.Equal(t, 0.0, percent(5, 0))
	assert.Equal(t, 0.0, percent(-1, 10))
	assert.Equal(t, 75.0, percent(7.5, 10))
	assert.Equal(t, 100.0, percent(12, 10))
}

func TestTemplates_Render_brokenPages(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/_base.gohtml": {Data: []byte(`<html>{{template "content" .}}</html>`)},
		"templates/index.gohtml": {Data: []byte(`{{define "content"}}{{.Oops`)},
	}
	tmpls := NewTemplatesFS(fsys, true)

	var buff bytes.Buffer
	err := tmpls.Render(&buff, "index", nil)
	require.Error(t, err)
	assert.True(t, IsShutdown(err))
	assert.Zero(t, buff.Len())

	// the page set is not parsed again
	assert.True(t, IsShutdown(tmpls.Render(&buff, "index", nil)))
}
