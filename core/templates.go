package core

import (
	"bytes"
	"embed"
	htmltmpl "html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

const templateBase = "_base.gohtml"

var templateFuncs = htmltmpl.FuncMap{
	// percent returns v as a share of max, clamped to [0, 100].
	"percent": func(v, max float64) float64 {
		if max <= 0 || v <= 0 {
			return 0
		}
		if v >= max {
			return 100
		}
		return v / max * 100
	},
}

// Templates is a cache of html pages, each one parsed with the base layout.
type Templates struct {
	fsys   fs.FS
	strict bool

	init  sync.Once
	cache map[string]*htmltmpl.Template // {name (without ext): *Template}
	err   error
}

// NewTemplates returns a lazy cache of the embedded pages.
// In strict mode (debug|test) missing keys fail the rendering.
func NewTemplates(strict bool) *Templates {
	return NewTemplatesFS(templateFS, strict)
}

// NewTemplatesFS reads the pages from the `templates/` directory of fsys.
func NewTemplatesFS(fsys fs.FS, strict bool) *Templates {
	return &Templates{fsys: fsys, strict: strict}
}

func (t *Templates) parse() {
	t.cache = make(map[string]*htmltmpl.Template)

	fps, err := fs.Glob(t.fsys, "templates/*.gohtml")
	if err != nil {
		t.err = errors.Wrap(err, "core.Templates.parse")
		return
	}
	for _, fp := range fps {
		fname := path.Base(fp)
		if strings.HasPrefix(fname, "_") {
			continue
		}
		tmpl, err := htmltmpl.New(templateBase).
			Funcs(templateFuncs).
			ParseFS(t.fsys, path.Join("templates", templateBase), fp)
		if err != nil {
			t.err = errors.Wrapf(err, "core.Templates.parse(%s)", fname)
			return
		}
		if t.strict {
			tmpl = tmpl.Option("missingkey=error")
		}
		t.cache[strings.TrimSuffix(fname, path.Ext(fname))] = tmpl
	}
}

// Render executes the named page into w. Nothing is written if the rendering fails.
// A page set that does not parse is reported as a shutdown error: no page can ever be served.
func (t *Templates) Render(w io.Writer, name string, data interface{}) error {
	t.init.Do(t.parse) // only parse once, during the first rendering
	if t.err != nil {
		return NewShutdownError(t.err.Error())
	}
	tmpl, ok := t.cache[name]
	if !ok {
		return errors.Errorf("template %q not found", name)
	}

	var buff bytes.Buffer
	if err := tmpl.Execute(&buff, data); err != nil {
		return errors.Wrapf(err, "rendering %s", name)
	}
	_, err := buff.WriteTo(w)
	return err
}
