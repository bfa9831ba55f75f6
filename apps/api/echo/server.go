package echoapi

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/cgpa/core"
	"github.com/trezcool/cgpa/core/cgpa"
)

type (
	ServerDeps struct {
		Conf       *core.Config
		Logger     core.Logger
		CgpaSvc    *cgpa.Service
		Translator ut.Translator
		Templates  *core.Templates // optional: the embedded pages
	}

	Server struct {
		app      *echo.Echo
		conf     *core.Config
		logger   core.Logger
		errors   chan error
		shutdown chan os.Signal
	}

	// pageRenderer plugs core.Templates into echo.
	pageRenderer struct {
		tmpls *core.Templates
	}
)

func (r pageRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.tmpls.Render(w, name, data)
}

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		app:      echo.New(),
		conf:     deps.Conf,
		logger:   deps.Logger,
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	s.setup(deps)
	return s
}

func (s *Server) setup(deps ServerDeps) {
	debug := s.conf.Debug

	s.app.HideBanner = true
	s.app.Debug = debug
	s.app.Logger.SetLevel(log.INFO)
	if debug {
		s.app.Logger.SetLevel(log.DEBUG)
	}
	tmpls := deps.Templates
	if tmpls == nil {
		tmpls = core.NewTemplates(debug || s.conf.TestMode)
	}
	s.app.Renderer = pageRenderer{tmpls: tmpls}
	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.logger, deps.Translator, s.SignalShutdown)

	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.New().String() },
	}))
	if !s.conf.Server.DisableReqLogs {
		s.app.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
			Format: "${time_rfc3339} ${id} ${method} ${uri} ${status} ${latency_human}\n",
		}))
	}
	// do not recover in DEV|TEST mode
	if !(debug || s.conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.GET("/healthz", s.health)

	registerFormPages(s.app, s.conf, deps.CgpaSvc, deps.Translator)

	v1 := s.app.Group("/v1")
	registerCgpaAPI(v1, deps.CgpaSvc)
}

// Start serves until the server is shut down. Listening errors are sent to Errors().
func (s *Server) Start() {
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.logger.Info("API listening on " + s.conf.Server.Address)
	if err := s.app.Start(s.conf.Server.Address); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *Server) Errors() <-chan error {
	return s.errors
}

func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

// SignalShutdown asks Start's caller to gracefully shut the server down.
func (s *Server) SignalShutdown() {
	select {
	case s.shutdown <- syscall.SIGTERM:
	default: // already signaled
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

type healthResponse struct {
	Status string `json:"status"`
	Build  string `json:"build"`
	Env    string `json:"env"`
}

func (s *Server) health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, healthResponse{Status: "ok", Build: s.conf.Build, Env: s.conf.Env})
}
