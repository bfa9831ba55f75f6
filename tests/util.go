package testutil

import (
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/trezcool/cgpa/core"
	"github.com/trezcool/cgpa/core/cgpa"
	logsvc "github.com/trezcool/cgpa/services/logger"
)

// NewConfig returns the configuration used by tests; it does not read the environment.
func NewConfig() *core.Config {
	return &core.Config{
		Env:      "TEST",
		TestMode: true,
		AppName:  "CGPA Calculator",
		Build:    "test",
		LogLevel: "debug",
		DocsURL:  "https://example.test/guide",
		Server: core.ServerConfig{
			Address:         ":0",
			ShutdownTimeout: time.Second,
			DisableReqLogs:  true,
		},
	}
}

// NewService returns a cgpa.Service logging into a discarded logger, along with the hook recording its entries.
func NewService(plan ...int) (*cgpa.Service, ut.Translator, *test.Hook) {
	std, hook := test.NewNullLogger()
	std.SetLevel(logrus.DebugLevel)

	validate, translator := core.NewValidator()
	cgpa.InitValidators(validate, translator)

	svc := cgpa.NewService(cgpa.ServiceDeps{
		Logger:        logsvc.NewConsoleLogger(std),
		Validate:      validate,
		ReferencePlan: plan,
	})
	return svc, translator, hook
}
