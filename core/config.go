package core

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Limits of a program, shared with the cgpa package.
const (
	MaxPlanSemesters   = 12
	MaxSemesterCredits = 35
)

type (
	ServerConfig struct {
		Address         string
		ShutdownTimeout time.Duration
		DisableReqLogs  bool
	}

	CreditsConfig struct {
		DefaultPlan []int // empty: the built-in reference plan
	}

	Config struct {
		Env          string // DEV (local; default), TEST, QA, PROD
		Debug        bool
		TestMode     bool
		AppName      string
		Build        string
		LogLevel     string
		RollbarToken string
		DocsURL      string
		Server       ServerConfig
		Credits      CreditsConfig
	}
)

// NewConfig reads the configuration from the environment (and the optional `config/.env.<env>` file).
// It is meant to be called once by each entry point and handed down explicitly.
func NewConfig() (*Config, error) {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", false)
	conf.SetDefault("appName", "CGPA Calculator")
	conf.SetDefault("build", "develop")
	conf.SetDefault("logLevel", "info")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("docsURL", "https://drive.google.com/file/d/1JyIgnGSZpeBphGtcoDdaj8eXnVvROFb8/view?usp=drivesdk")
	conf.SetDefault("serverAddress", ":8000")
	conf.SetDefault("serverShutdownTimeout", 5*time.Second)
	conf.SetDefault("serverDisableReqLogs", false)
	conf.SetDefault("creditsDefaultPlan", "")

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
		conf.SetDefault("debug", true)
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "getting working directory")
	}

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "stat %s", dotEnvPath)
	}
	conf.AutomaticEnv()

	plan, err := ParseIntList(conf.GetString("creditsDefaultPlan"))
	if err != nil {
		return nil, errors.Wrap(err, "config: default credit plan")
	}

	return &Config{
		Env:          env,
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		AppName:      conf.GetString("appName"),
		Build:        conf.GetString("build"),
		LogLevel:     conf.GetString("logLevel"),
		RollbarToken: conf.GetString("rollbarToken"),
		DocsURL:      conf.GetString("docsURL"),
		Server: ServerConfig{
			Address:         conf.GetString("serverAddress"),
			ShutdownTimeout: conf.GetDuration("serverShutdownTimeout"),
			DisableReqLogs:  conf.GetBool("serverDisableReqLogs"),
		},
		Credits: CreditsConfig{
			DefaultPlan: plan,
		},
	}, nil
}

// Validate checks the loaded values before any service is built from them.
func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return errors.New("config: server address is required")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("config: server shutdown timeout must be positive")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "config: log level")
	}
	plan := c.Credits.DefaultPlan
	if len(plan) > MaxPlanSemesters {
		return errors.Errorf("config: default credit plan has %d semesters, at most %d allowed", len(plan), MaxPlanSemesters)
	}
	var total int
	for i, cr := range plan {
		if cr < 0 || cr > MaxSemesterCredits {
			return errors.Errorf("config: default credit plan entry %d (%d) must be between 0 and %d", i+1, cr, MaxSemesterCredits)
		}
		total += cr
	}
	if len(plan) > 0 && total <= 0 {
		return errors.New("config: default credit plan must carry positive credit")
	}
	return nil
}
