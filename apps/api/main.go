package main

import (
	"context"
	"fmt"
	"log"
	"os"

	echoapi "github.com/trezcool/cgpa/apps/api/echo"
	"github.com/trezcool/cgpa/core"
	"github.com/trezcool/cgpa/core/cgpa"
	logsvc "github.com/trezcool/cgpa/services/logger"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf, err := core.NewConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if err = conf.Validate(); err != nil {
		log.Fatalf("validating config: %v", err)
	}

	logger := logsvc.New(logsvc.NewStdLogger(os.Stdout, conf.LogLevel), conf)

	validate, translator := core.NewValidator()
	cgpa.InitValidators(validate, translator)

	cgpaSvc := cgpa.NewService(cgpa.ServiceDeps{
		Logger:        logger,
		Validate:      validate,
		ReferencePlan: conf.Credits.DefaultPlan,
	})

	// =========================================================================
	// Start API Service

	logger.Info(fmt.Sprintf("Application initializing : version %q, env %q", conf.Build, conf.Env))
	defer logger.Info("Application stopped")

	server := echoapi.NewServer(echoapi.ServerDeps{
		Conf:       conf,
		Logger:     logger,
		CgpaSvc:    cgpaSvc,
		Translator: translator,
	})

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}
