package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/skilllogic/schoolcrm/apps/api/echo"
	"github.com/skilllogic/schoolcrm/core"
	"github.com/skilllogic/schoolcrm/core/school"
	"github.com/skilllogic/schoolcrm/services/logger"
	"github.com/skilllogic/schoolcrm/storage/database/inmem"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	var appLogger core.Logger
	if core.Conf.Debug || core.Conf.RollbarToken == "" {
		appLogger = logsvc.NewConsoleLogger(std)
	} else {
		appLogger = logsvc.NewRollbarLogger(std, core.Conf)
	}
	appLogger.Enable(!core.Conf.TestMode)

	// set up the demo data store
	db, err := inmemdb.OpenSeeded()
	errAndDie(std, err)

	// set up services
	schoolSvc := school.NewService(inmemdb.NewRepository(db))

	// start API server
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	app := echoapi.NewServer(
		core.Conf.Addr(),
		shutdown,
		&echoapi.Deps{
			Logger:    appLogger,
			SchoolSvc: schoolSvc,
		},
	)

	serverErrors := make(chan error, 1)
	go func() {
		std.Printf("starting %s API on %s", core.Conf.AppName, core.Conf.Addr())
		serverErrors <- app.Start()
	}()

	select {
	case err := <-serverErrors:
		errAndDie(std, err)
	case sig := <-shutdown:
		std.Printf("shutting down: %v", sig)

		ctx, cancel := context.WithTimeout(context.Background(), core.Conf.Server.ShutdownTimeout)
		defer cancel()

		if err := app.Stop(ctx); err != nil {
			std.Printf("graceful shutdown failed: %v", err)
		}
	}
}

func errAndDie(std *log.Logger, err error) {
	if err != nil {
		std.Fatal(err)
	}
}
