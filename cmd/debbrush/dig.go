package main

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/debbrush/internal"
)

// injectAppContext resolves the subcommand controllers and stops the process
// when the container cannot be wired.
func injectAppContext() *internal.AppInternal {
	appContext, err := internal.Resolve()
	if err != nil {
		logger.Fatalf("Failed to wire 'debbrush': %s", err)
	}
	return appContext
}
