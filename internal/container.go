package internal

import (
	"fmt"

	"go.uber.org/dig"

	"github.com/rios0rios0/debbrush/internal/domain/commands"
	"github.com/rios0rios0/debbrush/internal/infrastructure/controllers"
	"github.com/rios0rios0/debbrush/internal/infrastructure/repositories"
)

// providerLayer is one package contributing constructors to the container.
type providerLayer struct {
	name     string
	register func(*dig.Container) error
}

// RegisterProviders wires the file editors and tool wrappers first, then the
// editing commands built on them, then the subcommand controllers.
func RegisterProviders(container *dig.Container) error {
	layers := []providerLayer{
		{name: "repository", register: repositories.RegisterProviders},
		{name: "command", register: commands.RegisterProviders},
		{name: "controller", register: controllers.RegisterProviders},
	}
	for _, layer := range layers {
		if err := layer.register(container); err != nil {
			return fmt.Errorf("failed to register %s providers: %w", layer.name, err)
		}
	}

	if err := container.Provide(NewAppInternal); err != nil {
		return fmt.Errorf("failed to register the subcommand set: %w", err)
	}
	return nil
}

// Resolve builds a container and returns the subcommand set.
func Resolve() (*AppInternal, error) {
	container := dig.New()
	if err := RegisterProviders(container); err != nil {
		return nil, err
	}

	var app *AppInternal
	if err := container.Invoke(func(resolved *AppInternal) { app = resolved }); err != nil {
		return nil, fmt.Errorf("failed to resolve subcommands: %w", dig.RootCause(err))
	}
	return app, nil
}
