package internal

import (
	"github.com/rios0rios0/debbrush/internal/domain/entities"
)

// AppInternal holds the controllers wired by the DIG container.
type AppInternal struct {
	controllers []entities.Controller
}

// NewAppInternal creates a new AppInternal from the aggregated controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: *controllers}
}

// GetControllers returns every subcommand controller, in registration order.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
