package internal

import (
	"github.com/rios0rios0/verbump/internal/domain/entities"
	"github.com/rios0rios0/verbump/internal/infrastructure/controllers"
)

// AppInternal holds the controllers the CLI is built from.
type AppInternal struct {
	root        *controllers.BumpController
	controllers []entities.Controller
}

// NewAppInternal creates the AppInternal from the registered controllers.
func NewAppInternal(root *controllers.BumpController, subcommands *[]entities.Controller) *AppInternal {
	return &AppInternal{root: root, controllers: *subcommands}
}

// GetRootController returns the controller bound to the root command.
func (it *AppInternal) GetRootController() *controllers.BumpController {
	return it.root
}

// GetControllers returns the subcommand controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
