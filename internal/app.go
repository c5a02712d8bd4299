package internal

import (
	"github.com/rios0rios0/updatedon/internal/domain/entities"
	"github.com/rios0rios0/updatedon/internal/infrastructure/controllers"
)

// AppInternal is the resolved object graph the CLI is built from.
type AppInternal struct {
	root entities.Controller
}

// NewAppInternal creates the application with the check controller as its root command.
func NewAppInternal(checkController *controllers.CheckController) *AppInternal {
	return &AppInternal{root: checkController}
}

// GetRootController returns the controller bound to the root command.
func (it *AppInternal) GetRootController() entities.Controller {
	return it.root
}
