package entities

import (
	"time"

	"go.uber.org/dig"
)

// Clock returns the current moment. Future-date validation reads it.
type Clock func() time.Time

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Settings are not provided here: they depend on the --config flag, read by the controllers layer
	if err := container.Provide(func() Clock { return time.Now }); err != nil {
		return err
	}

	return nil
}
