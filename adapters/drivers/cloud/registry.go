package clouddrv

import (
	"fmt"

	"github.com/hostwire/hostwire/domain/model"
)

// Driver abstracts cloud-specific behavior behind the CloudPort contract.
// Implementations live under adapters/drivers/cloud/<name> and should return
// a driver identifier such as "route53" via ID().
type Driver interface {
	ID() string
	model.CloudPort
}

// driverFactory is a constructor function for a cloud driver.
type driverFactory func(settings map[string]string) (Driver, error)

// registry holds registered drivers by name.
var registry = map[string]driverFactory{}

// Register makes a driver available by the given name. Drivers should call
// this from their init() function.
func Register(name string, factory driverFactory) {
	registry[name] = factory
}

// GetDriverFactory returns the driver factory function for the given name.
func GetDriverFactory(name string) (driverFactory, bool) {
	factory, exists := registry[name]
	return factory, exists
}

// GetCloudPort constructs the CloudPort for the given provider definition.
func GetCloudPort(provider *model.Provider) (model.CloudPort, error) {
	if provider == nil {
		return nil, model.ErrProviderNotFound
	}
	factory, ok := GetDriverFactory(provider.Driver)
	if !ok {
		return nil, fmt.Errorf("unknown cloud driver %q: %w", provider.Driver, model.ErrProviderNotFound)
	}
	return factory(provider.Settings)
}
