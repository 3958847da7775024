package browser

import (
	"github.com/tebeka/selenium"

	"github.com/selebrow/journey/pkg/models"
)

// Session one remote browser session, owned by a single scenario run
type Session interface {
	ID() string
	Descriptor() models.CapabilityDescriptor
	Driver() selenium.WebDriver
	// Close quits the remote session, it is safe to call more than once
	Close()
}
