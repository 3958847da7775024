package browser

import (
	"context"

	"github.com/selebrow/journey/pkg/config"
	"github.com/selebrow/journey/pkg/models"
)

type SessionManager interface {
	Open(ctx context.Context, desc models.CapabilityDescriptor, creds config.Credentials) (Session, error)
}
