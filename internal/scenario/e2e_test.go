//go:build e2e

package scenario

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zaptest"

	"github.com/selebrow/journey/internal/browser/remote"
	"github.com/selebrow/journey/pkg/capabilities"
	"github.com/selebrow/journey/pkg/config"
	"github.com/selebrow/journey/pkg/event"
	"github.com/selebrow/journey/pkg/models"
)

// Runs the journey on the real grid, e.g.
// BROWSERSTACK_USERNAME=... BROWSERSTACK_ACCESS_KEY=... go test -tags e2e ./internal/scenario/...
func TestJourneyE2E(t *testing.T) {
	creds, err := config.LoadCredentials(nil)
	if err != nil {
		t.Skip(err.Error())
	}

	g := NewWithT(t)
	f, _, err := config.ParseCmdLine(pflag.NewFlagSet("e2e", pflag.ContinueOnError), nil)
	g.Expect(err).ToNot(HaveOccurred())
	cfg, err := config.NewConfig(viper.New(), f)
	g.Expect(err).ToNot(HaveOccurred())

	cat, err := capabilities.NewYamlCatalog(capabilities.DefaultCatalog, models.CapabilityDescriptor{}, "")
	g.Expect(err).ToNot(HaveOccurred())

	l := zaptest.NewLogger(t)
	mgr, err := remote.NewRemoteSessionManager(cfg, nil, l)
	g.Expect(err).ToNot(HaveOccurred())
	r := NewJourneyRunner(mgr, NewJourney(cfg), event.NewEventBrokerImpl(10, l), l)

	for _, desc := range cat.Descriptors() {
		desc := desc
		t.Run(desc.Title(), func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()

			res := r.Run(ctx, desc, creds)
			g.Expect(res.Passed()).To(BeTrue(), res.Reason())
		})
	}
}
