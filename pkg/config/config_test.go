package config

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name: "defaults",
		},
		{
			name: "custom hub",
			args: []string{"--hub-url", "http://127.0.0.1:4444/wd/hub", "--parallel", "3"},
		},
		{
			name:    "relative hub url",
			args:    []string{"--hub-url", "/wd/hub"},
			wantErr: true,
		},
		{
			name:    "broken site url",
			args:    []string{"--site-url", "http://[::1"},
			wantErr: true,
		},
		{
			name:    "negative parallel",
			args:    []string{"--parallel=-1"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)

			f := pflag.NewFlagSet("test", pflag.ContinueOnError)
			f.String(hubURL, DefaultHubURL, "")
			f.String(siteURL, DefaultSiteURL, "")
			f.Int(quotaLimit, 0, "")

			err := f.Parse(tt.args)
			g.Expect(err).ToNot(HaveOccurred())

			got, err := NewConfig(viper.New(), f)
			if tt.wantErr {
				g.Expect(err).To(HaveOccurred())
			} else {
				g.Expect(err).ToNot(HaveOccurred())
				g.Expect(got).ToNot(BeNil())
			}
		})
	}
}

func TestConfigViper(t *testing.T) {
	g := NewWithT(t)
	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.String("hub-url", DefaultHubURL, "")
	f.Bool("w3c", true, "")
	f.Int("parallel", 0, "")
	err := f.Parse([]string{"--hub-url=http://grid:4444/wd/hub"})
	g.Expect(err).ToNot(HaveOccurred())

	genLineage = func() string {
		return "155"
	}

	v := viper.New()
	v.Set("grid-proxy", "socks5://127.0.0.1:1080")
	v.Set("http-timeout", "90s")
	v.Set("capabilities", "caps.yaml")
	v.Set("session-name-template", "{{ .Name }}")
	v.Set("project", "proj")
	v.Set("build", "b1")
	v.Set("site-url", "http://shop.local")
	v.Set("username", "u1")
	v.Set("password", "p1")
	v.Set("vendor", "Apple")
	v.Set("product", "iPhone 12")
	v.Set("poll-interval", 20*time.Millisecond)
	v.Set("settle-delay", "1s")
	v.Set("queue-size", 13)
	v.Set("queue-timeout", "1h")
	v.Set("no-color", true)

	t.Setenv("JOURNEY_PARALLEL", "4")
	t.Setenv("JOURNEY_W3C", "false")

	cfg, err := NewConfig(v, f)
	g.Expect(err).ToNot(HaveOccurred())

	g.Expect(cfg.HubURL()).To(Equal("http://grid:4444/wd/hub"))
	g.Expect(cfg.GridProxy()).To(Equal("socks5://127.0.0.1:1080"))
	g.Expect(cfg.HTTPTimeout()).To(Equal(90 * time.Second))
	g.Expect(cfg.W3C()).To(BeFalse())
	g.Expect(cfg.CapabilitiesURI()).To(Equal("caps.yaml"))
	g.Expect(cfg.SessionNameTemplate()).To(Equal("{{ .Name }}"))
	g.Expect(cfg.Project()).To(Equal("proj"))
	g.Expect(cfg.Build()).To(Equal("b1"))
	g.Expect(cfg.SiteURL()).To(Equal("http://shop.local"))
	g.Expect(cfg.Username()).To(Equal("u1"))
	g.Expect(cfg.Password()).To(Equal("p1"))
	g.Expect(cfg.Vendor()).To(Equal("Apple"))
	g.Expect(cfg.Product()).To(Equal("iPhone 12"))
	g.Expect(cfg.PollInterval()).To(Equal(20 * time.Millisecond))
	g.Expect(cfg.SettleDelay()).To(Equal(time.Second))
	g.Expect(cfg.QuotaLimit()).To(Equal(4))
	g.Expect(cfg.QueueSize()).To(Equal(13))
	g.Expect(cfg.QueueTimeout()).To(Equal(time.Hour))
	g.Expect(cfg.NoColor()).To(BeTrue())
	g.Expect(cfg.Lineage()).To(Equal("155"))
}

func TestZapLogLevel(t *testing.T) {
	g := NewWithT(t)
	g.Expect(ZapLogLevel("DEBUG", zapcore.InfoLevel)).To(Equal(zapcore.DebugLevel))
	g.Expect(ZapLogLevel("warn", zapcore.InfoLevel)).To(Equal(zapcore.WarnLevel))
	g.Expect(ZapLogLevel("bogus", zapcore.InfoLevel)).To(Equal(zapcore.InfoLevel))
}
