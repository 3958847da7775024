package app

import (
	"bytes"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	"github.com/selebrow/journey/mocks"
	"github.com/selebrow/journey/pkg/capabilities"
	"github.com/selebrow/journey/pkg/models"
)

const testCapsURL = "https://remote/caps.yaml"

var capsData = []byte("platforms:\n  - os: Windows\n    osVersion: \"11\"\n    browserName: Edge\n")

func Test_loadCapabilities_default(t *testing.T) {
	InitLog = zaptest.NewLogger(t).Sugar()
	g := NewWithT(t)

	c := new(mocks.Config)
	c.EXPECT().CapabilitiesURI().Return("").Once()
	got := loadCapabilities(c, nil)

	g.Expect(got).To(Equal(capabilities.DefaultCatalog))
	c.AssertExpectations(t)
}

func Test_loadCapabilities_local(t *testing.T) {
	InitLog = zaptest.NewLogger(t).Sugar()
	g := NewWithT(t)

	c := new(mocks.Config)
	capsFile := t.TempDir() + "/caps.yaml"
	err := os.WriteFile(capsFile, capsData, 0644)
	g.Expect(err).ToNot(HaveOccurred())

	c.EXPECT().CapabilitiesURI().Return(capsFile).Once()
	got := loadCapabilities(c, nil)

	g.Expect(got).To(Equal(capsData))
	c.AssertExpectations(t)
}

func Test_loadCapabilities_remote(t *testing.T) {
	InitLog = zaptest.NewLogger(t).Sugar()
	g := NewWithT(t)

	c := new(mocks.Config)
	hc := new(mocks.HTTPClient)

	c.EXPECT().CapabilitiesURI().Return(testCapsURL).Once()
	hc.EXPECT().Do(mock.Anything).RunAndReturn(func(req *http.Request) (*http.Response, error) {
		g.Expect(req.Method).To(Equal(http.MethodGet))
		g.Expect(req.URL.String()).To(Equal(testCapsURL))

		resp := &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(bytes.NewReader(capsData))}
		return resp, nil
	}).Once()
	got := loadCapabilities(c, hc)

	g.Expect(got).To(Equal(capsData))
	c.AssertExpectations(t)
	hc.AssertExpectations(t)
}

func Test_downloadCapabilities_status(t *testing.T) {
	InitLog = zaptest.NewLogger(t).Sugar()
	g := NewWithT(t)

	hc := new(mocks.HTTPClient)
	hc.EXPECT().Do(mock.Anything).
		Return(&http.Response{StatusCode: http.StatusNotFound, Body: io.NopCloser(bytes.NewReader(nil))}, nil).
		Once()

	_, err := downloadCapabilities(hc, testCapsURL)
	g.Expect(err).To(MatchError("request https://remote/caps.yaml failed with code 404"))
	hc.AssertExpectations(t)
}

func TestInitCatalogFunc(t *testing.T) {
	InitLog = zaptest.NewLogger(t).Sugar()
	g := NewWithT(t)

	c := new(mocks.Config)
	c.EXPECT().Project().Return("nightly").Once()
	c.EXPECT().Build().Return("").Once()
	c.EXPECT().SessionNameTemplate().Return("").Once()
	c.EXPECT().Lineage().Return("run-1").Once()

	cat := InitCatalogFunc(c, capsData)
	g.Expect(cat.Descriptors()).To(Equal([]models.CapabilityDescriptor{
		{
			OS:          "Windows",
			OSVersion:   "11",
			BrowserName: "Edge",
			Project:     "nightly",
			Name:        "Bstackdemo Test on Edge - Windows",
		},
	}))
	c.AssertExpectations(t)
}

func TestInitCatalogFunc_LineageInName(t *testing.T) {
	InitLog = zaptest.NewLogger(t).Sugar()
	g := NewWithT(t)

	c := mocks.NewConfig(t)
	c.EXPECT().Project().Return("").Once()
	c.EXPECT().Build().Return("").Once()
	c.EXPECT().SessionNameTemplate().Return("{{ .BrowserName }} {{ .Lineage }}").Once()
	c.EXPECT().Lineage().Return("run-1").Once()

	cat := InitCatalogFunc(c, capsData)
	g.Expect(cat.Descriptors()).To(HaveLen(1))
	g.Expect(cat.Descriptors()[0].Name).To(Equal("Edge run-1"))
}

func TestInitQuotaAuthorizerFunc(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		platforms int
		want      int
	}{
		{
			name:      "explicit limit",
			limit:     2,
			platforms: 3,
			want:      2,
		},
		{
			name:      "one per platform",
			platforms: 3,
			want:      3,
		},
		{
			name: "no platforms",
			want: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			c := new(mocks.Config)
			c.EXPECT().QuotaLimit().Return(tt.limit).Once()
			c.EXPECT().QueueSize().Return(5).Once()

			qa := InitQuotaAuthorizerFunc(c, tt.platforms)
			g.Expect(qa.Limit()).To(Equal(tt.want))
			g.Expect(qa.Allocated()).To(BeZero())
			c.AssertExpectations(t)
		})
	}
}

func Test_newGridTransport(t *testing.T) {
	tests := []struct {
		name      string
		proxyURL  string
		wantProxy string
		wantErr   bool
	}{
		{
			name: "environment",
		},
		{
			name:      "http proxy",
			proxyURL:  "http://proxy.local:3128",
			wantProxy: "http://proxy.local:3128",
		},
		{
			name:     "socks proxy",
			proxyURL: "socks5://127.0.0.1:1080",
		},
		{
			name:     "unsupported scheme",
			proxyURL: "ftp://proxy.local",
			wantErr:  true,
		},
		{
			name:     "broken url",
			proxyURL: "http://[::1",
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			t.Setenv("HTTPS_PROXY", "")
			t.Setenv("https_proxy", "")

			tr, err := newGridTransport(tt.proxyURL, &net.Dialer{})
			if tt.wantErr {
				g.Expect(models.IsKind(err, models.ConfigurationErr)).To(BeTrue())
				return
			}
			g.Expect(err).ToNot(HaveOccurred())
			g.Expect(tr.DialContext).ToNot(BeNil())

			if tt.proxyURL != "" && tt.wantProxy == "" {
				g.Expect(tr.Proxy).To(BeNil())
				return
			}

			req := &http.Request{URL: &url.URL{Scheme: "https", Host: "hub-cloud.browserstack.com"}}
			got, err := tr.Proxy(req)
			g.Expect(err).ToNot(HaveOccurred())
			if tt.wantProxy == "" {
				g.Expect(got).To(BeNil())
			} else {
				g.Expect(got.String()).To(Equal(tt.wantProxy))
			}
		})
	}
}

func TestInitHTTPClientFunc(t *testing.T) {
	g := NewWithT(t)
	c := new(mocks.Config)
	c.EXPECT().HTTPTimeout().Return(42 * time.Second).Once()

	tr := http.DefaultTransport
	cl := InitHTTPClientFunc(c, tr)
	g.Expect(cl.Timeout).To(Equal(42 * time.Second))
	g.Expect(cl.Transport).To(BeIdenticalTo(tr))
	c.AssertExpectations(t)
}

func TestInitRunnerFunc(t *testing.T) {
	g := NewWithT(t)
	c := new(mocks.Config)
	c.EXPECT().SettleDelay().Return(time.Second).Once()
	c.EXPECT().PollInterval().Return(20 * time.Millisecond).Once()
	c.EXPECT().SiteURL().Return("https://shop.local").Once()
	c.EXPECT().Username().Return("demouser").Once()
	c.EXPECT().Password().Return("pwd").Once()
	c.EXPECT().Vendor().Return("Apple").Once()
	c.EXPECT().Product().Return("iPhone 12").Once()

	r := InitRunnerFunc(c, mocks.NewSessionManager(t), mocks.NewEventBroker(t))
	g.Expect(r).ToNot(BeNil())
	c.AssertExpectations(t)
}
