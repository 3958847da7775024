package capabilities

import (
	_ "embed"
	"strings"
	"text/template"

	"dario.cat/mergo"
	"github.com/Masterminds/sprig/v3"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/selebrow/journey/pkg/models"
)

const DefaultNameTemplate = `Bstackdemo Test on {{ .BrowserName | default .Device }} - {{ .OS | default .OSVersion }}`

//go:embed default.yaml
var DefaultCatalog []byte

type Catalog interface {
	Descriptors() []models.CapabilityDescriptor
}

type catalogFile struct {
	Common    platformEntry   `yaml:"common"`
	Platforms []platformEntry `yaml:"platforms"`
}

// platformEntry keeps flags as pointers so an explicit false on a platform
// survives the merge with a common true
type platformEntry struct {
	OS          string `yaml:"os"`
	OSVersion   string `yaml:"osVersion"`
	Device      string `yaml:"device"`
	RealMobile  *bool  `yaml:"realMobile"`
	BrowserName string `yaml:"browserName"`
	Debug       *bool  `yaml:"debug"`
	NetworkLogs *bool  `yaml:"networkLogs"`
	Project     string `yaml:"project"`
	Build       string `yaml:"build"`
	Name        string `yaml:"name"`
}

func entryOf(d models.CapabilityDescriptor) platformEntry {
	return platformEntry{
		OS:          d.OS,
		OSVersion:   d.OSVersion,
		Device:      d.Device,
		RealMobile:  setFlag(d.RealMobile),
		BrowserName: d.BrowserName,
		Debug:       setFlag(d.Debug),
		NetworkLogs: setFlag(d.NetworkLogs),
		Project:     d.Project,
		Build:       d.Build,
		Name:        d.Name,
	}
}

func (e platformEntry) descriptor() models.CapabilityDescriptor {
	return models.CapabilityDescriptor{
		OS:          e.OS,
		OSVersion:   e.OSVersion,
		Device:      e.Device,
		RealMobile:  flag(e.RealMobile),
		BrowserName: e.BrowserName,
		Debug:       flag(e.Debug),
		NetworkLogs: flag(e.NetworkLogs),
		Project:     e.Project,
		Build:       e.Build,
		Name:        e.Name,
	}
}

// setFlag leaves unset overrides nil so they never mask catalog values
func setFlag(v bool) *bool {
	if !v {
		return nil
	}
	return &v
}

func flag(v *bool) bool {
	return v != nil && *v
}

// NameData is what the session name template is executed against
type NameData struct {
	models.CapabilityDescriptor
	Lineage string
}

type CatalogOption func(o *catalogOptions)

type catalogOptions struct {
	lineage string
}

// WithLineage exposes the run id to the session name template as .Lineage
func WithLineage(id string) CatalogOption {
	return func(o *catalogOptions) {
		o.lineage = id
	}
}

type YamlCatalog struct {
	descs []models.CapabilityDescriptor
}

// NewYamlCatalog parses the platform list. Set fields of overrides win over the
// common section, which in turn fills fields left unset by each platform. Platforms
// without an explicit name get one rendered from nameTpl.
func NewYamlCatalog(
	data []byte,
	overrides models.CapabilityDescriptor,
	nameTpl string,
	opts ...CatalogOption,
) (*YamlCatalog, error) {
	var o catalogOptions
	for _, opt := range opts {
		opt(&o)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "failed to parse capabilities catalog")
	}
	if len(f.Platforms) == 0 {
		return nil, errors.New("capabilities catalog defines no platforms")
	}

	common := entryOf(overrides)
	if err := mergo.Merge(&common, f.Common, mergo.WithoutDereference); err != nil {
		return nil, errors.Wrap(err, "failed to merge common capabilities")
	}

	tpl, err := NewNameTemplate(nameTpl)
	if err != nil {
		return nil, err
	}

	descs := make([]models.CapabilityDescriptor, 0, len(f.Platforms))
	for i, e := range f.Platforms {
		if err := mergo.Merge(&e, common, mergo.WithoutDereference); err != nil {
			return nil, errors.Wrapf(err, "failed to merge platform #%d", i+1)
		}
		p := e.descriptor()
		if err := p.Validate(); err != nil {
			return nil, errors.Wrapf(err, "invalid platform #%d", i+1)
		}
		if p.Name == "" {
			if p.Name, err = RenderName(tpl, NameData{CapabilityDescriptor: p, Lineage: o.lineage}); err != nil {
				return nil, errors.Wrapf(err, "failed to render session name for platform #%d", i+1)
			}
		}
		descs = append(descs, p)
	}

	return &YamlCatalog{descs: descs}, nil
}

func (c *YamlCatalog) Descriptors() []models.CapabilityDescriptor {
	res := make([]models.CapabilityDescriptor, len(c.descs))
	copy(res, c.descs)
	return res
}

func NewNameTemplate(text string) (*template.Template, error) {
	if text == "" {
		text = DefaultNameTemplate
	}
	tpl, err := template.New("name").Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session name template")
	}
	return tpl, nil
}

func RenderName(tpl *template.Template, d NameData) (string, error) {
	var sb strings.Builder
	if err := tpl.Execute(&sb, d); err != nil {
		return "", err
	}
	return strings.TrimSpace(sb.String()), nil
}
