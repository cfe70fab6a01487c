package theme

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	cushyerrors "github.com/ecton/cushy/pkg/errors"
	"github.com/ecton/cushy/pkg/graphics"
)

// SchemeConfig represents the optional theme.yaml configuration an
// application ships to customize its color scheme. Only primary is
// required; every other color is generated when absent.
//
// Each color entry is a bare hue in degrees ("138.5"), a hex color
// ("#2a6d3c" or "#2a6d3cff"), or an SVG color name ("rebeccapurple").
// Hex and named colors contribute their saturation as well as their
// hue.
type SchemeConfig struct {
	// Version is the config format version. Only v1 is understood.
	Version string `yaml:"version,omitempty"`

	Primary        string   `yaml:"primary"`
	Secondary      string   `yaml:"secondary,omitempty"`
	Tertiary       string   `yaml:"tertiary,omitempty"`
	Error          string   `yaml:"error,omitempty"`
	Neutral        string   `yaml:"neutral,omitempty"`
	NeutralVariant string   `yaml:"neutralVariant,omitempty"`
	HueShift       *float64 `yaml:"hueShift,omitempty"`
}

// ParseSchemeConfig parses YAML configuration data.
func ParseSchemeConfig(data []byte) (*SchemeConfig, error) {
	var cfg SchemeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, configError(fmt.Errorf("failed to parse scheme config: %w", err))
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadSchemeConfig reads and parses a scheme config file. A missing
// file yields the default scheme's config.
func LoadSchemeConfig(path string) (*SchemeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &SchemeConfig{Primary: "138.5"}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseSchemeConfig(data)
}

func (c *SchemeConfig) validate() error {
	if v := strings.TrimSpace(c.Version); v != "" {
		if !strings.HasPrefix(v, "v") {
			v = "v" + v
		}
		if !semver.IsValid(v) {
			return configError(fmt.Errorf("invalid config version %q", c.Version))
		}
		if semver.Major(v) != "v1" {
			return configError(fmt.Errorf("unsupported config version %q, want v1", c.Version))
		}
	}
	if strings.TrimSpace(c.Primary) == "" {
		return configError(errors.New("scheme config requires a primary color"))
	}
	return nil
}

func configError(err error) error {
	return &cushyerrors.StyleError{Op: "theme.ParseSchemeConfig", Kind: cushyerrors.KindConfig, Err: err}
}

// Builder returns a scheme builder configured from this config.
func (c *SchemeConfig) Builder() (*ColorSchemeBuilder, error) {
	primary, err := ParseSeedColor(c.Primary)
	if err != nil {
		return nil, fmt.Errorf("primary: %w", err)
	}
	builder := NewColorSchemeBuilder(primary)

	set := func(field string, value string, apply func(ProtoColor) *ColorSchemeBuilder) error {
		if strings.TrimSpace(value) == "" {
			return nil
		}
		proto, err := ParseSeedColor(value)
		if err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
		apply(proto)
		return nil
	}
	if err := set("secondary", c.Secondary, builder.Secondary); err != nil {
		return nil, err
	}
	if err := set("tertiary", c.Tertiary, builder.Tertiary); err != nil {
		return nil, err
	}
	if err := set("error", c.Error, builder.Error); err != nil {
		return nil, err
	}
	if err := set("neutral", c.Neutral, builder.Neutral); err != nil {
		return nil, err
	}
	if err := set("neutralVariant", c.NeutralVariant, builder.NeutralVariant); err != nil {
		return nil, err
	}
	if c.HueShift != nil {
		builder.HueShift(*c.HueShift)
	}
	return builder, nil
}

// Scheme builds the configured color scheme.
func (c *SchemeConfig) Scheme() (ColorScheme, error) {
	builder, err := c.Builder()
	if err != nil {
		return ColorScheme{}, err
	}
	return builder.Build(), nil
}

// ParseSeedColor interprets a config color entry. Bare numbers are hue
// degrees without a saturation; hex values and SVG color names carry
// their own saturation.
func ParseSeedColor(s string) (ProtoColor, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ProtoColor{}, errors.New("empty color")
	}
	if degrees, err := strconv.ParseFloat(s, 64); err == nil {
		return Hue(degrees), nil
	}
	if strings.HasPrefix(s, "#") {
		color, err := parseHexColor(s)
		if err != nil {
			return ProtoColor{}, err
		}
		return Proto(color.Source()), nil
	}
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return Proto(graphics.RGB(named.R, named.G, named.B).Source()), nil
	}
	return ProtoColor{}, fmt.Errorf("unrecognized color %q", s)
}

func parseHexColor(s string) (graphics.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return 0, fmt.Errorf("invalid hex color %q", s)
	}
	value, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hex color %q", s)
	}
	if len(hex) == 6 {
		return graphics.RGB(uint8(value>>16), uint8(value>>8), uint8(value)), nil
	}
	return graphics.RGBA8(uint8(value>>24), uint8(value>>16), uint8(value>>8), uint8(value)), nil
}
