package theme

import (
	"errors"
	"math"
	"strings"
	"testing"

	cushyerrors "github.com/ecton/cushy/pkg/errors"
)

func TestParseSchemeConfig(t *testing.T) {
	cfg, err := ParseSchemeConfig([]byte(`
version: "1.0.0"
primary: "138.5"
secondary: "#2a6d8c"
neutral: rebeccapurple
hueShift: 45
`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	scheme, err := cfg.Scheme()
	if err != nil {
		t.Fatalf("scheme build failed: %v", err)
	}
	if got := scheme.Primary.Hue.Degrees(); got != 138.5 {
		t.Errorf("primary hue = %v", got)
	}
	if got := scheme.Primary.Saturation.Float(); got != 0.8 {
		t.Errorf("hue-only primary should default saturation to 0.8, got %v", got)
	}
	// The hex secondary carries its own saturation.
	if got := scheme.Secondary.Saturation.Float(); got == 0.4 {
		t.Error("hex secondary should not use the generated saturation")
	}
}

func TestParseSchemeConfigVersionGate(t *testing.T) {
	_, err := ParseSchemeConfig([]byte("version: \"2.0.0\"\nprimary: \"10\"\n"))
	if err == nil {
		t.Fatal("v2 config should be rejected")
	}
	var styleErr *cushyerrors.StyleError
	if !errors.As(err, &styleErr) || styleErr.Kind != cushyerrors.KindConfig {
		t.Errorf("expected a config-kind error, got %v", err)
	}
	if _, err := ParseSchemeConfig([]byte("version: \"not-a-version\"\nprimary: \"10\"\n")); err == nil {
		t.Error("malformed version should be rejected")
	}
	if _, err := ParseSchemeConfig([]byte("primary: \"10\"\n")); err != nil {
		t.Errorf("version is optional: %v", err)
	}
}

func TestParseSchemeConfigRequiresPrimary(t *testing.T) {
	_, err := ParseSchemeConfig([]byte("hueShift: 10\n"))
	if err == nil || !strings.Contains(err.Error(), "primary") {
		t.Fatalf("expected a missing-primary error, got %v", err)
	}
}

func TestParseSeedColor(t *testing.T) {
	proto, err := ParseSeedColor("45")
	if err != nil {
		t.Fatalf("bare hue: %v", err)
	}
	if proto.hasSaturation {
		t.Error("bare hue should not carry a saturation")
	}
	if got := proto.hue.Degrees(); got != 45 {
		t.Errorf("hue = %v", got)
	}

	proto, err = ParseSeedColor("#ff0188")
	if err != nil {
		t.Fatalf("hex: %v", err)
	}
	if !proto.hasSaturation {
		t.Error("hex colors carry a saturation")
	}
	// #ff0188 sits near hue 0 of the perceptual circle.
	if got := math.Abs(proto.hue.Degrees()); got > 5 {
		t.Errorf("hex hue = %v, want near 0", proto.hue.Degrees())
	}

	if _, err := ParseSeedColor("Tomato"); err != nil {
		t.Errorf("named colors are case-insensitive: %v", err)
	}
	if _, err := ParseSeedColor("#12345"); err == nil {
		t.Error("odd-length hex should be rejected")
	}
	if _, err := ParseSeedColor("notacolor"); err == nil {
		t.Error("unknown names should be rejected")
	}
	if _, err := ParseSeedColor(""); err == nil {
		t.Error("empty entries should be rejected")
	}
}
