package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is an RGBA color. In YAML it is written as "#rrggbbaa" and also
// accepts "#rrggbb" or a sequence of three or four 0-255 components.
type Color [4]uint8

// ParseColor parses a "#rrggbb" or "#rrggbbaa" hex color.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return Color{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// String returns the "#rrggbbaa" form.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c[0], c[1], c[2], c[3])
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		parsed, err := ParseColor(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*c = parsed
		return nil
	case yaml.SequenceNode:
		var parts []int
		if err := node.Decode(&parts); err != nil {
			return err
		}
		if len(parts) != 3 && len(parts) != 4 {
			return fmt.Errorf("line %d: color needs 3 or 4 components, got %d", node.Line, len(parts))
		}
		out := Color{0, 0, 0, 255}
		for i, p := range parts {
			if p < 0 || p > 255 {
				return fmt.Errorf("line %d: color component %d out of range", node.Line, p)
			}
			out[i] = uint8(p)
		}
		*c = out
		return nil
	}
	return fmt.Errorf("line %d: color must be a hex string or a sequence", node.Line)
}
