package console

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidStyleConfig is returned when a style configuration file cannot
// be parsed into a PromptStyle.
var ErrInvalidStyleConfig = errors.New("invalid style config")

// styleConfig is the on-disk form of a PromptStyle.
type styleConfig struct {
	Indicator  string   `yaml:"indicator"`
	Color      string   `yaml:"color"`      // hex "#rrggbb", empty keeps terminal default
	Background string   `yaml:"background"` // hex "#rrggbb", empty keeps terminal default
	Styles     []string `yaml:"styles"`     // bold, dim, italic, underline, blink, reverse
}

// LoadPromptStyle reads a YAML prompt style from path.
//
// Example file:
//
//	indicator: ">> "
//	color: "#00ff00"
//	styles: [bold]
func LoadPromptStyle(path string) (PromptStyle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PromptStyle{}, fmt.Errorf("read style config: %w", err)
	}
	return parsePromptStyle(data)
}

func parsePromptStyle(data []byte) (PromptStyle, error) {
	var cfg styleConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return PromptStyle{}, fmt.Errorf("%w: %v", ErrInvalidStyleConfig, err)
	}

	style := DefaultPromptStyle()
	if cfg.Indicator != "" {
		style.Indicator = cfg.Indicator
	}
	if cfg.Color != "" {
		c, err := parseHexColor(cfg.Color)
		if err != nil {
			return PromptStyle{}, err
		}
		style.Color = &c
	}
	if cfg.Background != "" {
		c, err := parseHexColor(cfg.Background)
		if err != nil {
			return PromptStyle{}, err
		}
		style.Background = &c
	}
	if cfg.Styles != nil {
		flags, err := parseStyleFlags(cfg.Styles)
		if err != nil {
			return PromptStyle{}, err
		}
		style.Styles = flags
	}
	return style, nil
}

// parseHexColor parses "#rrggbb" into a Color.
func parseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("%w: color %q", ErrInvalidStyleConfig, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: color %q", ErrInvalidStyleConfig, s)
	}
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// parseStyleFlags converts style names to a StyleFlag bitmask.
func parseStyleFlags(names []string) (StyleFlag, error) {
	var flags StyleFlag
	for _, name := range names {
		switch strings.ToLower(name) {
		case "bold":
			flags |= StyleBold
		case "dim":
			flags |= StyleDim
		case "italic":
			flags |= StyleItalic
		case "underline":
			flags |= StyleUnderline
		case "blink":
			flags |= StyleBlink
		case "reverse":
			flags |= StyleReverse
		default:
			return 0, fmt.Errorf("%w: style %q", ErrInvalidStyleConfig, name)
		}
	}
	return flags, nil
}
