package favebutton

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidColor is returned for a theme color that is not a hex color.
	ErrInvalidColor = errors.New("invalid color")
	// ErrInvalidSparkCount is returned when SparkCount is below 1.
	ErrInvalidSparkCount = errors.New("spark count must be at least 1")
	// ErrInvalidSize is returned when Size is not positive.
	ErrInvalidSize = errors.New("size must be positive")
)

const (
	defaultSparkCount = 7
	defaultSize       = 44
)

// Options configures a Button. Colors are fixed once the button is built.
type Options struct {
	NormalColor     Color // glyph while unselected
	SelectedColor   Color // glyph while selected
	DotFirstColor   Color // outer spark dot
	DotSecondColor  Color // inner spark dot
	CircleFromColor Color // ring at the start of its expansion
	CircleToColor   Color // ring at the end of its expansion
	SparkCount      int
	// Size is the button's side length. Ring radius, spark distance and dot
	// sizes all scale from it.
	Size float64
}

// DefaultOptions returns the stock palette with 7 sparks.
func DefaultOptions() Options {
	return Options{
		NormalColor:     RGB(137, 156, 167),
		SelectedColor:   RGB(226, 38, 77),
		DotFirstColor:   RGB(152, 219, 236),
		DotSecondColor:  RGB(247, 188, 48),
		CircleFromColor: RGB(221, 70, 136),
		CircleToColor:   RGB(205, 143, 246),
		SparkCount:      defaultSparkCount,
		Size:            defaultSize,
	}
}

// Validate reports the first invalid setting.
func (o Options) Validate() error {
	if o.SparkCount < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSparkCount, o.SparkCount)
	}
	if o.Size <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidSize, o.Size)
	}
	return nil
}

// themeFile is the YAML form of Options. Every key is optional.
type themeFile struct {
	Normal     string   `yaml:"normal"`
	Selected   string   `yaml:"selected"`
	DotFirst   string   `yaml:"dot_first"`
	DotSecond  string   `yaml:"dot_second"`
	CircleFrom string   `yaml:"circle_from"`
	CircleTo   string   `yaml:"circle_to"`
	SparkCount *int     `yaml:"spark_count"`
	Size       *float64 `yaml:"size"`
}

// LoadTheme parses a YAML theme and applies it over DefaultOptions:
//
//	normal: "#899ca7"
//	selected: "#e2264d"
//	dot_first: "#98dbec"
//	dot_second: "#f7bc30"
//	circle_from: "#dd4688"
//	circle_to: "#cd8ff6"
//	spark_count: 7
//	size: 44
//
// Unknown keys are rejected.
func LoadTheme(data []byte) (Options, error) {
	opts := DefaultOptions()

	var f themeFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("parse theme: %w", err)
	}

	colors := []struct {
		key string
		val string
		dst *Color
	}{
		{"normal", f.Normal, &opts.NormalColor},
		{"selected", f.Selected, &opts.SelectedColor},
		{"dot_first", f.DotFirst, &opts.DotFirstColor},
		{"dot_second", f.DotSecond, &opts.DotSecondColor},
		{"circle_from", f.CircleFrom, &opts.CircleFromColor},
		{"circle_to", f.CircleTo, &opts.CircleToColor},
	}
	for _, c := range colors {
		if c.val == "" {
			continue
		}
		parsed, err := ParseHex(c.val)
		if err != nil {
			return Options{}, fmt.Errorf("parse theme: %s: %w", c.key, err)
		}
		*c.dst = parsed
	}
	if f.SparkCount != nil {
		opts.SparkCount = *f.SparkCount
	}
	if f.Size != nil {
		opts.Size = *f.Size
	}

	if err := opts.Validate(); err != nil {
		return Options{}, fmt.Errorf("parse theme: %w", err)
	}
	return opts, nil
}
