package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/opd-ai/insertlogo/policy"
)

// fileOptions mirrors the property names. Pointer fields distinguish a key
// that is absent from one set to its zero value.
type fileOptions struct {
	Silent          *bool   `yaml:"silent"`
	Coordinate      []int   `yaml:"coordinate"`
	Rotation        *string `yaml:"rotation"`
	Speed           *string `yaml:"speed"`
	Scrolling       *string `yaml:"scrolling"`
	StrictMode      *bool   `yaml:"strict-mode"`
	Alpha           *int    `yaml:"alpha"`
	LogoFile        *string `yaml:"logo-file"`
	DefaultLogoFile *string `yaml:"default-logo-file"`
}

// LoadFile loads overlay options from a YAML file.
//
// Keys mirror the property names:
//
//	rotation: clockwise
//	speed: fast
//	coordinate: [40, 20]
//	alpha: 80
//	logo-file: /srv/brand/logo.png
//	strict-mode: true
//
// Keys present in the file become explicit; everything else keeps its default.
// Values are not validated here; that happens once, before the first frame.
func LoadFile(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read overlay options: %w", err)
	}

	opts := NewOptions()
	if err := opts.ApplyYAML(data); err != nil {
		return nil, fmt.Errorf("failed to parse overlay options %s: %w", path, err)
	}

	return opts, nil
}

// ApplyYAML applies the keys of a YAML document to the options.
func (o *Options) ApplyYAML(data []byte) error {
	var fo fileOptions
	if err := yaml.Unmarshal(data, &fo); err != nil {
		return err
	}

	if fo.Coordinate != nil {
		if len(fo.Coordinate) != 2 {
			return fmt.Errorf("%w: coordinate needs exactly two values, got %d",
				policy.ErrConfig, len(fo.Coordinate))
		}
		o.Coordinate = Explicit(Coordinate{X: fo.Coordinate[0], Y: fo.Coordinate[1]})
	}
	if fo.Silent != nil {
		o.Silent = *fo.Silent
	}
	if fo.Rotation != nil {
		o.Rotation = Explicit(*fo.Rotation)
	}
	if fo.Speed != nil {
		o.Speed = Explicit(*fo.Speed)
	}
	if fo.Scrolling != nil {
		o.Scrolling = Explicit(*fo.Scrolling)
	}
	if fo.StrictMode != nil {
		o.StrictMode = *fo.StrictMode
	}
	if fo.Alpha != nil {
		o.Alpha = Explicit(*fo.Alpha)
	}
	if fo.LogoFile != nil {
		o.LogoFile = Explicit(*fo.LogoFile)
	}
	if fo.DefaultLogoFile != nil {
		o.DefaultLogoFile = *fo.DefaultLogoFile
	}

	return nil
}
