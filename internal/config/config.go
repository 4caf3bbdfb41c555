// Package config loads ditherpunk settings from YAML files and the
// environment and turns them into engine configurations.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/kevin-cantwell/ditherpunk"
)

// ErrInvalidSetting wraps every validation and parse failure.
var ErrInvalidSetting = errors.New("config: invalid setting")

// Modes.
const (
	ModeDither = "dither"
	ModeASCII  = "ascii"
)

// EnvPrefix prefixes every environment variable read by FromEnv.
const EnvPrefix = "DITHERPUNK_"

// Settings is the user-facing configuration. Empty Ink, Bg and Preset mean
// "not set"; colors then come from the preset, or black on white.
type Settings struct {
	Mode       string   `yaml:"mode"`
	Algorithm  string   `yaml:"algorithm"`
	PointSize  int      `yaml:"point_size"`
	Preset     string   `yaml:"preset"`
	Ink        string   `yaml:"ink"`
	Bg         string   `yaml:"bg"`
	Gradient   []string `yaml:"gradient"`
	Brightness float64  `yaml:"brightness"`
	Contrast   float64  `yaml:"contrast"`
	Detail     float64  `yaml:"detail"`
	FontSize   float64  `yaml:"font_size"`
	CharSet    string   `yaml:"charset"`
	Inverted   bool     `yaml:"inverted"`
}

// Default returns the settings used when nothing else is configured.
func Default() Settings {
	return Settings{
		Mode:       ModeDither,
		Algorithm:  string(ditherpunk.FloydSteinberg),
		PointSize:  ditherpunk.DefaultPointSize,
		Brightness: 1,
		Contrast:   0,
		Detail:     0.5,
		FontSize:   10,
		CharSet:    "default",
	}
}

// Load reads a YAML file over the defaults. Unknown keys are an error.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := s.Decode(data); err != nil {
		return s, fmt.Errorf("config: %s: %w", path, err)
	}
	return s, nil
}

// Decode decodes data over s, keeping fields data does not mention.
func (s *Settings) Decode(data []byte) error {
	if err := yaml.UnmarshalStrict(data, s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSetting, err)
	}
	return nil
}

// FromEnv loads the given dotenv files, if they exist, into the process
// environment and then applies DITHERPUNK_* variables over s.
func (s *Settings) FromEnv(files ...string) error {
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return fmt.Errorf("config: load env: %w", err)
		}
	}
	return s.ApplyEnv(os.LookupEnv)
}

// ApplyEnv applies DITHERPUNK_* variables found by lookup over s.
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	float := func(key string, dst *float64) error {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			return nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrInvalidSetting, EnvPrefix, key, v)
		}
		*dst = f
		return nil
	}

	str("MODE", &s.Mode)
	str("ALGORITHM", &s.Algorithm)
	str("PRESET", &s.Preset)
	str("INK", &s.Ink)
	str("BG", &s.Bg)
	str("CHARSET", &s.CharSet)

	if v, ok := lookup(EnvPrefix + "GRADIENT"); ok {
		s.Gradient = nil
		for _, stop := range strings.Split(v, ",") {
			if stop = strings.TrimSpace(stop); stop != "" {
				s.Gradient = append(s.Gradient, stop)
			}
		}
	}
	if v, ok := lookup(EnvPrefix + "POINT_SIZE"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %sPOINT_SIZE=%q", ErrInvalidSetting, EnvPrefix, v)
		}
		s.PointSize = n
	}
	if v, ok := lookup(EnvPrefix + "INVERTED"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %sINVERTED=%q", ErrInvalidSetting, EnvPrefix, v)
		}
		s.Inverted = b
	}
	for key, dst := range map[string]*float64{
		"BRIGHTNESS": &s.Brightness,
		"CONTRAST":   &s.Contrast,
		"DETAIL":     &s.Detail,
		"FONT_SIZE":  &s.FontSize,
	} {
		if err := float(key, dst); err != nil {
			return err
		}
	}
	return nil
}
