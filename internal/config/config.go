// ABOUTME: Settings loading with global + project config merge
// ABOUTME: JSON-based configuration using encoding/json; CLI flags override the merged result

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
)

// Modes the viewer can run in.
const (
	ModeInteractive = "interactive"
	ModeRaw         = "raw"
	ModePrint       = "print"
)

// Defaults applied by Load when no file sets a value.
const (
	DefaultPoolRetention = 16
	DefaultWrapWidth     = 80
	DefaultScrollStep    = 1
)

// Settings holds the merged configuration.
type Settings struct {
	Mode          string `json:"mode,omitempty"`
	PoolRetention int    `json:"pool_retention,omitempty"`
	WrapWidth     int    `json:"wrap_width,omitempty"`
	ScrollStep    int    `json:"scroll_step,omitempty"`
	Theme         string `json:"theme,omitempty"`
	MarkdownStyle string `json:"markdown_style,omitempty"`
	LogFile       string `json:"log_file,omitempty"`
	Generate      int    `json:"generate,omitempty"`
	Mouse         bool   `json:"mouse,omitempty"`
}

// Defaults returns the settings used when no config file exists.
func Defaults() *Settings {
	return &Settings{
		Mode:          ModeInteractive,
		PoolRetention: DefaultPoolRetention,
		WrapWidth:     DefaultWrapWidth,
		ScrollStep:    DefaultScrollStep,
		MarkdownStyle: "auto",
	}
}

// Load reads and merges global and project-local settings over Defaults.
// Project settings override global settings. ${VAR} references are
// expanded and the result is validated.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(merge(Defaults(), global), project)
	ResolveEnvVars(merged)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// loadFile reads a Settings from a JSON file. Returns zero Settings if file
// does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays non-zero override values onto base.
func merge(base, override *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Mode != "" {
		result.Mode = override.Mode
	}
	if override.PoolRetention != 0 {
		result.PoolRetention = override.PoolRetention
	}
	if override.WrapWidth != 0 {
		result.WrapWidth = override.WrapWidth
	}
	if override.ScrollStep != 0 {
		result.ScrollStep = override.ScrollStep
	}
	if override.Theme != "" {
		result.Theme = override.Theme
	}
	if override.MarkdownStyle != "" {
		result.MarkdownStyle = override.MarkdownStyle
	}
	if override.LogFile != "" {
		result.LogFile = override.LogFile
	}
	if override.Generate != 0 {
		result.Generate = override.Generate
	}
	if override.Mouse {
		result.Mouse = true
	}

	return &result
}

// Merge overlays override onto s and returns the result; s is unchanged.
func (s *Settings) Merge(override *Settings) *Settings {
	return merge(s, override)
}

// ErrInvalidSettings is wrapped by every Validate failure.
var ErrInvalidSettings = errors.New("invalid settings")

// Validate rejects unknown modes and out-of-range numbers.
func (s *Settings) Validate() error {
	var errs []error
	if s.Mode != "" && !slices.Contains([]string{ModeInteractive, ModeRaw, ModePrint}, s.Mode) {
		errs = append(errs, fmt.Errorf("mode %q: want %s, %s or %s", s.Mode, ModeInteractive, ModeRaw, ModePrint))
	}
	if s.PoolRetention < 0 {
		errs = append(errs, fmt.Errorf("pool_retention %d: must not be negative", s.PoolRetention))
	}
	if s.WrapWidth < 0 {
		errs = append(errs, fmt.Errorf("wrap_width %d: must not be negative", s.WrapWidth))
	}
	if s.ScrollStep < 0 {
		errs = append(errs, fmt.Errorf("scroll_step %d: must not be negative", s.ScrollStep))
	}
	if s.Generate < 0 {
		errs = append(errs, fmt.Errorf("generate %d: must not be negative", s.Generate))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidSettings, errors.Join(errs...))
}
