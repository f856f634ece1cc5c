// Package config loads the mdresume YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/bochaoli95/go-mdresume/internal/fileutil"
	"github.com/bochaoli95/go-mdresume/internal/logger"
	"github.com/bochaoli95/go-mdresume/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxColorLength    = 64
	MaxFontLength     = 200
	MaxPaperLength    = 10   // "A4", "letter"
	MaxInstanceLength = 64   // element id suffix
	MaxPathLength     = 4096 // PATH_MAX on Linux
)

// AppDir is the directory name under the user config directory.
const AppDir = "go-mdresume"

// Defaults for fields left empty in the file.
const (
	DefaultInstance   = "preview"
	DefaultBackbone   = "default"
	DefaultPDFTimeout = "30s"
)

var instancePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Config holds everything the CLI reads from a config file.
type Config struct {
	Style    StyleConfig   `yaml:"style"`
	Backbone string        `yaml:"backbone"` // built-in name or path to a .css file
	Instance string        `yaml:"instance"`
	Assets   AssetsConfig  `yaml:"assets"`
	Output   OutputConfig  `yaml:"output"`
	Log      logger.Config `yaml:"log"`
	PDF      PDFConfig     `yaml:"pdf"`
}

// StyleConfig overrides the default style parameters. Zero values keep
// the default, except ParagraphSpace where 0 is meaningful.
type StyleConfig struct {
	ThemeColor     string     `yaml:"themeColor,omitempty"`
	LineHeight     float64    `yaml:"lineHeight,omitempty"`
	ParagraphSpace *float64   `yaml:"paragraphSpace,omitempty"`
	FontEN         FontConfig `yaml:"fontEN,omitempty"`
	FontCJK        FontConfig `yaml:"fontCJK,omitempty"`
	FontSize       float64    `yaml:"fontSize,omitempty"`
	Paper          string     `yaml:"paper,omitempty"`
}

// FontConfig names a font by display name and optional CSS family.
type FontConfig struct {
	Name       string `yaml:"name,omitempty"`
	FontFamily string `yaml:"fontFamily,omitempty"`
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded assets only
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = next to the source
}

// PDFConfig defines PDF printing options.
type PDFConfig struct {
	Enabled bool   `yaml:"enabled"`
	Timeout string `yaml:"timeout"` // Go duration, e.g. "45s"
}

// TimeoutDuration parses Timeout, falling back to DefaultPDFTimeout.
func (p PDFConfig) TimeoutDuration() time.Duration {
	s := p.Timeout
	if s == "" {
		s = DefaultPDFTimeout
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultPDFTimeout)
	}
	return d
}

// Validate checks field lengths and enumerated values.
// Style values are checked again when the CSS is generated.
func (c *Config) Validate() error {
	checks := []struct {
		field string
		value string
		max   int
	}{
		{"style.themeColor", c.Style.ThemeColor, MaxColorLength},
		{"style.fontEN.name", c.Style.FontEN.Name, MaxFontLength},
		{"style.fontEN.fontFamily", c.Style.FontEN.FontFamily, MaxFontLength},
		{"style.fontCJK.name", c.Style.FontCJK.Name, MaxFontLength},
		{"style.fontCJK.fontFamily", c.Style.FontCJK.FontFamily, MaxFontLength},
		{"style.paper", c.Style.Paper, MaxPaperLength},
		{"backbone", c.Backbone, MaxPathLength},
		{"instance", c.Instance, MaxInstanceLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
	}
	for _, chk := range checks {
		if err := validateFieldLength(chk.field, chk.value, chk.max); err != nil {
			return err
		}
	}

	if c.Style.LineHeight < 0 {
		return fmt.Errorf("%w: style.lineHeight must not be negative, got %v", ErrInvalidValue, c.Style.LineHeight)
	}
	if c.Style.FontSize < 0 {
		return fmt.Errorf("%w: style.fontSize must not be negative, got %v", ErrInvalidValue, c.Style.FontSize)
	}
	if c.Style.ParagraphSpace != nil && *c.Style.ParagraphSpace < 0 {
		return fmt.Errorf("%w: style.paragraphSpace must not be negative, got %v", ErrInvalidValue, *c.Style.ParagraphSpace)
	}

	if c.Instance != "" && !instancePattern.MatchString(c.Instance) {
		return fmt.Errorf("%w: instance %q (letters, digits, '-' and '_' only)", ErrInvalidValue, c.Instance)
	}

	if c.Log.Level != "" && !logger.ValidLevel(c.Log.Level) {
		return fmt.Errorf("%w: log.level %q", ErrInvalidValue, c.Log.Level)
	}
	switch c.Log.Format {
	case "", logger.FormatPretty, logger.FormatJSON:
	default:
		return fmt.Errorf("%w: log.format %q (must be pretty or json)", ErrInvalidValue, c.Log.Format)
	}

	if c.PDF.Timeout != "" {
		d, err := time.ParseDuration(c.PDF.Timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: pdf.timeout %q (must be a positive duration)", ErrInvalidValue, c.PDF.Timeout)
		}
	}

	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return &Config{
		Backbone: DefaultBackbone,
		Instance: DefaultInstance,
		Log:      logger.DefaultConfig(),
		PDF:      PDFConfig{Timeout: DefaultPDFTimeout},
	}
}

// LoadConfig loads a config by file path or by name. A value containing a
// path separator is a path; otherwise "{name}.yaml" and "{name}.yml" are
// searched in the current directory, then in the user config directory.
// Fields missing from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML, for writing a starter config file.
func Marshal(cfg *Config) ([]byte, error) {
	return yamlutil.Marshal(cfg)
}

// UserConfigPath returns where a named config lives in the user config dir.
func UserConfigPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppDir, name+".yaml"), nil
}

// resolveConfigPath tries .yaml then .yml, in the current directory first.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, AppDir, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
