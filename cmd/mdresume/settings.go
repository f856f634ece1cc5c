package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	mdresume "github.com/bochaoli95/go-mdresume"
	"github.com/bochaoli95/go-mdresume/internal/config"
	"github.com/bochaoli95/go-mdresume/internal/fileutil"
	"github.com/bochaoli95/go-mdresume/internal/logger"
)

// ErrReadCSS is returned when a backbone file cannot be read.
var ErrReadCSS = errors.New("failed to read CSS file")

// settings is everything a command needs after flags, env and config merge.
type settings struct {
	cfg    *config.Config
	log    zerolog.Logger
	loader mdresume.AssetLoader
}

// loadSettings loads the config file (flag, then MDRESUME_CONFIG), overlays
// env vars and builds the logger and asset loader.
func loadSettings(common commonFlags, env *Environment) (*settings, error) {
	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(env.Stderr, env.Environ())

	configName := common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if configName != "" {
		var err error
		if cfg, err = config.LoadConfig(configName); err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}
	applyEnvConfig(envCfg, cfg)

	switch {
	case common.verbose:
		cfg.Log.Level = zerolog.DebugLevel.String()
	case common.quiet:
		cfg.Log.Level = zerolog.ErrorLevel.String()
	}
	log := logger.New(env.Stderr, cfg.Log)

	loader := env.AssetLoader
	if cfg.Assets.BasePath != "" {
		var err error
		if loader, err = mdresume.NewAssetLoader(cfg.Assets.BasePath); err != nil {
			return nil, err
		}
	}

	log.Debug().
		Str("config", configName).
		Str("backbone", cfg.Backbone).
		Str("instance", cfg.Instance).
		Msg("settings loaded")

	return &settings{cfg: cfg, log: log, loader: loader}, nil
}

// resolveInstance picks the flag, then the config, then the preview instance.
func resolveInstance(sf styleFlags, cfg *config.Config) string {
	if sf.instance != "" {
		return sf.instance
	}
	if cfg.Instance != "" {
		return cfg.Instance
	}
	return mdresume.InstancePreview
}

// buildStyleParameters layers config then flags over the defaults.
// Zero values mean "not set" except for paragraph space.
func buildStyleParameters(sf styleFlags, sc config.StyleConfig) *mdresume.StyleParameters {
	p := mdresume.DefaultStyleParameters()

	if sc.ThemeColor != "" {
		p.ThemeColor = sc.ThemeColor
	}
	if sc.LineHeight != 0 {
		p.LineHeight = sc.LineHeight
	}
	if sc.ParagraphSpace != nil {
		p.ParagraphSpace = *sc.ParagraphSpace
	}
	if sc.FontEN.Name != "" || sc.FontEN.FontFamily != "" {
		p.FontEN = mdresume.Font{Name: sc.FontEN.Name, FontFamily: sc.FontEN.FontFamily}
	}
	if sc.FontCJK.Name != "" || sc.FontCJK.FontFamily != "" {
		p.FontCJK = mdresume.Font{Name: sc.FontCJK.Name, FontFamily: sc.FontCJK.FontFamily}
	}
	if sc.FontSize != 0 {
		p.FontSize = sc.FontSize
	}
	if sc.Paper != "" {
		p.Paper = sc.Paper
	}

	if sf.themeColor != "" {
		p.ThemeColor = sf.themeColor
	}
	if sf.lineHeight != 0 {
		p.LineHeight = sf.lineHeight
	}
	if sf.paragraphSpace != paragraphSpaceSentinel {
		p.ParagraphSpace = sf.paragraphSpace
	}
	if sf.fontEN != "" {
		p.FontEN = mdresume.Font{Name: sf.fontEN}
	}
	if sf.fontCJK != "" {
		p.FontCJK = mdresume.Font{Name: sf.fontCJK}
	}
	if sf.fontSize != 0 {
		p.FontSize = sf.fontSize
	}
	if sf.paper != "" {
		p.Paper = sf.paper
	}

	return p
}

// resolveBackboneCSS returns the backbone stylesheet source.
// A value with a path separator is read from disk; anything else is an
// asset name. --no-backbone yields empty CSS.
func resolveBackboneCSS(sf styleFlags, cfg *config.Config, loader mdresume.AssetLoader) (string, error) {
	if sf.noBackbone {
		return "", nil
	}

	name := sf.backbone
	if name == "" {
		name = cfg.Backbone
	}
	if name == "" {
		name = mdresume.DefaultBackbone
	}

	if fileutil.IsFilePath(name) {
		data, err := os.ReadFile(name) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrReadCSS, err)
		}
		return string(data), nil
	}

	css, err := loader.LoadStyle(name)
	if err != nil {
		return "", fmt.Errorf("loading backbone %q: %w", name, err)
	}
	return css, nil
}

// installStyles generates both style blocks for instance onto a new sheet.
func installStyles(s *settings, sf styleFlags, instance string) (*mdresume.StyleSheet, error) {
	params := buildStyleParameters(sf, s.cfg.Style)

	backbone, err := resolveBackboneCSS(sf, s.cfg, s.loader)
	if err != nil {
		return nil, err
	}

	sheet := mdresume.NewStyleSheet()
	styler := mdresume.NewStyler(sheet).WithLogger(s.log)

	if err := styler.GenerateStyleCSS(params, instance); err != nil {
		return nil, err
	}
	if err := styler.GenerateBackboneCSS(backbone, instance); err != nil {
		return nil, err
	}
	return sheet, nil
}
