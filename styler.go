package mdresume

import (
	"github.com/rs/zerolog"
)

// Styler installs instance-scoped CSS on a StyleSurface.
//
// Different instances never share a style id, so styling one instance
// cannot disturb another. Calls for the same instance must be serialized
// by the caller; the last call wins.
type Styler struct {
	surface StyleSurface
	logger  zerolog.Logger
}

// NewStyler creates a Styler that writes to surface.
func NewStyler(surface StyleSurface) *Styler {
	return &Styler{surface: surface, logger: zerolog.Nop()}
}

// WithLogger returns a copy of s that logs installs to logger.
func (s *Styler) WithLogger(logger zerolog.Logger) *Styler {
	cp := *s
	cp.logger = logger
	return &cp
}

// Surface returns the surface styles are installed on.
func (s *Styler) Surface() StyleSurface {
	return s.surface
}

// GenerateStyleCSS builds the CSS for params and installs it under
// DynamicStyleID(instance), replacing what was there.
func (s *Styler) GenerateStyleCSS(params *StyleParameters, instance string) error {
	if err := ValidateInstanceID(instance); err != nil {
		return err
	}
	if err := params.Validate(); err != nil {
		return err
	}

	css := BuildStyleCSS(params, instance)
	id := DynamicStyleID(instance)
	InjectStyle(s.surface, id, css)

	s.logger.Debug().
		Str("instance", instance).
		Str("id", id).
		Int("bytes", len(css)).
		Msg("installed dynamic style")
	return nil
}

// GenerateBackboneCSS scopes css to the instance and installs it under
// BackboneStyleID(instance). Blank css clears the instance's backbone.
func (s *Styler) GenerateBackboneCSS(css, instance string) error {
	if err := ValidateInstanceID(instance); err != nil {
		return err
	}

	scoped := ScopeBackboneCSS(css, instance)
	id := BackboneStyleID(instance)
	InjectStyle(s.surface, id, scoped)

	s.logger.Debug().
		Str("instance", instance).
		Str("id", id).
		Int("bytes", len(scoped)).
		Msg("installed backbone style")
	return nil
}
