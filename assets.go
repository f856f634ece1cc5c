package mdresume

import (
	"errors"

	"github.com/bochaoli95/go-mdresume/internal/assets"
)

// Built-in asset names.
const (
	// DefaultBackbone is the built-in backbone stylesheet.
	DefaultBackbone = assets.DefaultStyleName

	// DefaultPageTemplate is the built-in standalone page template.
	DefaultPageTemplate = assets.DefaultTemplateName
)

// AssetLoader loads backbone stylesheets and page templates by name.
// NewAssetLoader returns a filesystem loader with embedded fallback; other
// backends can implement this interface directly.
type AssetLoader interface {
	// LoadStyle loads a backbone stylesheet (name without .css).
	// Returns ErrStyleNotFound if it does not exist.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads a page template (name without .html).
	// Returns ErrTemplateNotFound if it does not exist.
	LoadTemplate(name string) (string, error)
}

// NewAssetLoader creates an AssetLoader for basePath. An empty basePath uses
// only the embedded assets; otherwise {basePath}/styles/{name}.css and
// {basePath}/templates/{name}.html take precedence.
//
// Returns ErrInvalidAssetPath if basePath is set but not a readable directory.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &assetLoaderAdapter{resolver: resolver}, nil
}

// BuiltinBackbones lists the embedded backbone stylesheets.
func BuiltinBackbones() []string {
	return assets.NewEmbeddedLoader().StyleNames()
}

// assetLoaderAdapter maps internal asset errors to public sentinels.
type assetLoaderAdapter struct {
	resolver *assets.AssetResolver
}

func (a *assetLoaderAdapter) LoadStyle(name string) (string, error) {
	content, err := a.resolver.LoadStyle(name)
	if err != nil {
		return "", convertAssetError(err)
	}
	return content, nil
}

func (a *assetLoaderAdapter) LoadTemplate(name string) (string, error) {
	content, err := a.resolver.LoadTemplate(name)
	if err != nil {
		return "", convertAssetError(err)
	}
	return content, nil
}

func convertAssetError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, assets.ErrStyleNotFound), errors.Is(err, assets.ErrInvalidAssetName):
		return &assetError{sentinel: ErrStyleNotFound, original: err}
	case errors.Is(err, assets.ErrTemplateNotFound):
		return &assetError{sentinel: ErrTemplateNotFound, original: err}
	case errors.Is(err, assets.ErrInvalidBasePath), errors.Is(err, assets.ErrPathTraversal):
		return &assetError{sentinel: ErrInvalidAssetPath, original: err}
	default:
		return err
	}
}

// assetError keeps the internal message but matches the public sentinel
// under errors.Is.
type assetError struct {
	sentinel error
	original error
}

func (e *assetError) Error() string {
	return e.original.Error()
}

func (e *assetError) Unwrap() error {
	return e.sentinel
}
