// Package assets provides the backbone stylesheets and the page template used
// to export a rendered résumé.
//
// # Loaders
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - go:embed styles/*.css and templates/*.html
//	    ├── FilesystemLoader  - a user directory with the same layout
//	    └── AssetResolver     - filesystem first, embedded fallback
//
// Backbone stylesheets are written against the preview root
// (#vue-smart-pages-preview) and scoped to other instances at install time.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css
//	└── templates/
//	    └── {name}.html
//
// # Security
//
// Asset names are validated to reject separators and dots.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
