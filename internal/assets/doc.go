// Package assets provides page templates and stylesheets for generated sites.
//
// # Loaders
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in "default" template and style
//	    ├── FilesystemLoader  - a theme directory on disk
//	    └── AssetResolver     - theme directory first, embedded fallback
//
// A theme directory overrides individual assets. Missing files fall back to
// the embedded ones, so a theme may ship only a stylesheet.
//
// # Directory Structure
//
//	{dir}/
//	├── styles/
//	│   └── {name}.css
//	└── templates/
//	    └── {name}.html     # must contain {{ Content }}
//
// Asset names are plain identifiers. Reads go through os.OpenInRoot, so a
// symlink inside the theme cannot reach files outside it.
package assets
