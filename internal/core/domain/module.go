package domain

// Module describes one buildable native module discovered under the package
// root. It is immutable: discovery creates it, the builder only reads it.
type Module struct {
	// Name identifies the module in logs and outcomes. For a module living
	// directly in the package root it is the root directory's base name.
	Name string
	// SourceDir is the absolute path to the module's source tree.
	SourceDir string
	// BuildFile is the absolute path to the module's build description
	// (meson.build). Its presence alone is what made the module discoverable.
	BuildFile string
}
