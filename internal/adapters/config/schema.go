package config

// Masonfile represents the structure of the mason.yaml configuration file.
type Masonfile struct {
	Version     string            `yaml:"version"`
	Package     string            `yaml:"package"`
	Modules     []string          `yaml:"modules"`
	Destination string            `yaml:"destination"`
	Staging     string            `yaml:"staging"`
	Tools       ToolsDTO          `yaml:"tools"`
	Compilers   map[string]string `yaml:"compilers"`
	Hooks       HooksDTO          `yaml:"hooks"`
}

// ToolsDTO names the external build tools.
type ToolsDTO struct {
	Configurator string `yaml:"configurator"`
	Executor     string `yaml:"executor"`
}

// HooksDTO holds the optional wrapped commands per lifecycle entry point.
type HooksDTO struct {
	Build   []string `yaml:"build"`
	Develop []string `yaml:"develop"`
	Install []string `yaml:"install"`
}
