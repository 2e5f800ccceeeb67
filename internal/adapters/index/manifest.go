package index

// Manifest represents the structure of a project.yaml file.
type Manifest struct {
	Identifier string   `yaml:"identifier"`
	Type       string   `yaml:"type"`
	Requires   []string `yaml:"requires"`
}
