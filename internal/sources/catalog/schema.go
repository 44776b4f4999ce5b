package catalog

// SourceEntry is one source definition in the catalog YAML.
type SourceEntry struct {
	Domain string `yaml:"domain"`
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
}

// File is the root structure of the catalog file.
type File struct {
	Sources []SourceEntry `yaml:"sources"`
}
