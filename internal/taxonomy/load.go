package taxonomy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a custom taxonomy
type File struct {
	Version        string     `yaml:"version"`
	ExtendsDefault bool       `yaml:"extends_default"`
	Categories     []Category `yaml:"categories"`
	SoftSkills     []string   `yaml:"soft_skills"`
}

// LoadFile reads a YAML taxonomy definition.
// With extends_default set, the file's categories and soft skills are appended to the built-in ones.
func LoadFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a taxonomy from YAML content
func Parse(data []byte) (*Taxonomy, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy YAML: %w", err)
	}

	categories := f.Categories
	soft := f.SoftSkills
	if f.ExtendsDefault {
		categories = append(append([]Category{}, defaultCategories...), f.Categories...)
		soft = append(append([]string{}, defaultSoftSkills...), f.SoftSkills...)
	}
	if len(categories) == 0 && len(soft) == 0 {
		return nil, fmt.Errorf("taxonomy defines no skills")
	}

	version := f.Version
	if version == "" {
		version = "custom"
	}
	return New(version, categories, soft), nil
}
