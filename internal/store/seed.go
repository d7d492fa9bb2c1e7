package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Seed is one startup roster entry. Seeds exist only to populate the store at
// construction; nothing is ever written back.
type Seed struct {
	Name  string  `yaml:"name"`
	Email string  `yaml:"email"`
	GPA   float64 `yaml:"gpa"`
}

// DefaultSeed returns the fixed startup roster used when no seed file is
// configured.
func DefaultSeed() []Seed {
	return []Seed{
		{Name: "Alice Johnson", Email: "alice@university.com", GPA: 3.8},
		{Name: "Bob Smith", Email: "bob@university.com", GPA: 3.5},
		{Name: "Carol Williams", Email: "carol@university.com", GPA: 3.9},
	}
}

type seedFile struct {
	Students []Seed `yaml:"students"`
}

// LoadSeedFile reads a YAML seed file of the form:
//
//	students:
//	  - name: Alice Johnson
//	    email: alice@university.com
//	    gpa: 3.8
func LoadSeedFile(path string) ([]Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	return f.Students, nil
}
