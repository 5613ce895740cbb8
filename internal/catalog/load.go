package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	setupsFile  = "setups.yaml"
	lessonsFile = "lessons.yaml"
)

//go:embed data/*.yaml
var embedded embed.FS

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("open embedded catalog: %w", err)
	}
	return Load(sub)
}

// LoadDir reads setups.yaml and lessons.yaml from dir.
func LoadDir(dir string) (*Catalog, error) {
	return Load(os.DirFS(dir))
}

// Load reads and schema-checks both catalog files from fsys.
func Load(fsys fs.FS) (*Catalog, error) {
	var setups struct {
		Setups []Setup `yaml:"setups"`
	}
	if err := decode(fsys, setupsFile, &setups); err != nil {
		return nil, err
	}

	var lessons struct {
		Lessons []Lesson `yaml:"lessons"`
	}
	if err := decode(fsys, lessonsFile, &lessons); err != nil {
		return nil, err
	}

	return &Catalog{Setups: setups.Setups, Lessons: lessons.Lessons}, nil
}

func decode(fsys fs.FS, name string, out any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := validateDocument(name, raw); err != nil {
		return &ErrInvalidCatalog{Path: name, Err: err}
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return &ErrInvalidCatalog{Path: name, Err: err}
	}
	return nil
}
