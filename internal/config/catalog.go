package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/honeycarbs/career-navigator/internal/domain"
	"github.com/honeycarbs/career-navigator/pkg/hh"
)

// Catalog is static reference data: name aliases, the predefined employer
// list and per-employer host overrides.
type Catalog struct {
	Aliases       hh.AliasTable          `yaml:"aliases"`
	Employers     []domain.NamedEmployer `yaml:"employers"`
	HostOverrides map[string]string      `yaml:"host_overrides"`
}

// DefaultCatalog is used when no catalog file is configured
func DefaultCatalog() Catalog {
	return Catalog{
		Aliases: hh.DefaultAliases(),
		Employers: []domain.NamedEmployer{
			{Name: "Yandex", ID: "1740"},
			{Name: "Sber", ID: "3529"},
			{Name: "Tinkoff", ID: "78638"},
			{Name: "VK", ID: "41862"},
			{Name: "Alfa-Bank", ID: "80"},
			{Name: "MTS", ID: "15478"},
			{Name: "MegaFon", ID: "3776"},
			{Name: "Ozon", ID: "907345"},
			{Name: "Kaspersky", ID: "2180"},
			{Name: "SberTech", ID: "87021"},
		},
		HostOverrides: hh.DefaultHostOverrides(),
	}
}

// LoadCatalog overlays the YAML file at path onto DefaultCatalog.
// File aliases take precedence over built-in ones; a non-empty employer list
// replaces the built-in one. A missing file is not an error.
func LoadCatalog(path string) (Catalog, error) {
	cat := DefaultCatalog()
	if path == "" {
		return cat, nil
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cat, nil
	}
	if err != nil {
		return cat, fmt.Errorf("config: read catalog: %w", err)
	}

	var file Catalog
	if err := yaml.Unmarshal(b, &file); err != nil {
		return cat, fmt.Errorf("config: parse catalog %s: %w", path, err)
	}

	if len(file.Aliases) > 0 {
		cat.Aliases = cat.Aliases.Merge(file.Aliases)
	}
	if len(file.Employers) > 0 {
		cat.Employers = file.Employers
	}
	for id, host := range file.HostOverrides {
		cat.HostOverrides[id] = host
	}

	return cat, nil
}

// EmployerIDs lists the ids of the predefined employers
func (c Catalog) EmployerIDs() []string {
	ids := make([]string, 0, len(c.Employers))
	for _, e := range c.Employers {
		if e.ID != "" {
			ids = append(ids, e.ID)
		}
	}
	return ids
}
