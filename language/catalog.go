// catalog.go loads the predefined-language catalog: the named languages
// (L1..L9) the presentation layer offers to operators. The default
// catalog is embedded; deployments can override it with their own YAML
// file. Catalog data is plain configuration passed to whoever needs it,
// never process-global mutable state.

package language

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// CatalogEntry is one named language in the catalog.
type CatalogEntry struct {
	ID          string  `yaml:"-"`
	Description string  `yaml:"description"`
	Pattern     Pattern `yaml:"pattern"`
	Class       Class   `yaml:"type"`
}

// Catalog is an immutable set of catalog entries grouped by class.
type Catalog struct {
	entries []CatalogEntry
}

// DefaultCatalog returns the embedded catalog. The embedded YAML is
// validated by tests, so a decode failure is a build defect and panics.
func DefaultCatalog() *Catalog {
	c, err := decodeCatalog(defaultCatalogYAML)
	if err != nil {
		panic("language: embedded catalog is invalid: " + err.Error())
	}
	return c
}

// LoadCatalog reads a catalog from a YAML file with the same layout as
// the embedded default.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	c, err := decodeCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	return c, nil
}

func decodeCatalog(data []byte) (*Catalog, error) {
	var raw map[Class]map[string]CatalogEntry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	var entries []CatalogEntry
	for class, group := range raw {
		for id, entry := range group {
			entry.ID = id
			if entry.Class == "" {
				entry.Class = class
			}
			if entry.Pattern == "" {
				return nil, fmt.Errorf("catalog entry %s has no pattern", id)
			}
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return &Catalog{entries: entries}, nil
}

// Entries returns all catalog entries ordered by ID. The slice is a copy.
func (c *Catalog) Entries() []CatalogEntry {
	out := make([]CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Group returns the entries of one classification, ordered by ID.
func (c *Catalog) Group(class Class) []CatalogEntry {
	var out []CatalogEntry
	for _, e := range c.entries {
		if e.Class == class {
			out = append(out, e)
		}
	}
	return out
}

// Lookup finds an entry by its ID (e.g. "L4"). The second return is false
// when no entry has that ID.
func (c *Catalog) Lookup(id string) (CatalogEntry, bool) {
	for _, e := range c.entries {
		if e.ID == id {
			return e, true
		}
	}
	return CatalogEntry{}, false
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }
