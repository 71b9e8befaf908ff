package catalog

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Resource is one catalog entry.
type Resource struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Color    string `yaml:"color"`
	Icon     string `yaml:"icon"`
	Visible  bool   `yaml:"visible"`
}

// Catalog is a read-only lookup table of valid resources and categories.
type Catalog struct {
	byName     map[string]Resource
	byCategory map[string][]Resource
}

// New builds a catalog from a list of resources. Duplicate names are
// rejected; the database relies on name uniqueness.
func New(resources []Resource) (*Catalog, error) {
	c := &Catalog{
		byName:     make(map[string]Resource, len(resources)),
		byCategory: make(map[string][]Resource),
	}

	for _, r := range resources {
		if r.Name == "" || r.Category == "" {
			return nil, fmt.Errorf("catalog entry needs both name and category: %+v", r)
		}
		if _, exists := c.byName[r.Name]; exists {
			return nil, fmt.Errorf("duplicate catalog entry: %s", r.Name)
		}
		c.byName[r.Name] = r
		c.byCategory[r.Category] = append(c.byCategory[r.Category], r)
	}

	return c, nil
}

// LoadFile reads a YAML catalog file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc struct {
		Resources []Resource `yaml:"resources"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	return New(doc.Resources)
}

// Load returns the catalog at path, or the compiled-in default catalog
// when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// Resource looks up a catalog entry by name.
func (c *Catalog) Resource(name string) (Resource, bool) {
	r, ok := c.byName[name]
	return r, ok
}

// HasResource reports whether name is a valid resource.
func (c *Catalog) HasResource(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// HasCategory reports whether category exists in the catalog.
func (c *Catalog) HasCategory(category string) bool {
	_, ok := c.byCategory[category]
	return ok
}

// BelongsTo reports whether name is a resource inside category.
func (c *Catalog) BelongsTo(name, category string) bool {
	r, ok := c.byName[name]
	return ok && r.Category == category
}

// Categories returns all category names, sorted.
func (c *Catalog) Categories() []string {
	categories := make([]string, 0, len(c.byCategory))
	for category := range c.byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// ResourcesIn returns the entries of one category, sorted by name.
func (c *Catalog) ResourcesIn(category string) []Resource {
	resources := append([]Resource(nil), c.byCategory[category]...)
	sort.Slice(resources, func(i, j int) bool { return resources[i].Name < resources[j].Name })
	return resources
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.byName)
}

// Sync mirrors the catalog into the resources table. Existing rows are
// left alone so position attribution survives a catalog reload.
func (c *Catalog) Sync(db *gorm.DB) error {
	for name, r := range c.byName {
		err := db.Exec(
			`INSERT INTO resources (name, category, icon) VALUES (?, ?, ?) ON CONFLICT (name) DO NOTHING`,
			name, r.Category, r.Icon,
		).Error
		if err != nil {
			return fmt.Errorf("failed to sync resource %s: %w", name, err)
		}
	}
	return nil
}
