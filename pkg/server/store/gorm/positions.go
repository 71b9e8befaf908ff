package gorm

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Torxed/coreborn-api/pkg/catalog"
	"github.com/Torxed/coreborn-api/pkg/db"
	"github.com/Torxed/coreborn-api/pkg/server/store"
)

// Ensure PositionsStore implements store.PositionsStore
var _ store.PositionsStore = (*PositionsStore)(nil)

// PositionsStore implements store.PositionsStore using GORM. Display
// metadata comes from the live catalog; positions from Postgres.
type PositionsStore struct {
	db      *gorm.DB
	catalog *catalog.Holder
}

// NewPositionsStore creates a new PositionsStore
func NewPositionsStore(db *gorm.DB, catalog *catalog.Holder) *PositionsStore {
	return &PositionsStore{db: db, catalog: catalog}
}

// ListAll returns every catalog resource grouped by category, with all
// positions attributed to non-blocked identities.
func (s *PositionsStore) ListAll() (map[string]map[string]store.ResourceEntry, error) {
	cat := s.catalog.Get()

	type posRow struct {
		Name string
		X    float64
		Y    float64
	}
	var rows []posRow
	err := db.RetryOnce(func() error {
		return s.db.Raw(
			`SELECT r.name, p.x, p.y
			 FROM positions p
			 JOIN resources r ON r.id = p.resource_id
			 JOIN identities i ON i.id = p.identity_id
			 WHERE NOT i.blocked
			 ORDER BY p.id`,
		).Scan(&rows).Error
	})
	if err != nil {
		return nil, storageErr(err)
	}

	points := make(map[string][]store.Point)
	for _, row := range rows {
		points[row.Name] = append(points[row.Name], store.Point{X: row.X, Y: row.Y})
	}

	out := make(map[string]map[string]store.ResourceEntry)
	for _, category := range cat.Categories() {
		entries := make(map[string]store.ResourceEntry)
		for _, res := range cat.ResourcesIn(category) {
			entry := store.ResourceEntry{
				Icon:      res.Icon,
				Color:     res.Color,
				Visible:   res.Visible,
				Positions: []store.Point{},
			}
			if pts, ok := points[res.Name]; ok {
				entry.Positions = pts
			}
			entries[res.Name] = entry
		}
		out[category] = entries
	}
	return out, nil
}

// ListResource returns the aggregated entry for one catalog resource.
func (s *PositionsStore) ListResource(name string) (store.ResourceEntry, error) {
	res, ok := s.catalog.Get().Resource(name)
	if !ok {
		return store.ResourceEntry{}, fmt.Errorf("%w: %s", store.ErrUnknownResource, name)
	}

	entry := store.ResourceEntry{
		Icon:      res.Icon,
		Color:     res.Color,
		Visible:   res.Visible,
		Positions: []store.Point{},
	}
	err := db.RetryOnce(func() error {
		return s.db.Raw(
			`SELECT p.x, p.y
			 FROM positions p
			 JOIN resources r ON r.id = p.resource_id
			 JOIN identities i ON i.id = p.identity_id
			 WHERE r.name = ? AND NOT i.blocked
			 ORDER BY p.id`,
			name,
		).Scan(&entry.Positions).Error
	})
	if err != nil {
		return store.ResourceEntry{}, storageErr(err)
	}
	return entry, nil
}

// Add inserts a contribution. The conflict clause on (resource_id, x, y)
// absorbs exact duplicates as success, racing writers included.
func (s *PositionsStore) Add(resourceName string, coord store.Coordinate, identityID int64) error {
	if !s.catalog.Get().HasResource(resourceName) {
		return fmt.Errorf("%w: %s", store.ErrUnknownResource, resourceName)
	}
	err := db.RetryOnce(func() error {
		return s.db.Exec(
			`INSERT INTO positions (resource_id, x, y, identity_id)
			 SELECT id, ?, ?, ? FROM resources WHERE name = ?
			 ON CONFLICT (resource_id, x, y) DO NOTHING`,
			coord.X, coord.Y, identityID, resourceName,
		).Error
	})
	return storageErr(err)
}
