package store

// Point is one aggregated map position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ResourceEntry is the public view of one resource: display metadata from
// the catalog joined with its aggregated positions.
type ResourceEntry struct {
	Icon      string  `json:"icon"`
	Color     string  `json:"color"`
	Visible   bool    `json:"visible"`
	Positions []Point `json:"positions"`
}

// PositionsStore abstracts contribution reads and writes.
type PositionsStore interface {
	// ListAll returns, per catalog category and resource name, the full
	// entry with all positions attributed to non-blocked identities.
	ListAll() (map[string]map[string]ResourceEntry, error)

	// ListResource returns the entry for a single catalog resource.
	ListResource(name string) (ResourceEntry, error)

	// Add inserts a contribution. An exact duplicate of an existing
	// (resource, x, y) tuple is absorbed as success.
	Add(resourceName string, coord Coordinate, identityID int64) error
}
