package catalog

// Default returns the compiled-in resource catalog with the display colors
// used by the map frontend.
func Default() *Catalog {
	c, err := New([]Resource{
		{Name: "heartwood", Category: "woodworking", Color: "#FF0000", Visible: true},
		{Name: "blushbell", Category: "woodworking", Color: "#00FEB2", Visible: true},
		{Name: "dornwood", Category: "woodworking", Color: "#0000FF", Visible: true},
		{Name: "ellyonwood", Category: "woodworking", Color: "#D200FF", Visible: true},
		{Name: "gold", Category: "mining", Color: "#FFD700", Visible: true},
		{Name: "ambrosite", Category: "mining", Color: "#FFA500", Visible: true},
		{Name: "royalite", Category: "mining", Color: "#008080", Visible: true},
		{Name: "sulfur", Category: "mining", Color: "#f1dd38", Visible: true},
		{Name: "iron", Category: "mining", Color: "#C2C2C2", Visible: true},
		{Name: "coal", Category: "mining", Color: "#151716", Visible: true},
	})
	if err != nil {
		// The default catalog is static; a failure here is a programming error.
		panic(err)
	}
	return c
}
