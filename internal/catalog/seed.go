package catalog

import "github.com/mrlokans/bookshelf/internal/entities"

// DefaultSeed is the pair of records a fresh catalog starts with.
var DefaultSeed = []entities.BookRecord{
	entities.NewBookRecord("Astro Boy", "Japanese Dude", 200, false),
	entities.NewBookRecord("Game of Thrones", "George R. R. Martin", 345, true),
}

// Seed appends records in order.
func (c *Catalog) Seed(records []entities.BookRecord) {
	for _, record := range records {
		c.Add(record)
	}
}
