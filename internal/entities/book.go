package entities

// BookRecord is one catalog entry.
//
// Position is not an identity: it is the record's current index in the
// catalog and changes whenever an earlier record is removed.
type BookRecord struct {
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	PageCount   float64 `json:"page_count"`
	HasBeenRead bool    `json:"has_been_read"`
	Position    int     `json:"position"`
}

// NewBookRecord builds a record whose position is assigned by the catalog.
func NewBookRecord(title, author string, pageCount float64, hasBeenRead bool) BookRecord {
	return BookRecord{
		Title:       title,
		Author:      author,
		PageCount:   pageCount,
		HasBeenRead: hasBeenRead,
		Position:    -1,
	}
}
