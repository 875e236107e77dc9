package model

import "github.com/lib/pq"

// Listing is a property advertisement shown on the site.
// Timestamps are RFC 3339 strings, stored as-is so the frontend can
// round-trip them verbatim on bulk sync.
type Listing struct {
	ID          int            `db:"id" json:"id"`
	Title       string         `db:"title" json:"title"`
	Price       string         `db:"price" json:"price"`
	Location    string         `db:"location" json:"location"`
	MapURL      string         `db:"map_url" json:"mapUrl"`
	Desc        string         `db:"description" json:"desc"`
	Tags        pq.StringArray `db:"tags" json:"tags"`
	Images      pq.StringArray `db:"images" json:"images"`
	Completed   bool           `db:"completed" json:"completed"`
	PhotoFileID string         `db:"photo_file_id" json:"photoFileId,omitempty"`
	CreatedAt   string         `db:"created_at" json:"createdAt"`
	UpdatedAt   string         `db:"updated_at" json:"updatedAt"`
}

// Normalize fills in slice defaults so a listing always serializes with
// `tags` and `images` as arrays, never null.
func (l *Listing) Normalize() {
	if l.Tags == nil {
		l.Tags = pq.StringArray{}
	}
	if l.Images == nil {
		l.Images = pq.StringArray{}
	}
}
