package domain

import "time"

// Post is a blog/portfolio content item. CreatedAt is assigned by the server
// at creation and never changes; updates replace title, excerpt and slug only.
type Post struct {
	ID        int64     `json:"id" bson:"_id"`
	Title     string    `json:"title" bson:"title"`
	Excerpt   string    `json:"excerpt" bson:"excerpt"`
	Slug      string    `json:"slug" bson:"slug"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
