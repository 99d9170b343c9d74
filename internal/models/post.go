package models

import "time"

// DefaultAuthor is used when a post is created without an author.
const DefaultAuthor = "Équipe Espace Agenda"

// BlogPost is a blog article document. Slug is always derived from Title
// and is never settable on its own. Date is the display date; it equals
// CreatedAt at creation time.
type BlogPost struct {
	ID        string    `json:"id"         bson:"id"`
	Title     string    `json:"title"      bson:"title"`
	Slug      string    `json:"slug"       bson:"slug"`
	Excerpt   string    `json:"excerpt"    bson:"excerpt"`
	Content   string    `json:"content"    bson:"content"`
	Author    string    `json:"author"     bson:"author"`
	Date      time.Time `json:"date"       bson:"date"`
	Category  string    `json:"category"   bson:"category"`
	Image     string    `json:"image"      bson:"image"`
	Published bool      `json:"published"  bson:"published"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
