package blog

import (
	"time"

	"github.com/espace-agenda/core/internal/models"
)

// CreatePostDTO is the request body for creating a post.
type CreatePostDTO struct {
	Title     string  `json:"title"     binding:"required,min=5,max=200"`
	Excerpt   string  `json:"excerpt"   binding:"required,min=20,max=500"`
	Content   string  `json:"content"   binding:"required,min=50"`
	Author    *string `json:"author"`
	Category  string  `json:"category"  binding:"required"`
	Image     string  `json:"image"     binding:"required"`
	Published *bool   `json:"published"`
}

// UpdatePostDTO is the request body for updating a post. All fields are
// optional; a non-nil field participates in the merge even when it equals
// the stored value. Slug is never settable — it follows the title.
type UpdatePostDTO struct {
	Title     *string `json:"title"     binding:"omitempty,min=5,max=200"`
	Excerpt   *string `json:"excerpt"   binding:"omitempty,min=20,max=500"`
	Content   *string `json:"content"   binding:"omitempty,min=50"`
	Author    *string `json:"author"`
	Category  *string `json:"category"`
	Image     *string `json:"image"`
	Published *bool   `json:"published"`
}

// ListQueryDTO holds query params for listing posts. Published defaults
// to true when absent.
type ListQueryDTO struct {
	Limit     int64  `form:"limit,default=10"`
	Skip      int64  `form:"skip,default=0"`
	Category  string `form:"category"`
	Published *bool  `form:"published"`
}

// postSummary is the list-view shape; Content is omitted to keep list
// payloads small.
type postSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Excerpt   string    `json:"excerpt"`
	Author    string    `json:"author"`
	Date      time.Time `json:"date"`
	Category  string    `json:"category"`
	Image     string    `json:"image"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toSummary(p *models.BlogPost) postSummary {
	return postSummary{
		ID:        p.ID,
		Title:     p.Title,
		Slug:      p.Slug,
		Excerpt:   p.Excerpt,
		Author:    p.Author,
		Date:      p.Date,
		Category:  p.Category,
		Image:     p.Image,
		Published: p.Published,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
