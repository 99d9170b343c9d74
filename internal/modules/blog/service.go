package blog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/espace-agenda/core/internal/models"
	"github.com/espace-agenda/core/internal/pkg/slug"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	defaultListLimit = 10
	maxListLimit     = 50
)

var (
	// ErrPostNotFound means no post exists under the given id (or it is
	// unpublished on a public read path).
	ErrPostNotFound = errors.New("post not found")
	// ErrNoChanges means an update carried no fields, or the write
	// changed nothing in the store.
	ErrNoChanges = errors.New("no changes applied")
)

// Store persists blog posts. FindByID returns (nil, nil) when no document
// matches. Update applies a partial $set and reports how many documents
// were actually modified.
type Store interface {
	Insert(ctx context.Context, post *models.BlogPost) error
	Find(ctx context.Context, filter bson.M, skip, limit int64) ([]models.BlogPost, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	FindByID(ctx context.Context, id string, publishedOnly bool) (*models.BlogPost, error)
	Update(ctx context.Context, id string, set bson.M) (modified int64, err error)
	Delete(ctx context.Context, id string) (deleted int64, err error)
	DistinctCategories(ctx context.Context) ([]string, error)
}

// ListQuery is the resolved filter for listing posts. When Published is
// false the published filter is dropped entirely rather than matching
// unpublished posts; the original API behaves this way and callers
// depend on it.
type ListQuery struct {
	Limit     int64
	Skip      int64
	Category  string
	Published bool
}

// Service handles blog post business logic.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create inserts a new post, deriving the slug from the title and filling
// defaults for author, published flag and timestamps.
func (s *Service) Create(ctx context.Context, dto *CreatePostDTO) (*models.BlogPost, error) {
	now := time.Now().UTC()
	post := &models.BlogPost{
		ID:        uuid.New().String(),
		Title:     dto.Title,
		Slug:      slug.Make(dto.Title),
		Excerpt:   dto.Excerpt,
		Content:   dto.Content,
		Author:    models.DefaultAuthor,
		Date:      now,
		Category:  dto.Category,
		Image:     dto.Image,
		Published: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if dto.Author != nil {
		post.Author = *dto.Author
	}
	if dto.Published != nil {
		post.Published = *dto.Published
	}

	if err := s.store.Insert(ctx, post); err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	return post, nil
}

// List returns a page of posts sorted by display date descending, plus
// the total matching count before pagination.
func (s *Service) List(ctx context.Context, q ListQuery) ([]models.BlogPost, int64, error) {
	if q.Limit <= 0 {
		q.Limit = defaultListLimit
	}
	if q.Limit > maxListLimit {
		q.Limit = maxListLimit
	}
	if q.Skip < 0 {
		q.Skip = 0
	}

	filter := bson.M{}
	if q.Published {
		filter["published"] = true
	}
	if q.Category != "" {
		filter["category"] = q.Category
	}

	posts, err := s.store.Find(ctx, filter, q.Skip, q.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("find posts: %w", err)
	}
	total, err := s.store.Count(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}
	return posts, total, nil
}

// Get returns a published post by id. Unpublished posts are invisible on
// this path.
func (s *Service) Get(ctx context.Context, id string) (*models.BlogPost, error) {
	post, err := s.store.FindByID(ctx, id, true)
	if err != nil {
		return nil, fmt.Errorf("find post: %w", err)
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// Update applies the non-nil fields of the patch to the stored post.
// A missing post beats an empty patch: NotFound is checked first. A patch
// whose write modifies nothing fails the same way as an empty patch.
func (s *Service) Update(ctx context.Context, id string, dto *UpdatePostDTO) (*models.BlogPost, error) {
	existing, err := s.store.FindByID(ctx, id, false)
	if err != nil {
		return nil, fmt.Errorf("find post: %w", err)
	}
	if existing == nil {
		return nil, ErrPostNotFound
	}

	set := bson.M{}
	if dto.Title != nil {
		set["title"] = *dto.Title
		set["slug"] = slug.Make(*dto.Title)
	}
	if dto.Excerpt != nil {
		set["excerpt"] = *dto.Excerpt
	}
	if dto.Content != nil {
		set["content"] = *dto.Content
	}
	if dto.Author != nil {
		set["author"] = *dto.Author
	}
	if dto.Category != nil {
		set["category"] = *dto.Category
	}
	if dto.Image != nil {
		set["image"] = *dto.Image
	}
	if dto.Published != nil {
		set["published"] = *dto.Published
	}
	if len(set) == 0 {
		return nil, ErrNoChanges
	}
	set["updated_at"] = time.Now().UTC()

	modified, err := s.store.Update(ctx, id, set)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	if modified == 0 {
		return nil, ErrNoChanges
	}

	updated, err := s.store.FindByID(ctx, id, false)
	if err != nil {
		return nil, fmt.Errorf("reload post: %w", err)
	}
	if updated == nil {
		return nil, ErrPostNotFound
	}
	return updated, nil
}

// Delete removes a post by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if deleted == 0 {
		return ErrPostNotFound
	}
	return nil
}

// Categories returns the distinct category labels among published posts.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	cats, err := s.store.DistinctCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}
	if cats == nil {
		cats = []string{}
	}
	return cats, nil
}
