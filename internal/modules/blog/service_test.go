package blog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/espace-agenda/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeStore is an in-memory Store. It records the last filter and paging
// arguments so tests can assert on what the service asked for.
type fakeStore struct {
	posts []models.BlogPost

	lastFilter bson.M
	lastSkip   int64
	lastLimit  int64
	lastSet    bson.M

	insertErr error
	// forcedModified, when non-nil, overrides the Update result.
	forcedModified *int64
}

func (f *fakeStore) Insert(_ context.Context, post *models.BlogPost) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.posts = append(f.posts, *post)
	return nil
}

func (f *fakeStore) matches(p *models.BlogPost, filter bson.M) bool {
	if v, ok := filter["published"]; ok && p.Published != v.(bool) {
		return false
	}
	if v, ok := filter["category"]; ok && p.Category != v.(string) {
		return false
	}
	return true
}

func (f *fakeStore) Find(_ context.Context, filter bson.M, skip, limit int64) ([]models.BlogPost, error) {
	f.lastFilter = filter
	f.lastSkip = skip
	f.lastLimit = limit

	out := make([]models.BlogPost, 0)
	for i := range f.posts {
		if f.matches(&f.posts[i], filter) {
			out = append(out, f.posts[i])
		}
	}
	if skip >= int64(len(out)) {
		return []models.BlogPost{}, nil
	}
	out = out[skip:]
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) Count(_ context.Context, filter bson.M) (int64, error) {
	var n int64
	for i := range f.posts {
		if f.matches(&f.posts[i], filter) {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) FindByID(_ context.Context, id string, publishedOnly bool) (*models.BlogPost, error) {
	for i := range f.posts {
		if f.posts[i].ID != id {
			continue
		}
		if publishedOnly && !f.posts[i].Published {
			return nil, nil
		}
		p := f.posts[i]
		return &p, nil
	}
	return nil, nil
}

func (f *fakeStore) Update(_ context.Context, id string, set bson.M) (int64, error) {
	f.lastSet = set
	if f.forcedModified != nil {
		return *f.forcedModified, nil
	}
	for i := range f.posts {
		if f.posts[i].ID != id {
			continue
		}
		p := &f.posts[i]
		if v, ok := set["title"]; ok {
			p.Title = v.(string)
		}
		if v, ok := set["slug"]; ok {
			p.Slug = v.(string)
		}
		if v, ok := set["excerpt"]; ok {
			p.Excerpt = v.(string)
		}
		if v, ok := set["content"]; ok {
			p.Content = v.(string)
		}
		if v, ok := set["author"]; ok {
			p.Author = v.(string)
		}
		if v, ok := set["category"]; ok {
			p.Category = v.(string)
		}
		if v, ok := set["image"]; ok {
			p.Image = v.(string)
		}
		if v, ok := set["published"]; ok {
			p.Published = v.(bool)
		}
		if v, ok := set["updated_at"]; ok {
			p.UpdatedAt = v.(time.Time)
		}
		return 1, nil
	}
	return 0, nil
}

func (f *fakeStore) Delete(_ context.Context, id string) (int64, error) {
	for i := range f.posts {
		if f.posts[i].ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeStore) DistinctCategories(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	var cats []string
	for i := range f.posts {
		p := &f.posts[i]
		if p.Published && !seen[p.Category] {
			seen[p.Category] = true
			cats = append(cats, p.Category)
		}
	}
	return cats, nil
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func validCreateDTO() *CreatePostDTO {
	return &CreatePostDTO{
		Title:    "Mon Premier Article",
		Excerpt:  "Un résumé suffisamment long pour passer la validation.",
		Content:  "Le corps de l'article, lui aussi assez long pour être accepté par la validation.",
		Category: "Conseils",
		Image:    "https://example.com/image.jpg",
	}
}

func seedPost(id string, published bool, category string) models.BlogPost {
	now := time.Now().UTC()
	return models.BlogPost{
		ID:        id,
		Title:     "Titre de l'article " + id,
		Slug:      "titre-de-larticle-" + id,
		Excerpt:   "Un résumé suffisamment long pour passer la validation.",
		Content:   "Le corps de l'article, lui aussi assez long pour être accepté.",
		Author:    models.DefaultAuthor,
		Date:      now,
		Category:  category,
		Image:     "https://example.com/image.jpg",
		Published: published,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreateFillsDefaults(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	post, err := svc.Create(context.Background(), validCreateDTO())
	require.NoError(t, err)

	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "mon-premier-article", post.Slug)
	assert.Equal(t, models.DefaultAuthor, post.Author)
	assert.True(t, post.Published)
	assert.Equal(t, post.CreatedAt, post.UpdatedAt)
	assert.Equal(t, post.CreatedAt, post.Date)
	require.Len(t, store.posts, 1)
}

func TestCreateHonorsOverrides(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	dto := validCreateDTO()
	dto.Author = strPtr("Jean Dupont")
	dto.Published = boolPtr(false)

	post, err := svc.Create(context.Background(), dto)
	require.NoError(t, err)

	assert.Equal(t, "Jean Dupont", post.Author)
	assert.False(t, post.Published)
}

func TestCreateInsertError(t *testing.T) {
	store := &fakeStore{insertErr: errors.New("connection reset")}
	svc := NewService(store)

	_, err := svc.Create(context.Background(), validCreateDTO())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert post")
}

func TestListPublishedFilter(t *testing.T) {
	store := &fakeStore{posts: []models.BlogPost{
		seedPost("1", true, "Conseils"),
		seedPost("2", false, "Conseils"),
	}}
	svc := NewService(store)

	posts, total, err := svc.List(context.Background(), ListQuery{Published: true})
	require.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, bson.M{"published": true}, store.lastFilter)
}

// Published=false drops the filter entirely instead of selecting drafts,
// so the listing includes published and unpublished posts alike.
func TestListPublishedFalseDisablesFilter(t *testing.T) {
	store := &fakeStore{posts: []models.BlogPost{
		seedPost("1", true, "Conseils"),
		seedPost("2", false, "Conseils"),
	}}
	svc := NewService(store)

	posts, total, err := svc.List(context.Background(), ListQuery{Published: false})
	require.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, int64(2), total)
	assert.NotContains(t, store.lastFilter, "published")
}

func TestListCategoryFilter(t *testing.T) {
	store := &fakeStore{posts: []models.BlogPost{
		seedPost("1", true, "Conseils"),
		seedPost("2", true, "Avantages"),
	}}
	svc := NewService(store)

	posts, total, err := svc.List(context.Background(), ListQuery{Published: true, Category: "Avantages"})
	require.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Avantages", posts[0].Category)
}

func TestListClampsPaging(t *testing.T) {
	tests := []struct {
		name      string
		limit     int64
		skip      int64
		wantLimit int64
		wantSkip  int64
	}{
		{"zero limit uses default", 0, 0, 10, 0},
		{"negative limit uses default", -3, 0, 10, 0},
		{"limit capped at max", 500, 0, 50, 0},
		{"negative skip reset", 10, -5, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			svc := NewService(store)

			_, _, err := svc.List(context.Background(), ListQuery{Limit: tt.limit, Skip: tt.skip})
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, store.lastLimit)
			assert.Equal(t, tt.wantSkip, store.lastSkip)
		})
	}
}

func TestGetPublishedPost(t *testing.T) {
	store := &fakeStore{posts: []models.BlogPost{seedPost("1", true, "Conseils")}}
	svc := NewService(store)

	post, err := svc.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "1", post.ID)
}

func TestGetUnpublishedPostIsInvisible(t *testing.T) {
	store := &fakeStore{posts: []models.BlogPost{seedPost("1", false, "Conseils")}}
	svc := NewService(store)

	_, err := svc.Get(context.Background(), "1")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestGetMissingPost(t *testing.T) {
	svc := NewService(&fakeStore{})

	_, err := svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestUpdateMissingPostBeatsEmptyPatch(t *testing.T) {
	svc := NewService(&fakeStore{})

	_, err := svc.Update(context.Background(), "nope", &UpdatePostDTO{})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestUpdateEmptyPatch(t *testing.T) {
	store := &fakeStore{posts: []models.BlogPost{seedPost("1", true, "Conseils")}}
	svc := NewService(store)

	_, err := svc.Update(context.Background(), "1", &UpdatePostDTO{})
	assert.ErrorIs(t, err, ErrNoChanges)
	assert.Nil(t, store.lastSet)
}

func TestUpdateTitleRecomputesSlug(t *testing.T) {
	store := &fakeStore{posts: []models.BlogPost{seedPost("1", true, "Conseils")}}
	svc := NewService(store)

	post, err := svc.Update(context.Background(), "1", &UpdatePostDTO{
		Title: strPtr("Un Nouveau Titre, Très Différent"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Un Nouveau Titre, Très Différent", post.Title)
	assert.Equal(t, "un-nouveau-titre-très-différent", post.Slug)
	assert.Contains(t, store.lastSet, "updated_at")
}

func TestUpdateUnpublish(t *testing.T) {
	store := &fakeStore{posts: []models.BlogPost{seedPost("1", true, "Conseils")}}
	svc := NewService(store)

	post, err := svc.Update(context.Background(), "1", &UpdatePostDTO{Published: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, post.Published)

	// The post stays reachable through the admin read path.
	_, err = svc.Get(context.Background(), "1")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestUpdateModifiedNothing(t *testing.T) {
	var zero int64
	store := &fakeStore{
		posts:          []models.BlogPost{seedPost("1", true, "Conseils")},
		forcedModified: &zero,
	}
	svc := NewService(store)

	_, err := svc.Update(context.Background(), "1", &UpdatePostDTO{Category: strPtr("Conseils")})
	assert.ErrorIs(t, err, ErrNoChanges)
}

func TestDeletePost(t *testing.T) {
	store := &fakeStore{posts: []models.BlogPost{seedPost("1", true, "Conseils")}}
	svc := NewService(store)

	require.NoError(t, svc.Delete(context.Background(), "1"))
	assert.Empty(t, store.posts)

	assert.ErrorIs(t, svc.Delete(context.Background(), "1"), ErrPostNotFound)
}

func TestCategoriesNeverNil(t *testing.T) {
	svc := NewService(&fakeStore{})

	cats, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, cats)
	assert.Empty(t, cats)
}

func TestCategoriesPublishedOnly(t *testing.T) {
	store := &fakeStore{posts: []models.BlogPost{
		seedPost("1", true, "Conseils"),
		seedPost("2", true, "Avantages"),
		seedPost("3", false, "Brouillons"),
	}}
	svc := NewService(store)

	cats, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Conseils", "Avantages"}, cats)
}
