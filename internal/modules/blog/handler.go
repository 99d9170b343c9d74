package blog

import (
	"errors"

	"github.com/espace-agenda/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handler handles blog HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts blog routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	blog := rg.Group("/blog")

	blog.GET("/posts", h.list)
	blog.GET("/posts/:id", h.get)
	blog.POST("/posts", h.create)
	blog.PUT("/posts/:id", h.update)
	blog.DELETE("/posts/:id", h.delete)
	blog.GET("/categories", h.categories)
}

// list GET /blog/posts
func (h *Handler) list(c *gin.Context) {
	var q ListQueryDTO
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	published := true
	if q.Published != nil {
		published = *q.Published
	}

	posts, total, err := h.svc.List(c.Request.Context(), ListQuery{
		Limit:     q.Limit,
		Skip:      q.Skip,
		Category:  q.Category,
		Published: published,
	})
	if err != nil {
		response.InternalError(c, err, "Erreur lors de la récupération des articles")
		return
	}

	summaries := make([]postSummary, len(posts))
	for i := range posts {
		summaries[i] = toSummary(&posts[i])
	}
	response.OK(c, gin.H{
		"posts": summaries,
		"total": total,
	})
}

// get GET /blog/posts/:id
func (h *Handler) get(c *gin.Context) {
	post, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			response.NotFoundMsg(c, "Article non trouvé")
			return
		}
		response.InternalError(c, err, "Erreur lors de la récupération de l'article")
		return
	}
	response.OK(c, post)
}

// create POST /blog/posts
func (h *Handler) create(c *gin.Context) {
	var dto CreatePostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	post, err := h.svc.Create(c.Request.Context(), &dto)
	if err != nil {
		response.InternalError(c, err, "Erreur lors de la création de l'article")
		return
	}

	response.OK(c, gin.H{
		"success": true,
		"message": "Article créé avec succès",
		"post":    post,
	})
}

// update PUT /blog/posts/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdatePostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	post, err := h.svc.Update(c.Request.Context(), c.Param("id"), &dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrPostNotFound):
			response.NotFoundMsg(c, "Article non trouvé")
		case errors.Is(err, ErrNoChanges):
			response.BadRequest(c, "Aucune modification effectuée")
		default:
			response.InternalError(c, err, "Erreur lors de la mise à jour de l'article")
		}
		return
	}

	response.OK(c, gin.H{
		"success": true,
		"message": "Article mis à jour avec succès",
		"post":    post,
	})
}

// delete DELETE /blog/posts/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrPostNotFound) {
			response.NotFoundMsg(c, "Article non trouvé")
			return
		}
		response.InternalError(c, err, "Erreur lors de la suppression de l'article")
		return
	}

	response.OK(c, gin.H{
		"success": true,
		"message": "Article supprimé avec succès",
	})
}

// categories GET /blog/categories
func (h *Handler) categories(c *gin.Context) {
	cats, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		response.InternalError(c, err, "Erreur lors de la récupération des catégories")
		return
	}
	response.OK(c, gin.H{"categories": cats})
}
