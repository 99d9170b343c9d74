package contact

import (
	"github.com/espace-agenda/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handler handles contact HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts contact routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.submit)
	rg.GET("/contacts", h.list)
}

// submit POST /contact
func (h *Handler) submit(c *gin.Context) {
	var dto CreateContactDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	sub, err := h.svc.Submit(c.Request.Context(), &dto)
	if err != nil {
		response.InternalError(c, err, "Une erreur est survenue lors de l'envoi du message")
		return
	}

	response.OK(c, gin.H{
		"success": true,
		"message": "Votre message a été envoyé avec succès. Nous vous répondrons dans les plus brefs délais.",
		"id":      sub.ID,
	})
}

// list GET /contacts
func (h *Handler) list(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	subs, err := h.svc.List(c.Request.Context(), q.Limit, q.Skip)
	if err != nil {
		response.InternalError(c, err, "Erreur lors de la récupération des contacts")
		return
	}
	response.OK(c, subs)
}
