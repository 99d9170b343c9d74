package app

import (
	"github.com/espace-agenda/core/internal/modules/blog"
	"github.com/espace-agenda/core/internal/modules/contact"
	"github.com/espace-agenda/core/internal/pkg/mail"
	"github.com/espace-agenda/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes() {
	r := a.router

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	mailer := mail.New(mail.FromAppConfig(a.cfg.Mail))

	contactSvc := contact.NewService(contact.NewMongoStore(a.db.Contacts()), mailer, a.logger)
	blogSvc := blog.NewService(blog.NewMongoStore(a.db.BlogPosts()))

	api := r.Group("/api")

	api.GET("/", func(c *gin.Context) {
		response.OK(c, gin.H{"message": "Espace Agenda API - Bienvenue"})
	})

	contact.NewHandler(contactSvc).RegisterRoutes(api)
	blog.NewHandler(blogSvc).RegisterRoutes(api)
}
