package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/resume-builder/pkg/auth"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

type Handlers struct {
	Auth     *AuthHandler
	Resume   *ResumeHandler
	Export   *ExportHandler
	Template *TemplateHandler
}

// NewRouter mounts the API under /api. Everything except login, register, the
// template list and health needs a bearer token.
func NewRouter(h Handlers, jwtSvc *auth.JWTService, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), ErrorMiddleware(log))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
		api.GET("/templates", h.Template.ListTemplates)

		users := api.Group("/users")
		users.POST("/login", h.Auth.Login)
		users.POST("/register", h.Auth.Register)

		private := api.Group("/")
		private.Use(AuthMiddleware(jwtSvc, log))
		{
			resumes := private.Group("/resumes")
			{
				resumes.GET("", h.Resume.ListResumes)
				resumes.POST("", h.Resume.CreateResume)
				resumes.POST("/parse", h.Resume.ParseResume)
				resumes.GET("/:id", h.Resume.GetResume)
				resumes.PUT("/:id", h.Resume.UpdateResume)
				resumes.DELETE("/:id", h.Resume.DeleteResume)
				resumes.POST("/:id/actions", h.Resume.ApplyActions)
				resumes.GET("/:id/document", h.Export.Document)
				resumes.GET("/:id/preview", h.Export.Preview)
				resumes.POST("/:id/export", h.Export.Export)
			}

			session := private.Group("/session")
			session.GET("/selection", h.Template.GetSelection)
			session.PUT("/selection", h.Template.SetSelection)
		}
	}

	return router
}
