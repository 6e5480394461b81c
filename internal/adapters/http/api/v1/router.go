package v1

import (
	"github.com/labstack/echo/v4"

	"github.com/Maksym-Tomusiak/Diploma-API/internal/adapters/http/api/v1/handlers"
	authmw "github.com/Maksym-Tomusiak/Diploma-API/internal/adapters/http/middleware"
)

type Router struct {
	auth         *handlers.AuthHandler
	users        *handlers.UserHandler
	documents    *handlers.DocumentHandler
	templates    *handlers.TemplateHandler
	checkResults *handlers.CheckResultHandler
	mw           *authmw.AuthMiddleware
}

func NewRouter(
	auth *handlers.AuthHandler,
	users *handlers.UserHandler,
	documents *handlers.DocumentHandler,
	templates *handlers.TemplateHandler,
	checkResults *handlers.CheckResultHandler,
	mw *authmw.AuthMiddleware,
) *Router {
	return &Router{auth: auth, users: users, documents: documents, templates: templates, checkResults: checkResults, mw: mw}
}

func (r *Router) Register(g *echo.Group) {
	auth := g.Group("/auth")
	auth.GET("/login", r.auth.Login)
	auth.GET("/callback", r.auth.Callback)
	auth.POST("/refresh", r.auth.Refresh)
	auth.GET("/me", r.auth.Me, r.mw.RequireUser)
	auth.POST("/logout", r.auth.Logout, r.mw.RequireUser)

	users := g.Group("/users", r.mw.RequireUser)
	users.GET("", r.users.GetAll, r.mw.RequireAdmin)
	users.GET("/me", r.users.Me)
	users.GET("/:id", r.users.Get)
	users.DELETE("/:id", r.users.Delete, r.mw.RequireAdmin)

	documents := g.Group("/documents", r.mw.RequireUser)
	documents.GET("", r.documents.GetAll)
	documents.GET("/:id", r.documents.Get)
	documents.POST("", r.documents.Create)
	documents.PATCH("/:id/status", r.documents.UpdateStatus)
	documents.DELETE("/:id", r.documents.Delete)

	templates := g.Group("/templates", r.mw.RequireUser)
	templates.GET("", r.templates.GetAll)
	templates.GET("/:id", r.templates.Get)
	templates.POST("", r.templates.Create, r.mw.RequireAdmin)
	templates.PUT("/:id", r.templates.Update, r.mw.RequireAdmin)
	templates.DELETE("/:id", r.templates.Delete, r.mw.RequireAdmin)

	checkResults := g.Group("/check-results", r.mw.RequireUser)
	checkResults.GET("/:id", r.checkResults.Get)
	checkResults.GET("/document/:document_id", r.checkResults.GetForDocument)
	checkResults.POST("", r.checkResults.Create)
}
