package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/worknow-dev/worknow/internal/handlers"
	"github.com/worknow-dev/worknow/internal/middleware"
	"github.com/worknow-dev/worknow/internal/types"
)

// Handlers bundles the constructed handler set wired into the route tree.
type Handlers struct {
	Auth          *handlers.AuthHandler
	Jobs          *handlers.JobHandler
	Projects      *handlers.ProjectHandler
	Applications  *handlers.ApplicationHandler
	Completed     *handlers.CompletedHandler
	Notifications *handlers.NotificationHandler
}

func New(h Handlers, authMw *middleware.Auth, limiter *middleware.RedisLimiter) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register/user", limiter.RateLimit("register", 10, time.Minute), h.Auth.RegisterUser)
			auth.POST("/register/company", limiter.RateLimit("register", 10, time.Minute), h.Auth.RegisterCompany)
			auth.POST("/login", limiter.RateLimit("login", 20, time.Minute), h.Auth.Login)
			auth.GET("/profile", authMw.Require(), h.Auth.Me)
			auth.PUT("/profile", authMw.Require(), h.Auth.UpdateProfile)
		}

		jobs := api.Group("/jobs")
		{
			jobs.GET("", h.Jobs.List)
			jobs.GET("/:job_id", h.Jobs.Get)
			jobs.POST("", authMw.RequireCompany(), h.Jobs.Create)
			jobs.GET("/company/me", authMw.RequireCompany(), h.Jobs.ListMine)
			jobs.PUT("/:job_id", authMw.RequireCompany(), h.Jobs.Update)
			jobs.DELETE("/:job_id", authMw.RequireCompany(), h.Jobs.Delete)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", h.Projects.List)
			projects.GET("/:project_id", h.Projects.Get)
			projects.POST("", authMw.RequireCompany(), h.Projects.Create)
			projects.GET("/company/me", authMw.RequireCompany(), h.Projects.ListMine)
			projects.PUT("/:project_id", authMw.RequireCompany(), h.Projects.Update)
			projects.DELETE("/:project_id", authMw.RequireCompany(), h.Projects.Delete)
		}

		applications := api.Group("/applications")
		{
			applications.POST("/job/:job_id/apply", authMw.RequireUser(), h.Applications.ApplyJob)
			applications.POST("/project/:project_id/apply", authMw.RequireUser(), h.Applications.ApplyProject)
			applications.GET("/me", authMw.RequireUser(), h.Applications.ListMine)
			applications.GET("/company/me", authMw.RequireCompany(), h.Applications.ListCompany)
			applications.PUT("/:application_id/status", authMw.RequireCompany(), h.Applications.Review)
			applications.PUT("/:application_id/completion", authMw.RequireUser(), h.Applications.ConfirmCompletion)
		}

		completed := api.Group("/completed-projects", authMw.RequireUser())
		{
			completed.GET("/my-projects", h.Completed.ListMine)
			completed.DELETE("/:id", h.Completed.Delete)
		}

		notifications := api.Group("/notifications", authMw.Require())
		{
			notifications.GET("/count", h.Notifications.Count)
			notifications.PUT("/read", h.Notifications.MarkRead)
		}
	}

	return r
}
