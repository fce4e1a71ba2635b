package http

import (
	"github.com/gin-gonic/gin"

	"github.com/giorgi26/Planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every planner route requires the identity headers.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.Auth())

	rg.GET("/week", h.Week)
	rg.GET("/agenda", h.Agenda)
	rg.GET("/history", h.History)
	rg.GET("/export", h.Export)

	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.Create)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/:id/complete", h.Complete)
		tasks.POST("/:id/toggle", h.Toggle)
		tasks.POST("/:id/comments", h.AddComment)
		tasks.POST("/:id/pomodoro", h.RecordPomodoro)
	}

	tags := rg.Group("/tags")
	{
		tags.GET("", h.TagCounts)
		tags.POST("", h.AddTag)
		tags.GET("/vocabulary", h.Vocabulary)
		tags.GET("/suggest", h.SuggestTags)
		tags.DELETE("/:tag", h.RemoveTag)
	}

	prefs := rg.Group("/preferences")
	{
		prefs.GET("", h.Preferences)
		prefs.POST("/pomodoro/toggle", h.TogglePomodoro)
	}
}
