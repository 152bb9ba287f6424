package routes

import (
	"woodshop_builds/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBuilds    = "/builds"
	PathEstimates = "/estimates"
	PathSync      = "/sync"
)

func addBuildRoutes(rg *gin.RouterGroup, buildHandler *handlers.BuildHandler) {
	builds := rg.Group(PathBuilds)
	{
		builds.POST("", buildHandler.CreateBuild)
		builds.GET("", buildHandler.ListBuilds)
		builds.GET("/lookup", buildHandler.LookupBuild)
		builds.GET("/:id", buildHandler.GetBuild)
		builds.POST("/:id/submit", buildHandler.SubmitBuild)
		builds.POST("/:id/notes", buildHandler.AddNote)
		builds.DELETE("/:id/notes/:note_id", buildHandler.RemoveNote)
		builds.PATCH("/:id/status", buildHandler.UpdateStatus)
		builds.POST("/:id/render", buildHandler.TriggerRender)
	}
}

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("/preview", estimateHandler.PreviewEstimate)
	}
}

func addSyncRoutes(rg *gin.RouterGroup, syncHandler *handlers.SyncHandler) {
	sync := rg.Group(PathSync)
	{
		sync.POST("", syncHandler.RunSync)
		sync.POST("/restore", syncHandler.RestoreFromCloud)
		sync.GET("/events", syncHandler.ListEvents)
	}
}
