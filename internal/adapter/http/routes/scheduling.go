package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/adapter/http/handlers"
)

const (
	PathEvents    = "/events"
	PathWorkItems = "/work-items"
)

func addSchedulingRoutes(
	rg *gin.RouterGroup,
	calendarHandler *handlers.CalendarHandler,
	workItemHandler *handlers.WorkItemHandler,
) {
	events := rg.Group(PathEvents)
	{
		events.POST("", calendarHandler.CreateEvent)
		events.GET("/:id", calendarHandler.GetEvent)
		events.PATCH("/:id/rsvp", calendarHandler.RSVP)
		events.GET("/:id/occurrences", calendarHandler.GetOccurrences)
	}

	workItems := rg.Group(PathWorkItems)
	{
		workItems.POST("", workItemHandler.CreateWorkItem)
		workItems.PATCH("/:id/complete", workItemHandler.CompleteWorkItem)
		workItems.PATCH("/:id/cancel", workItemHandler.CancelWorkItem)
		workItems.GET("/deadlines/:assignee_id", workItemHandler.GetDeadlines)
		workItems.GET("/stats", workItemHandler.GetStats)
	}
}
