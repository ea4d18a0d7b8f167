package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	request "github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/adapter/http/dto/request"
	response "github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/adapter/http/dto/response"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/metrics"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/usecase"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/pkg"
)

const defaultSlotDuration = 2 * time.Hour

// InspectionHandler handles HTTP requests for inspection bookings.

type InspectionHandler struct {
	usecase usecase.IInspectionUseCase
}

func NewInspectionHandler(uc usecase.IInspectionUseCase) *InspectionHandler {
	return &InspectionHandler{usecase: uc}
}

// ScheduleInspection books an inspector for an application window.
func (h *InspectionHandler) ScheduleInspection(c *gin.Context) {
	actor := actorFrom(c)
	var payload request.ScheduleInspectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	log.Printf("[inspection][handler] schedule start application_id=%s inspector_id=%s", payload.ResolveApplicationID(), payload.ResolveInspectorID())

	booking, err := h.usecase.Schedule(c.Request.Context(), actor, payload.ResolveApplicationID(), payload.ResolveInspectorID(), payload.WindowStart, payload.WindowEnd)
	if err != nil {
		log.Printf("[inspection][handler] schedule failed application_id=%s err=%v", payload.ResolveApplicationID(), err)
		respondDomainError(c, err)
		return
	}
	log.Printf("[inspection][handler] schedule success inspection_id=%s", booking.ID)
	metrics.ObserveTransition("inspection", string(booking.Status))

	c.JSON(http.StatusCreated, response.FromInspection(booking))
}

// GetInspection returns one booking.
func (h *InspectionHandler) GetInspection(c *gin.Context) {
	id := c.Param("id")
	booking, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[inspection][handler] get failed inspection_id=%s err=%v", id, err)
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInspection(booking))
}

// ConfirmInspection moves a scheduled booking to confirmed.
func (h *InspectionHandler) ConfirmInspection(c *gin.Context) {
	h.patchInspection(c, "confirm", h.usecase.Confirm)
}

// StartInspection moves a confirmed booking to in_progress.
func (h *InspectionHandler) StartInspection(c *gin.Context) {
	h.patchInspection(c, "start", h.usecase.Start)
}

// CompleteInspection closes the visit with its compliance score.
func (h *InspectionHandler) CompleteInspection(c *gin.Context) {
	var payload request.CompleteInspectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.ComplianceScore == nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	h.patchInspection(c, "complete", func(ctx context.Context, id string, actor entities.Actor) (entities.Inspection, error) {
		return h.usecase.Complete(ctx, id, actor, *payload.ComplianceScore)
	})
}

// CancelInspection frees the inspector's window.
func (h *InspectionHandler) CancelInspection(c *gin.Context) {
	h.patchInspection(c, "cancel", h.usecase.Cancel)
}

// RescheduleInspection moves the booking, bounded by the reschedule limit.
func (h *InspectionHandler) RescheduleInspection(c *gin.Context) {
	var payload request.RescheduleInspectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	h.patchInspection(c, "reschedule", func(ctx context.Context, id string, actor entities.Actor) (entities.Inspection, error) {
		return h.usecase.Reschedule(ctx, id, actor, payload.WindowStart, payload.WindowEnd)
	})
}

// GetAvailability lists an inspector's free slots for one day.
// Query params: day (2006-01-02, required), duration (Go duration, default 2h).
func (h *InspectionHandler) GetAvailability(c *gin.Context) {
	inspectorID := c.Param("inspector_id")

	day, err := time.Parse("2006-01-02", c.Query("day"))
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Query param day must be formatted as 2006-01-02", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	duration := defaultSlotDuration
	if raw := c.Query("duration"); raw != "" {
		duration, err = time.ParseDuration(raw)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Query param duration must be a valid duration", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	slots, err := h.usecase.Availability(c.Request.Context(), inspectorID, day, duration)
	if err != nil {
		log.Printf("[inspection][handler] availability failed inspector_id=%s err=%v", inspectorID, err)
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAvailability(inspectorID, day, slots))
}

func (h *InspectionHandler) patchInspection(
	c *gin.Context,
	op string,
	updater func(ctx context.Context, id string, actor entities.Actor) (entities.Inspection, error),
) {
	id := c.Param("id")
	actor := actorFrom(c)
	log.Printf("[inspection][handler] %s start inspection_id=%s actor_id=%s", op, id, actor.ID)

	booking, err := updater(c.Request.Context(), id, actor)
	if err != nil {
		log.Printf("[inspection][handler] %s failed inspection_id=%s err=%v", op, id, err)
		respondDomainError(c, err)
		return
	}
	log.Printf("[inspection][handler] %s success inspection_id=%s status=%s", op, id, booking.Status)
	metrics.ObserveTransition("inspection", string(booking.Status))

	c.JSON(http.StatusOK, response.FromInspection(booking))
}
