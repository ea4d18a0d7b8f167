package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	request "github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/adapter/http/dto/request"
	response "github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/adapter/http/dto/response"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/usecase"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/pkg"
)

// CalendarHandler handles HTTP requests for calendar events.

type CalendarHandler struct {
	usecase usecase.ICalendarUseCase
}

func NewCalendarHandler(uc usecase.ICalendarUseCase) *CalendarHandler {
	return &CalendarHandler{usecase: uc}
}

// CreateEvent creates a calendar event owned by the caller.
func (h *CalendarHandler) CreateEvent(c *gin.Context) {
	actor := actorFrom(c)
	var payload request.CreateEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	attendees := make([]entities.Attendee, len(payload.Attendees))
	for i, userID := range payload.Attendees {
		attendees[i] = entities.Attendee{UserID: userID}
	}

	event := entities.CalendarEvent{
		Title:     payload.ResolveTitle(),
		Start:     payload.Start,
		End:       payload.End,
		Attendees: attendees,
	}
	if payload.Recurrence != nil {
		event.Recurrence = &entities.RecurrenceRule{
			Frequency: entities.RecurrenceFrequency(payload.Recurrence.Frequency),
			Interval:  payload.Recurrence.Interval,
			Until:     payload.Recurrence.Until,
			Count:     payload.Recurrence.Count,
		}
	}
	log.Printf("[calendar][handler] create start organizer_id=%s title=%q", actor.ID, event.Title)

	created, err := h.usecase.CreateEvent(c.Request.Context(), actor, event)
	if err != nil {
		log.Printf("[calendar][handler] create failed organizer_id=%s err=%v", actor.ID, err)
		respondDomainError(c, err)
		return
	}
	log.Printf("[calendar][handler] create success event_id=%s", created.ID)

	c.JSON(http.StatusCreated, response.FromCalendarEvent(created))
}

// GetEvent returns one calendar event.
func (h *CalendarHandler) GetEvent(c *gin.Context) {
	id := c.Param("id")
	event, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[calendar][handler] get failed event_id=%s err=%v", id, err)
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCalendarEvent(event))
}

// RSVP records the caller's reply on an event they attend.
func (h *CalendarHandler) RSVP(c *gin.Context) {
	id := c.Param("id")
	actor := actorFrom(c)
	var payload request.RSVPRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	event, err := h.usecase.RSVP(c.Request.Context(), id, actor, entities.RSVPStatus(payload.ResolveStatus()))
	if err != nil {
		log.Printf("[calendar][handler] rsvp failed event_id=%s actor_id=%s err=%v", id, actor.ID, err)
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCalendarEvent(event))
}

// GetOccurrences expands the event into occurrences inside [from, to).
// Query params: from, to (RFC3339, required).
func (h *CalendarHandler) GetOccurrences(c *gin.Context) {
	id := c.Param("id")

	from, errFrom := time.Parse(time.RFC3339, c.Query("from"))
	to, errTo := time.Parse(time.RFC3339, c.Query("to"))
	if errFrom != nil || errTo != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Query params from and to must be RFC3339 timestamps", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	occurrences, err := h.usecase.Occurrences(c.Request.Context(), id, from, to)
	if err != nil {
		log.Printf("[calendar][handler] occurrences failed event_id=%s err=%v", id, err)
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOccurrences(occurrences))
}
