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

const defaultDeadlineThreshold = 48 * time.Hour

// WorkItemHandler handles HTTP requests for SLA-tracked work items.

type WorkItemHandler struct {
	usecase usecase.IWorkItemUseCase
}

func NewWorkItemHandler(uc usecase.IWorkItemUseCase) *WorkItemHandler {
	return &WorkItemHandler{usecase: uc}
}

// CreateWorkItem assigns a deadline-bound task.
func (h *WorkItemHandler) CreateWorkItem(c *gin.Context) {
	actor := actorFrom(c)
	var payload request.CreateWorkItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	item := entities.WorkItem{
		Kind:         entities.WorkItemKind(payload.ResolveKind()),
		AssigneeID:   payload.ResolveAssigneeID(),
		AssigneeRole: entities.Role(payload.ResolveAssigneeRole()),
		RefID:        payload.RefID,
		DueAt:        payload.DueAt,
	}
	log.Printf("[workitem][handler] create start assignee_id=%s kind=%s", item.AssigneeID, item.Kind)

	created, err := h.usecase.Create(c.Request.Context(), actor, item)
	if err != nil {
		log.Printf("[workitem][handler] create failed assignee_id=%s err=%v", item.AssigneeID, err)
		respondDomainError(c, err)
		return
	}
	log.Printf("[workitem][handler] create success work_item_id=%s", created.ID)

	c.JSON(http.StatusCreated, response.FromWorkItem(created))
}

// CompleteWorkItem closes the item; on-time vs late is judged at this
// moment.
func (h *WorkItemHandler) CompleteWorkItem(c *gin.Context) {
	id := c.Param("id")
	item, err := h.usecase.Complete(c.Request.Context(), id, actorFrom(c))
	if err != nil {
		log.Printf("[workitem][handler] complete failed work_item_id=%s err=%v", id, err)
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkItem(item))
}

// CancelWorkItem drops the item from deadline tracking.
func (h *WorkItemHandler) CancelWorkItem(c *gin.Context) {
	id := c.Param("id")
	item, err := h.usecase.Cancel(c.Request.Context(), id, actorFrom(c))
	if err != nil {
		log.Printf("[workitem][handler] cancel failed work_item_id=%s err=%v", id, err)
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkItem(item))
}

// GetDeadlines reports the assignee's near-deadline and breached items.
// Query param: threshold (Go duration, default 48h).
func (h *WorkItemHandler) GetDeadlines(c *gin.Context) {
	assigneeID := c.Param("assignee_id")

	threshold := defaultDeadlineThreshold
	if raw := c.Query("threshold"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Query param threshold must be a positive duration", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		threshold = parsed
	}

	report, err := h.usecase.Deadlines(c.Request.Context(), assigneeID, threshold)
	if err != nil {
		log.Printf("[workitem][handler] deadlines failed assignee_id=%s err=%v", assigneeID, err)
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDeadlineReport(report))
}

// GetStats rolls up on-time vs breached counts grouped by role and kind.
// Query params: from, to (RFC3339, required).
func (h *WorkItemHandler) GetStats(c *gin.Context) {
	from, errFrom := time.Parse(time.RFC3339, c.Query("from"))
	to, errTo := time.Parse(time.RFC3339, c.Query("to"))
	if errFrom != nil || errTo != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Query params from and to must be RFC3339 timestamps", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	stats, err := h.usecase.Stats(c.Request.Context(), from, to)
	if err != nil {
		log.Printf("[workitem][handler] stats failed err=%v", err)
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromGroupStats(stats))
}
