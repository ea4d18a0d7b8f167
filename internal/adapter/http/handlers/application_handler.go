package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/adapter/http/dto/request"
	response "github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/adapter/http/dto/response"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/metrics"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/usecase"
)

// ApplicationHandler handles HTTP requests for certification applications.

type ApplicationHandler struct {
	usecase usecase.IApplicationUseCase
}

func NewApplicationHandler(uc usecase.IApplicationUseCase) *ApplicationHandler {
	return &ApplicationHandler{usecase: uc}
}

// CreateApplication opens a draft for the calling applicant.
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	actor := actorFrom(c)
	var payload request.CreateApplicationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	log.Printf("[application][handler] create start applicant_id=%s category=%s", actor.ID, payload.ResolveCategory())

	app, err := h.usecase.Create(c.Request.Context(), actor, entities.ApplicantCategory(payload.ResolveCategory()))
	if err != nil {
		log.Printf("[application][handler] create failed applicant_id=%s err=%v", actor.ID, err)
		respondDomainError(c, err)
		return
	}
	log.Printf("[application][handler] create success application_id=%s number=%s", app.ID, app.ApplicationNumber)
	metrics.ObserveTransition("application", string(app.CurrentStatus()))

	c.JSON(http.StatusCreated, response.FromApplication(app))
}

// GetApplication returns one application visible to the caller.
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	id := c.Param("id")
	app, err := h.usecase.GetByID(c.Request.Context(), id, actorFrom(c))
	if err != nil {
		log.Printf("[application][handler] get failed application_id=%s err=%v", id, err)
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(app))
}

// ListApplications returns the caller's applications.
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	actor := actorFrom(c)
	apps, err := h.usecase.ListByApplicant(c.Request.Context(), actor)
	if err != nil {
		log.Printf("[application][handler] list failed applicant_id=%s err=%v", actor.ID, err)
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromApplications(apps))
}

// GetMissingDocuments returns the completeness gap for the category.
func (h *ApplicationHandler) GetMissingDocuments(c *gin.Context) {
	id := c.Param("id")
	missing, err := h.usecase.MissingDocuments(c.Request.Context(), id, actorFrom(c))
	if err != nil {
		log.Printf("[application][handler] missing-documents failed application_id=%s err=%v", id, err)
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMissingDocuments(id, missing))
}

// RecordConsent stores the applicant's PDPA consent.
func (h *ApplicationHandler) RecordConsent(c *gin.Context) {
	var payload request.ConsentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	h.patchApplication(c, "consent", func(ctx context.Context, id string, actor entities.Actor) (entities.Application, error) {
		return h.usecase.RecordConsent(ctx, id, actor, payload.ResolvePolicyVersion())
	})
}

// AddDocument attaches an uploaded document to the draft.
func (h *ApplicationHandler) AddDocument(c *gin.Context) {
	var payload request.DocumentUploadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	h.patchApplication(c, "add-document", func(ctx context.Context, id string, actor entities.Actor) (entities.Application, error) {
		return h.usecase.AddDocument(ctx, id, actor, payload.ResolveType(), payload.ResolveStorageRef(), payload.Checksum)
	})
}

// ReviewDocument approves or rejects one uploaded document.
func (h *ApplicationHandler) ReviewDocument(c *gin.Context) {
	documentID := c.Param("document_id")
	var payload request.DocumentReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Approve == nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	h.patchApplication(c, "review-document", func(ctx context.Context, id string, actor entities.Actor) (entities.Application, error) {
		return h.usecase.ReviewDocument(ctx, id, documentID, actor, *payload.Approve, payload.Note)
	})
}

// SubmitApplication runs the submission gate: consent, completeness, fee.
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	h.patchApplication(c, "submit", h.usecase.Submit)
}

// AttachPaymentSlip stores the applicant's transfer-slip reference.
func (h *ApplicationHandler) AttachPaymentSlip(c *gin.Context) {
	var payload request.PaymentSlipRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	h.patchApplication(c, "attach-slip", func(ctx context.Context, id string, actor entities.Actor) (entities.Application, error) {
		return h.usecase.AttachPaymentSlip(ctx, id, actor, payload.ResolveSlipRef())
	})
}

// ConfirmPayment marks the submission fee as received.
func (h *ApplicationHandler) ConfirmPayment(c *gin.Context) {
	h.patchApplication(c, "confirm-payment", h.usecase.ConfirmPayment)
}

// RejectPaymentSlip refuses the slip and asks for a new one. The
// application stays in pending_payment.
func (h *ApplicationHandler) RejectPaymentSlip(c *gin.Context) {
	var payload request.ReasonRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	h.patchApplication(c, "reject-slip", func(ctx context.Context, id string, actor entities.Actor) (entities.Application, error) {
		return h.usecase.RejectPaymentSlip(ctx, id, actor, payload.ResolveReason())
	})
}

// ApproveApplication closes the review positively.
func (h *ApplicationHandler) ApproveApplication(c *gin.Context) {
	h.patchApplication(c, "approve", h.usecase.Approve)
}

// RejectApplication closes the review negatively; a reason is mandatory.
func (h *ApplicationHandler) RejectApplication(c *gin.Context) {
	var payload request.ReasonRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	h.patchApplication(c, "reject", func(ctx context.Context, id string, actor entities.Actor) (entities.Application, error) {
		return h.usecase.Reject(ctx, id, actor, payload.ResolveReason())
	})
}

// CancelApplication lets the applicant withdraw before a terminal state.
func (h *ApplicationHandler) CancelApplication(c *gin.Context) {
	var payload request.ReasonRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		payload = request.ReasonRequest{}
	}
	h.patchApplication(c, "cancel", func(ctx context.Context, id string, actor entities.Actor) (entities.Application, error) {
		return h.usecase.Cancel(ctx, id, actor, payload.ResolveReason())
	})
}

func (h *ApplicationHandler) patchApplication(
	c *gin.Context,
	op string,
	updater func(ctx context.Context, id string, actor entities.Actor) (entities.Application, error),
) {
	id := c.Param("id")
	actor := actorFrom(c)
	log.Printf("[application][handler] %s start application_id=%s actor_id=%s", op, id, actor.ID)

	app, err := updater(c.Request.Context(), id, actor)
	if err != nil {
		log.Printf("[application][handler] %s failed application_id=%s err=%v", op, id, err)
		respondDomainError(c, err)
		return
	}
	log.Printf("[application][handler] %s success application_id=%s status=%s", op, id, app.CurrentStatus())
	metrics.ObserveTransition("application", string(app.CurrentStatus()))

	c.JSON(http.StatusOK, response.FromApplication(app))
}
