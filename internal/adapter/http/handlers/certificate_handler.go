package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	request "github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/adapter/http/dto/request"
	response "github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/adapter/http/dto/response"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/metrics"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/usecase"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/pkg"
)

const defaultExpiryThresholdDays = 60

// CertificateHandler handles HTTP requests for issued certificates.

type CertificateHandler struct {
	usecase usecase.ICertificateUseCase
}

func NewCertificateHandler(uc usecase.ICertificateUseCase) *CertificateHandler {
	return &CertificateHandler{usecase: uc}
}

// IssueCertificate issues a certificate for an approved application.
func (h *CertificateHandler) IssueCertificate(c *gin.Context) {
	actor := actorFrom(c)
	var payload request.IssueCertificateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	log.Printf("[certificate][handler] issue start application_id=%s actor_id=%s", payload.ResolveApplicationID(), actor.ID)

	cert, err := h.usecase.Issue(c.Request.Context(), payload.ResolveApplicationID(), actor)
	if err != nil {
		log.Printf("[certificate][handler] issue failed application_id=%s err=%v", payload.ResolveApplicationID(), err)
		respondDomainError(c, err)
		return
	}
	log.Printf("[certificate][handler] issue success certificate_id=%s number=%s", cert.ID, cert.CertificateNumber)
	metrics.ObserveTransition("certificate", string(cert.Status))

	c.JSON(http.StatusCreated, response.FromCertificate(cert))
}

// GetCertificate returns one certificate, with expiry refreshed on read.
func (h *CertificateHandler) GetCertificate(c *gin.Context) {
	id := c.Param("id")
	cert, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[certificate][handler] get failed certificate_id=%s err=%v", id, err)
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCertificate(cert))
}

// VerifyCertificate is the public validity check by certificate number.
func (h *CertificateHandler) VerifyCertificate(c *gin.Context) {
	number := c.Param("number")
	verification, err := h.usecase.VerifyByNumber(c.Request.Context(), number)
	if err != nil {
		log.Printf("[certificate][handler] verify failed number=%s err=%v", number, err)
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromVerification(verification))
}

// SuspendCertificate suspends an active certificate; a reason is mandatory.
func (h *CertificateHandler) SuspendCertificate(c *gin.Context) {
	var payload request.ReasonRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	h.patchCertificate(c, "suspend", func(ctx context.Context, id string, actor entities.Actor) (entities.Certificate, error) {
		return h.usecase.Suspend(ctx, id, actor, payload.ResolveReason())
	})
}

// ReinstateCertificate lifts an active suspension.
func (h *CertificateHandler) ReinstateCertificate(c *gin.Context) {
	h.patchCertificate(c, "reinstate", h.usecase.Reinstate)
}

// RevokeCertificate permanently revokes; the appeal window starts now.
func (h *CertificateHandler) RevokeCertificate(c *gin.Context) {
	var payload request.ReasonRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	h.patchCertificate(c, "revoke", func(ctx context.Context, id string, actor entities.Actor) (entities.Certificate, error) {
		return h.usecase.Revoke(ctx, id, actor, payload.ResolveReason())
	})
}

// RenewCertificate issues the successor and marks this one renewed.
func (h *CertificateHandler) RenewCertificate(c *gin.Context) {
	id := c.Param("id")
	actor := actorFrom(c)
	log.Printf("[certificate][handler] renew start certificate_id=%s actor_id=%s", id, actor.ID)

	successor, err := h.usecase.Renew(c.Request.Context(), id, actor)
	if err != nil {
		log.Printf("[certificate][handler] renew failed certificate_id=%s err=%v", id, err)
		respondDomainError(c, err)
		return
	}
	log.Printf("[certificate][handler] renew success certificate_id=%s successor_id=%s", id, successor.ID)
	metrics.ObserveTransition("certificate", string(successor.Status))

	c.JSON(http.StatusCreated, response.FromCertificate(successor))
}

// ListExpiringCertificates lists active certificates near expiry.
// Query param: threshold_days (default 60).
func (h *CertificateHandler) ListExpiringCertificates(c *gin.Context) {
	thresholdDays := defaultExpiryThresholdDays
	if raw := c.Query("threshold_days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Query param threshold_days must be a positive integer", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		thresholdDays = parsed
	}

	certs, err := h.usecase.ListExpiring(c.Request.Context(), thresholdDays)
	if err != nil {
		log.Printf("[certificate][handler] list-expiring failed err=%v", err)
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCertificates(certs))
}

func (h *CertificateHandler) patchCertificate(
	c *gin.Context,
	op string,
	updater func(ctx context.Context, id string, actor entities.Actor) (entities.Certificate, error),
) {
	id := c.Param("id")
	actor := actorFrom(c)
	log.Printf("[certificate][handler] %s start certificate_id=%s actor_id=%s", op, id, actor.ID)

	cert, err := updater(c.Request.Context(), id, actor)
	if err != nil {
		log.Printf("[certificate][handler] %s failed certificate_id=%s err=%v", op, id, err)
		respondDomainError(c, err)
		return
	}
	log.Printf("[certificate][handler] %s success certificate_id=%s status=%s", op, id, cert.Status)
	metrics.ObserveTransition("certificate", string(cert.Status))

	c.JSON(http.StatusOK, response.FromCertificate(cert))
}
