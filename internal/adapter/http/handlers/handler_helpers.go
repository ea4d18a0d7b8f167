package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/lifecycle"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/metrics"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/usecase"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/pkg"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// actorFrom reads the authenticated identity injected by the gateway.
// The service trusts these headers; authentication happens upstream.
func actorFrom(c *gin.Context) entities.Actor {
	return entities.Actor{
		ID:   strings.TrimSpace(c.GetHeader("X-User-ID")),
		Role: entities.Role(strings.ToLower(strings.TrimSpace(c.GetHeader("X-User-Role")))),
	}
}

// rejectionDetails is the structured payload attached to refused
// operations so clients can decide whether a retry can succeed.
type rejectionDetails struct {
	Kind          string   `json:"kind"`
	CurrentStatus string   `json:"current_status,omitempty"`
	ValidNext     []string `json:"valid_next,omitempty"`
	Missing       []string `json:"missing,omitempty"`
	Conflicts     []string `json:"conflicts,omitempty"`
}

func respondDomainError(c *gin.Context, err error) {
	if rej, ok := lifecycle.AsRejection(err); ok {
		metrics.ObserveRejection(string(rej.Kind))
		appErr := rejectionToAppError(rej)
		c.JSON(appErr.HTTPStatus, appErr.WithDetails(rejectionDetails{
			Kind:          string(rej.Kind),
			CurrentStatus: rej.CurrentStatus,
			ValidNext:     rej.ValidNext,
			Missing:       rej.Missing,
			Conflicts:     rej.Conflicts,
		}))
		return
	}

	appErr := mapInfraError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func rejectionToAppError(rej *lifecycle.Rejection) *pkg.AppError {
	switch rej.Kind {
	case lifecycle.RejectionValidation:
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", rej.Reason, http.StatusBadRequest)
	case lifecycle.RejectionNotFound:
		return pkg.NewDomainErrorSimple("NOT_FOUND", rej.Reason, http.StatusNotFound)
	case lifecycle.RejectionForbidden:
		return pkg.NewDomainErrorSimple("FORBIDDEN", rej.Reason, http.StatusForbidden)
	case lifecycle.RejectionInvalidTransition:
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", rej.Reason, http.StatusConflict)
	case lifecycle.RejectionPreconditionFailed:
		return pkg.NewDomainErrorSimple("PRECONDITION_FAILED", rej.Reason, http.StatusUnprocessableEntity)
	case lifecycle.RejectionConflict:
		return pkg.NewDomainErrorSimple("CONFLICT", rej.Reason, http.StatusConflict)
	case lifecycle.RejectionLimitReached:
		return pkg.NewDomainErrorSimple("LIMIT_REACHED", rej.Reason, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainErrorSimple("REJECTED", rej.Reason, http.StatusUnprocessableEntity)
	}
}

func mapInfraError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPaymentProviderNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
