package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/adapter/http/handlers/mocks"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/lifecycle"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/usecase"
)

var handlerNow = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

// authedRequest builds a JSON request carrying the gateway identity headers.
func authedRequest(method, target, body, userID, role string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-User-ID", userID)
	req.Header.Set("X-User-Role", role)
	return req
}

func draftApplicationFixture() entities.Application {
	return entities.Application{
		ID:                "app-1",
		ApplicationNumber: "APP-2025-000007",
		ApplicantID:       "farmer-1",
		Category:          entities.CategoryIndividual,
		StatusHistory: []entities.StatusHistoryEntry{
			{Status: entities.ApplicationStatusDraft, Timestamp: handlerNow, Actor: "farmer-1"},
		},
		CreatedAt: handlerNow,
		UpdatedAt: handlerNow,
	}
}

func TestApplicationHandler_CreateApplication(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		h := NewApplicationHandler(uc)

		r := gin.New()
		r.POST("/v1/applications", h.CreateApplication)

		req := authedRequest(http.MethodPost, "/v1/applications", "{", "farmer-1", "applicant")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		h := NewApplicationHandler(uc)

		r := gin.New()
		r.POST("/v1/applications", h.CreateApplication)

		uc.EXPECT().Create(gomock.Any(), entities.Actor{ID: "farmer-1", Role: entities.RoleApplicant}, entities.ApplicantCategory("cooperative")).
			Return(entities.Application{}, lifecycle.NewValidation("unknown applicant category cooperative"))

		req := authedRequest(http.MethodPost, "/v1/applications", `{"category":"cooperative"}`, "farmer-1", "applicant")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		h := NewApplicationHandler(uc)

		r := gin.New()
		r.POST("/v1/applications", h.CreateApplication)

		uc.EXPECT().Create(gomock.Any(), entities.Actor{ID: "farmer-1", Role: entities.RoleApplicant}, entities.CategoryIndividual).
			Return(draftApplicationFixture(), nil)

		req := authedRequest(http.MethodPost, "/v1/applications", `{"category":"individual"}`, "farmer-1", "applicant")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["application_number"] != "APP-2025-000007" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body["status"] != "draft" {
			t.Fatalf("expected draft status, got %s", w.Body.String())
		}
	})
}

func TestApplicationHandler_SubmitApplication(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIApplicationUseCase) *gin.Engine {
		h := NewApplicationHandler(uc)
		r := gin.New()
		r.PATCH("/v1/applications/:id/submit", h.SubmitApplication)
		return r
	}

	t.Run("missing documents map to 422 with the gap listed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		r := newRouter(uc)

		rej := &lifecycle.Rejection{
			Kind:          lifecycle.RejectionPreconditionFailed,
			Reason:        "required documents missing",
			CurrentStatus: "draft",
			Missing:       []string{"site_plan", "production_plan"},
		}
		uc.EXPECT().Submit(gomock.Any(), "app-1", gomock.Any()).Return(entities.Application{}, rej)

		req := authedRequest(http.MethodPatch, "/v1/applications/app-1/submit", "", "farmer-1", "applicant")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body struct {
			Details struct {
				Kind    string   `json:"kind"`
				Missing []string `json:"missing"`
			} `json:"details"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Details.Kind != "precondition_failed" || len(body.Details.Missing) != 2 {
			t.Fatalf("unexpected rejection details: %s", w.Body.String())
		}
	})

	t.Run("unknown application", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Submit(gomock.Any(), "nope", gomock.Any()).
			Return(entities.Application{}, lifecycle.NewNotFound("application nope not found"))

		req := authedRequest(http.MethodPatch, "/v1/applications/nope/submit", "", "farmer-1", "applicant")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("payment provider down maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Submit(gomock.Any(), "app-1", gomock.Any()).
			Return(entities.Application{}, usecase.ErrPaymentProviderNotConfigured)

		req := authedRequest(http.MethodPatch, "/v1/applications/app-1/submit", "", "farmer-1", "applicant")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("fee-due submission returns the payment reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		r := newRouter(uc)

		app := draftApplicationFixture()
		app.SubmissionCount = 3
		app.StatusHistory = append(app.StatusHistory, entities.StatusHistoryEntry{
			Status: entities.ApplicationStatusPendingPayment, Timestamp: handlerNow, Actor: "farmer-1",
		})
		app.Payment = &entities.Payment{
			Amount:          5000,
			Currency:        "THB",
			Status:          entities.PaymentStatusPending,
			ReferenceNumber: "REF-42",
		}
		uc.EXPECT().Submit(gomock.Any(), "app-1", gomock.Any()).Return(app, nil)

		req := authedRequest(http.MethodPatch, "/v1/applications/app-1/submit", "", "farmer-1", "applicant")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Status  string `json:"status"`
			Payment struct {
				Amount          float64 `json:"amount"`
				ReferenceNumber string  `json:"reference_number"`
			} `json:"payment"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Status != "pending_payment" || body.Payment.ReferenceNumber != "REF-42" || body.Payment.Amount != 5000 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestApplicationHandler_ReviewDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIApplicationUseCase) *gin.Engine {
		h := NewApplicationHandler(uc)
		r := gin.New()
		r.PATCH("/v1/applications/:id/documents/:document_id/review", h.ReviewDocument)
		return r
	}

	t.Run("approve field required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		r := newRouter(uc)

		req := authedRequest(http.MethodPatch, "/v1/applications/app-1/documents/doc-1/review", `{"note":"x"}`, "officer-1", "officer")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("explicit false binds as a rejection review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().ReviewDocument(gomock.Any(), "app-1", "doc-1", entities.Actor{ID: "officer-1", Role: entities.RoleOfficer}, false, "blurry scan").
			Return(draftApplicationFixture(), nil)

		req := authedRequest(http.MethodPatch, "/v1/applications/app-1/documents/doc-1/review", `{"approve":false,"note":"blurry scan"}`, "officer-1", "officer")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestApplicationHandler_CancelApplication(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing body still cancels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		h := NewApplicationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/applications/:id/cancel", h.CancelApplication)

		app := draftApplicationFixture()
		app.StatusHistory = append(app.StatusHistory, entities.StatusHistoryEntry{
			Status: entities.ApplicationStatusCancelled, Timestamp: handlerNow, Actor: "farmer-1",
		})
		uc.EXPECT().Cancel(gomock.Any(), "app-1", gomock.Any(), "").Return(app, nil)

		req := authedRequest(http.MethodPatch, "/v1/applications/app-1/cancel", "", "farmer-1", "applicant")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "cancelled" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestRejectionToAppError(t *testing.T) {
	cases := []struct {
		kind lifecycle.RejectionKind
		code int
	}{
		{lifecycle.RejectionValidation, http.StatusBadRequest},
		{lifecycle.RejectionNotFound, http.StatusNotFound},
		{lifecycle.RejectionForbidden, http.StatusForbidden},
		{lifecycle.RejectionInvalidTransition, http.StatusConflict},
		{lifecycle.RejectionPreconditionFailed, http.StatusUnprocessableEntity},
		{lifecycle.RejectionConflict, http.StatusConflict},
		{lifecycle.RejectionLimitReached, http.StatusUnprocessableEntity},
		{lifecycle.RejectionKind("unknown"), http.StatusUnprocessableEntity},
	}

	for _, tc := range cases {
		got := rejectionToAppError(&lifecycle.Rejection{Kind: tc.kind, Reason: "r"})
		if got.HTTPStatus != tc.code {
			t.Fatalf("for kind %s expected %d got %d", tc.kind, tc.code, got.HTTPStatus)
		}
	}
}

func TestMapInfraError(t *testing.T) {
	if got := mapInfraError(usecase.ErrPaymentProviderNotConfigured); got.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", got.HTTPStatus)
	}
	if got := mapInfraError(errors.New("other")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", got.HTTPStatus)
	}
}
