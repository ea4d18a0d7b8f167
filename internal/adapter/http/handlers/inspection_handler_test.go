package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/adapter/http/handlers/mocks"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/lifecycle"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/scheduling"
)

func scheduledInspectionFixture() entities.Inspection {
	return entities.Inspection{
		ID:            "insp-1",
		ApplicationID: "app-1",
		InspectorID:   "inspector-1",
		WindowStart:   time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC),
		WindowEnd:     time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC),
		Status:        entities.InspectionStatusScheduled,
		CreatedAt:     handlerNow,
		UpdatedAt:     handlerNow,
	}
}

func TestInspectionHandler_ScheduleInspection(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIInspectionUseCase) *gin.Engine {
		h := NewInspectionHandler(uc)
		r := gin.New()
		r.POST("/v1/inspections", h.ScheduleInspection)
		return r
	}

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		r := newRouter(uc)

		req := authedRequest(http.MethodPost, "/v1/inspections", `{"application_id":"app-1"}`, "officer-1", "officer")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("overlapping window maps to 409 naming the blocker", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Schedule(gomock.Any(), gomock.Any(), "app-1", "inspector-1", gomock.Any(), gomock.Any()).
			Return(entities.Inspection{}, lifecycle.NewConflict("inspector inspector-1 already booked", "bk-existing"))

		payload := `{"application_id":"app-1","inspector_id":"inspector-1","window_start":"2025-06-10T10:00:00Z","window_end":"2025-06-10T12:00:00Z"}`
		req := authedRequest(http.MethodPost, "/v1/inspections", payload, "officer-1", "officer")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body struct {
			Details struct {
				Conflicts []string `json:"conflicts"`
			} `json:"details"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Details.Conflicts) != 1 || body.Details.Conflicts[0] != "bk-existing" {
			t.Fatalf("unexpected conflict details: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		r := newRouter(uc)

		start := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
		end := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
		uc.EXPECT().Schedule(gomock.Any(), entities.Actor{ID: "officer-1", Role: entities.RoleOfficer}, "app-1", "inspector-1", start, end).
			Return(scheduledInspectionFixture(), nil)

		payload := `{"application_id":"app-1","inspector_id":"inspector-1","window_start":"2025-06-10T10:00:00Z","window_end":"2025-06-10T12:00:00Z"}`
		req := authedRequest(http.MethodPost, "/v1/inspections", payload, "officer-1", "officer")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "insp-1" || body["status"] != "scheduled" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInspectionHandler_RescheduleInspection(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("reschedule budget exhausted maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := gin.New()
		r.PATCH("/v1/inspections/:id/reschedule", h.RescheduleInspection)

		uc.EXPECT().Reschedule(gomock.Any(), "insp-1", gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Inspection{}, lifecycle.NewLimitReached("inspection insp-1 already rescheduled 1 time"))

		payload := `{"window_start":"2025-06-11T10:00:00Z","window_end":"2025-06-11T12:00:00Z"}`
		req := authedRequest(http.MethodPatch, "/v1/inspections/insp-1/reschedule", payload, "farmer-1", "applicant")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestInspectionHandler_CompleteInspection(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIInspectionUseCase) *gin.Engine {
		h := NewInspectionHandler(uc)
		r := gin.New()
		r.PATCH("/v1/inspections/:id/complete", h.CompleteInspection)
		return r
	}

	t.Run("compliance score required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		r := newRouter(uc)

		req := authedRequest(http.MethodPatch, "/v1/inspections/insp-1/complete", `{}`, "inspector-1", "inspector")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("literal zero score binds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		r := newRouter(uc)

		booking := scheduledInspectionFixture()
		booking.Status = entities.InspectionStatusCompleted
		score := 0.0
		booking.ComplianceScore = &score
		uc.EXPECT().Complete(gomock.Any(), "insp-1", entities.Actor{ID: "inspector-1", Role: entities.RoleInspector}, 0.0).
			Return(booking, nil)

		req := authedRequest(http.MethodPatch, "/v1/inspections/insp-1/complete", `{"compliance_score":0}`, "inspector-1", "inspector")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "completed" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInspectionHandler_GetAvailability(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIInspectionUseCase) *gin.Engine {
		h := NewInspectionHandler(uc)
		r := gin.New()
		r.GET("/v1/inspections/availability/:inspector_id", h.GetAvailability)
		return r
	}

	t.Run("day query param required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		r := newRouter(uc)

		req := authedRequest(http.MethodGet, "/v1/inspections/availability/inspector-1", "", "officer-1", "officer")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed duration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		r := newRouter(uc)

		req := authedRequest(http.MethodGet, "/v1/inspections/availability/inspector-1?day=2025-06-10&duration=2hours", "", "officer-1", "officer")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("defaults to two-hour slots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		r := newRouter(uc)

		day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
		slots := []scheduling.Interval{
			{Start: day.Add(13 * time.Hour), End: day.Add(15 * time.Hour)},
			{Start: day.Add(15 * time.Hour), End: day.Add(17 * time.Hour)},
		}
		uc.EXPECT().Availability(gomock.Any(), "inspector-1", day, 2*time.Hour).Return(slots, nil)

		req := authedRequest(http.MethodGet, "/v1/inspections/availability/inspector-1?day=2025-06-10", "", "officer-1", "officer")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			InspectorID string `json:"inspector_id"`
			Day         string `json:"day"`
			Slots       []struct {
				Start time.Time `json:"start"`
				End   time.Time `json:"end"`
			} `json:"slots"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.InspectorID != "inspector-1" || body.Day != "2025-06-10" || len(body.Slots) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
