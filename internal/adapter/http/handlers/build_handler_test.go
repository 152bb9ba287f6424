package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"woodshop_builds/internal/adapter/http/handlers/mocks"
	"woodshop_builds/internal/domain/entities"
	"woodshop_builds/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func draftBuild() entities.Build {
	now := time.Now().UTC()
	b := entities.Build{
		ID:        "b-1",
		Rev:       1,
		CreatedAt: now,
		UpdatedAt: now,
		Status:    entities.BuildStatusDraft,
		Customer:  entities.Customer{Name: "Dana Reyes", Phone: "5551234567", Email: "dana@example.com"},
		Project: entities.Project{
			Type: "dining table",
			Dims: entities.Dimensions{LengthIn: 72, WidthIn: 36, HeightIn: 30},
		},
	}
	b.Versions = []entities.Version{{
		VersionID: "v-1",
		CreatedAt: now,
		Renders: []entities.RenderJob{
			{RenderID: "r-1", View: entities.RenderViewIso, Status: entities.RenderStatusQueued},
		},
	}}
	return b
}

func TestBuildHandler_CreateBuild(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuildUseCase(ctrl)
		h := NewBuildHandler(uc, mocks.NewMockIRenderSchedulerUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/builds", h.CreateBuild)

		req := httptest.NewRequest(http.MethodPost, "/v1/builds", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuildUseCase(ctrl)
		h := NewBuildHandler(uc, mocks.NewMockIRenderSchedulerUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/builds", h.CreateBuild)

		body := `{"customer":{"name":"Dana"},"type":"table","dims":{"length_in":72,"width_in":36,"height_in":30}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/builds", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuildUseCase(ctrl)
		h := NewBuildHandler(uc, mocks.NewMockIRenderSchedulerUseCase(ctrl))

		uc.EXPECT().CreateDraft(gomock.Any(), gomock.Any()).Return(entities.Build{}, usecase.ErrInvalidDimensions)

		r := gin.New()
		r.POST("/v1/builds", h.CreateBuild)

		body := `{"customer":{"name":"Dana Reyes","phone":"5551234567","email":"dana@example.com"},"type":"table","dims":{"length_in":72,"width_in":36,"height_in":30}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/builds", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns 201 with build payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuildUseCase(ctrl)
		h := NewBuildHandler(uc, mocks.NewMockIRenderSchedulerUseCase(ctrl))

		uc.EXPECT().CreateDraft(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.CreateDraftInput) (entities.Build, error) {
				if in.Customer.Name != "Dana Reyes" || in.Type != "dining table" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return draftBuild(), nil
			},
		)

		r := gin.New()
		r.POST("/v1/builds", h.CreateBuild)

		body := `{"customer":{"name":"Dana Reyes","phone":"5551234567","email":"dana@example.com"},"type":"dining table","dims":{"length_in":72,"width_in":36,"height_in":30},"notes":"breadboard ends"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/builds", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["build_id"] != "b-1" || resp["status"] != "draft" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestBuildHandler_GetBuild(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuildUseCase(ctrl)
		h := NewBuildHandler(uc, mocks.NewMockIRenderSchedulerUseCase(ctrl))

		uc.EXPECT().GetByID(gomock.Any(), "b-404").Return(entities.Build{}, usecase.ErrBuildNotFound)

		r := gin.New()
		r.GET("/v1/builds/:id", h.GetBuild)

		req := httptest.NewRequest(http.MethodGet, "/v1/builds/b-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuildUseCase(ctrl)
		h := NewBuildHandler(uc, mocks.NewMockIRenderSchedulerUseCase(ctrl))

		uc.EXPECT().GetByID(gomock.Any(), "b-1").Return(draftBuild(), nil)

		r := gin.New()
		r.GET("/v1/builds/:id", h.GetBuild)

		req := httptest.NewRequest(http.MethodGet, "/v1/builds/b-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBuildHandler_LookupBuild(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing parameters map to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuildUseCase(ctrl)
		h := NewBuildHandler(uc, mocks.NewMockIRenderSchedulerUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/builds/lookup", h.LookupBuild)

		req := httptest.NewRequest(http.MethodGet, "/v1/builds/lookup?phone=5551234567", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("code path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuildUseCase(ctrl)
		h := NewBuildHandler(uc, mocks.NewMockIRenderSchedulerUseCase(ctrl))

		uc.EXPECT().FindByPhoneAndCode(gomock.Any(), "5551234567", "123456").Return(draftBuild(), nil)

		r := gin.New()
		r.GET("/v1/builds/lookup", h.LookupBuild)

		req := httptest.NewRequest(http.MethodGet, "/v1/builds/lookup?phone=5551234567&code=123456", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("name recovery path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuildUseCase(ctrl)
		h := NewBuildHandler(uc, mocks.NewMockIRenderSchedulerUseCase(ctrl))

		uc.EXPECT().FindByNameAndPhone(gomock.Any(), "reyes", "5551234567").Return(draftBuild(), nil)

		r := gin.New()
		r.GET("/v1/builds/lookup", h.LookupBuild)

		req := httptest.NewRequest(http.MethodGet, "/v1/builds/lookup?name=reyes&phone=5551234567", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBuildHandler_Mutations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("submit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuildUseCase(ctrl)
		h := NewBuildHandler(uc, mocks.NewMockIRenderSchedulerUseCase(ctrl))

		submitted := draftBuild()
		submitted.Status = entities.BuildStatusSubmitted
		submitted.AccessCode = "123456"
		uc.EXPECT().MarkSubmitted(gomock.Any(), "b-1").Return(submitted, nil)

		r := gin.New()
		r.POST("/v1/builds/:id/submit", h.SubmitBuild)

		req := httptest.NewRequest(http.MethodPost, "/v1/builds/b-1/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["access_code"] != "123456" {
			t.Fatalf("expected access code in response, got %v", resp)
		}
	})

	t.Run("add note blank payload maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuildUseCase(ctrl)
		h := NewBuildHandler(uc, mocks.NewMockIRenderSchedulerUseCase(ctrl))

		uc.EXPECT().AddCustomerNote(gomock.Any(), "b-1", "", "").Return(entities.Build{}, usecase.ErrEmptyChangeRequest)

		r := gin.New()
		r.POST("/v1/builds/:id/notes", h.AddNote)

		req := httptest.NewRequest(http.MethodPost, "/v1/builds/b-1/notes", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("add note success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuildUseCase(ctrl)
		h := NewBuildHandler(uc, mocks.NewMockIRenderSchedulerUseCase(ctrl))

		uc.EXPECT().AddCustomerNote(gomock.Any(), "b-1", "taller legs", "add a drawer").Return(draftBuild(), nil)

		r := gin.New()
		r.POST("/v1/builds/:id/notes", h.AddNote)

		body := `{"change_request":"taller legs","note_text":"add a drawer"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/builds/b-1/notes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("remove note with no body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuildUseCase(ctrl)
		h := NewBuildHandler(uc, mocks.NewMockIRenderSchedulerUseCase(ctrl))

		uc.EXPECT().RemoveCustomerNote(gomock.Any(), "b-1", "n-1", "").Return(draftBuild(), nil)

		r := gin.New()
		r.DELETE("/v1/builds/:id/notes/:note_id", h.RemoveNote)

		req := httptest.NewRequest(http.MethodDelete, "/v1/builds/b-1/notes/n-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("update status rejects unknown label", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuildUseCase(ctrl)
		h := NewBuildHandler(uc, mocks.NewMockIRenderSchedulerUseCase(ctrl))

		uc.EXPECT().UpdateStatus(gomock.Any(), "b-1", entities.BuildStatus("shipped")).Return(entities.Build{}, usecase.ErrInvalidStatus)

		r := gin.New()
		r.PATCH("/v1/builds/:id/status", h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/builds/b-1/status", bytes.NewBufferString(`{"status":"shipped"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("conflict retry exhaustion maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuildUseCase(ctrl)
		h := NewBuildHandler(uc, mocks.NewMockIRenderSchedulerUseCase(ctrl))

		uc.EXPECT().UpdateStatus(gomock.Any(), "b-1", entities.BuildStatusApproved).Return(entities.Build{}, usecase.ErrTooManyConflicts)

		r := gin.New()
		r.PATCH("/v1/builds/:id/status", h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/builds/b-1/status", bytes.NewBufferString(`{"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuildUseCase(ctrl)
		h := NewBuildHandler(uc, mocks.NewMockIRenderSchedulerUseCase(ctrl))

		uc.EXPECT().MarkSubmitted(gomock.Any(), "b-1").Return(entities.Build{}, errors.New("db down"))

		r := gin.New()
		r.POST("/v1/builds/:id/submit", h.SubmitBuild)

		req := httptest.NewRequest(http.MethodPost, "/v1/builds/b-1/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestBuildHandler_TriggerRender(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("runs one tick", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		scheduler := mocks.NewMockIRenderSchedulerUseCase(ctrl)
		h := NewBuildHandler(mocks.NewMockIBuildUseCase(ctrl), scheduler)

		scheduler.EXPECT().Tick(gomock.Any(), "b-1").Return(usecase.TickOutcome{
			BuildID: "b-1", VersionID: "v-1", RenderID: "r-1", View: entities.RenderViewIso, Started: true, Completed: true,
		}, nil)

		r := gin.New()
		r.POST("/v1/builds/:id/render", h.TriggerRender)

		req := httptest.NewRequest(http.MethodPost, "/v1/builds/b-1/render", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown build maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		scheduler := mocks.NewMockIRenderSchedulerUseCase(ctrl)
		h := NewBuildHandler(mocks.NewMockIBuildUseCase(ctrl), scheduler)

		scheduler.EXPECT().Tick(gomock.Any(), "b-404").Return(usecase.TickOutcome{}, usecase.ErrBuildNotFound)

		r := gin.New()
		r.POST("/v1/builds/:id/render", h.TriggerRender)

		req := httptest.NewRequest(http.MethodPost, "/v1/builds/b-404/render", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
