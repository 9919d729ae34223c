package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ArowuTest/plate-spin-backend/internal/config"
	"github.com/ArowuTest/plate-spin-backend/internal/handlers"
	"github.com/ArowuTest/plate-spin-backend/internal/middleware"
	"github.com/ArowuTest/plate-spin-backend/internal/models"
	"github.com/ArowuTest/plate-spin-backend/internal/repositories/repotest"
	"github.com/ArowuTest/plate-spin-backend/internal/services"
	"github.com/gin-gonic/gin"
)

type alwaysUp struct{}

func (alwaysUp) Ping(ctx context.Context) error { return nil }

func newRouter() (*gin.Engine, *repotest.MemoryRepository) {
	gin.SetMode(gin.TestMode)
	repo := repotest.NewMemoryRepository()
	service := services.NewParticipantService(repo, config.CampaignConfig{ShareBonusSpins: 1})
	return SetupRouter(HandlerDependencies{
		ParticipantHandler: handlers.NewParticipantHandler(service),
		HealthHandler:      handlers.NewHealthHandler(alwaysUp{}, 0),
	}), repo
}

func TestRegisterThenFetchRoundTrip(t *testing.T) {
	router, _ := newRouter()

	body := bytes.NewBufferString(`{"plate":"ABC123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/register", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("expected request ID header")
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/user/ABC123", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if string(raw["prizes"]) != "[]" {
		t.Errorf("expected prizes to be [], got %s", raw["prizes"])
	}

	var p models.Participant
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("failed to decode participant: %v", err)
	}
	if p.Plate != "ABC123" || p.SpinsAvailable != 1 {
		t.Errorf("unexpected participant %+v", p)
	}
}

func TestShareCycle(t *testing.T) {
	router, repo := newRouter()
	repo.Seed(&models.Participant{Plate: "ZERO01", SpinsAvailable: 0, Prizes: []models.Prize{}})

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/share", bytes.NewBufferString(`{"plate":"ZERO01"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	if code := post(); code != http.StatusOK {
		t.Fatalf("expected 200 on first share, got %d", code)
	}
	if code := post(); code != http.StatusBadRequest {
		t.Fatalf("expected 400 on second share, got %d", code)
	}
	if got := repo.Get("ZERO01").SpinsAvailable; got != 1 {
		t.Errorf("expected 1 spin, got %d", got)
	}
}

func TestHealthRoute(t *testing.T) {
	router, _ := newRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestUnknownRoute(t *testing.T) {
	router, _ := newRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
