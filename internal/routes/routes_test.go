package routes

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"

	"francofolies/internal/config"
)

type healthResp struct {
	Status string `json:"status"`
	DB     struct {
		Status string `json:"status"`
		Error  string `json:"error,omitempty"`
	} `json:"db"`
}

func testConfig() *config.Config {
	return &config.Config{
		Port:         "3000",
		QueryTimeout: time.Second,
		CORS:         config.CORSConfig{AllowedOrigins: []string{"*"}},
	}
}

func TestRootReturnsJSON(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	r := SetupRoutes(db, testConfig(), zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json, got %q", ct)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["message"] == "" || body["message"] == nil {
		t.Fatalf("expected message, got %v", body)
	}
}

func TestHealthDBOK(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectPing()

	r := SetupRoutes(db, testConfig(), zerolog.Nop())
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	var resp healthResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.DB.Status != "ok" {
		t.Fatalf("expected db ok, got %+v", resp)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestHealthDBDown(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectPing().WillReturnError(sql.ErrConnDone)

	r := SetupRoutes(db, testConfig(), zerolog.Nop())
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d (%s)", w.Code, w.Body.String())
	}
	var resp healthResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.DB.Status != "down" {
		t.Fatalf("expected db down, got %+v", resp)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestConcertsEndToEnd(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id_concert", "id_scenes", "date_concert", "concert", "nom_scene", "lieu", "capacité", "artistes", "tarifs",
	}).AddRow(
		int64(1), int64(1), time.Date(2024, 7, 10, 21, 0, 0, 0, time.UTC),
		[]byte(`{"id_concert": 1, "id_scenes": 1, "date_concert": "2024-07-10T21:00:00", "heure_fin": "23:30:00"}`),
		"Grande Scène", "La Rochelle", int64(12000),
		[]byte(`[{"id_artistes": 1, "nom_artistes": "A"}, {"id_artistes": 2, "nom_artistes": "B"}]`),
		[]byte(`[{"type_tarif": "full", "prix": 20}, {"type_tarif": "reduced", "prix": 10}]`),
	)
	mock.ExpectQuery(`FROM CONCERTS c`).WillReturnRows(rows)

	r := SetupRoutes(db, testConfig(), zerolog.Nop())
	req := httptest.NewRequest(http.MethodGet, "/api/concerts", nil)
	req.Header.Set("Origin", "http://festival.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected any origin allowed, got %q", got)
	}

	var body []struct {
		ID      int    `json:"id_concert"`
		EndTime string `json:"heure_fin"`
		Artists []struct {
			Name string `json:"nom_artistes"`
		} `json:"artistes"`
		Tariffs []struct {
			Type  string  `json:"type_tarif"`
			Price float64 `json:"prix"`
		} `json:"tarifs"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(body) != 1 || body[0].ID != 1 || body[0].EndTime != "23:30:00" {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
	names := map[string]bool{}
	for _, a := range body[0].Artists {
		names[a.Name] = true
	}
	if !names["A"] || !names["B"] {
		t.Fatalf("expected artists A and B, got %+v", body[0].Artists)
	}
	tariffs := map[string]float64{}
	for _, tf := range body[0].Tariffs {
		tariffs[tf.Type] = tf.Price
	}
	if tariffs["full"] != 20 || tariffs["reduced"] != 10 {
		t.Fatalf("expected full:20 and reduced:10, got %+v", body[0].Tariffs)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestInjectionAttemptNeverReachesDB(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	r := SetupRoutes(db, testConfig(), zerolog.Nop())
	req := httptest.NewRequest(http.MethodGet, "/api/concerts/scene/1%20OR%201=1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%s)", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected db activity: %v", err)
	}
}

func TestCORSPreflight(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	r := SetupRoutes(db, testConfig(), zerolog.Nop())
	req := httptest.NewRequest(http.MethodOptions, "/api/scenes", nil)
	req.Header.Set("Origin", "http://anywhere.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code >= 300 {
		t.Fatalf("expected 2xx preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected *, got %q", got)
	}
}

func TestUnknownRouteAndMethod(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	r := SetupRoutes(db, testConfig(), zerolog.Nop())

	tests := []struct {
		method string
		target string
		status int
		code   string
	}{
		{method: http.MethodGet, target: "/api/tickets", status: http.StatusNotFound, code: "not_found"},
		{method: http.MethodPost, target: "/api/scenes", status: http.StatusMethodNotAllowed, code: "method_not_allowed"},
	}

	for _, tc := range tests {
		req := httptest.NewRequest(tc.method, tc.target, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != tc.status {
			t.Fatalf("%s %s: expected %d, got %d", tc.method, tc.target, tc.status, w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if resp["error"] != tc.code {
			t.Fatalf("expected %q, got %v", tc.code, resp)
		}
	}
}

func TestSwaggerRedirect(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	r := SetupRoutes(db, testConfig(), zerolog.Nop())
	req := httptest.NewRequest(http.MethodGet, "/swagger", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusMovedPermanently {
		t.Fatalf("expected 301, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/swagger/index.html" {
		t.Fatalf("unexpected location %q", loc)
	}
}

func TestQueryErrorCarriesRequestID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`FROM ARTISTES`).WillReturnError(errors.New(`relation "artistes" does not exist`))

	r := SetupRoutes(db, testConfig(), zerolog.Nop())
	req := httptest.NewRequest(http.MethodGet, "/api/artists", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d (%s)", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["request_id"] != "req-42" || resp["error"] != "internal_error" {
		t.Fatalf("unexpected body %v", resp)
	}
	if strings.Contains(w.Body.String(), "does not exist") {
		t.Fatalf("driver message leaked: %s", w.Body.String())
	}
}
