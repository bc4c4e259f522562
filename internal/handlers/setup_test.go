package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/bettyia/clinic-scheduler/internal/bootstrap"
	"github.com/bettyia/clinic-scheduler/internal/config"
	dbpkg "github.com/bettyia/clinic-scheduler/internal/db"
	"github.com/bettyia/clinic-scheduler/internal/middleware"
	"github.com/bettyia/clinic-scheduler/internal/routes"
)

const (
	testAdminUsername = "admin"
	testAdminPassword = "admin-pass"
	testAdminSecret   = "super-secret"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := dbpkg.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		JWTSecret:     "test-secret",
		AdminUsername: testAdminUsername,
		AdminPassword: testAdminPassword,
		AdminSecret:   testAdminSecret,
	}

	if err := bootstrap.SeedAdmin(gdb, cfg); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	r := gin.New()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())
	routes.RegisterRoutes(r, gdb, cfg)

	return r, gdb
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dest); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func wantStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, want, rec.Body.String())
	}
}

func createDoctor(t *testing.T, r *gin.Engine, email string) uint {
	t.Helper()

	rec := doJSON(t, r, http.MethodPost, "/doctors/", gin.H{
		"full_name":       "Dr. Ana Souza",
		"title":           "Dermatologist",
		"email":           email,
		"phone":           "555-0100",
		"whatsapp_number": "555-0100",
		"user_id":         1,
	}, nil)
	wantStatus(t, rec, http.StatusCreated)

	var doctor struct {
		ID uint `json:"id"`
	}
	decode(t, rec, &doctor)
	return doctor.ID
}

func createPatient(t *testing.T, r *gin.Engine, email string) uint {
	t.Helper()

	rec := doJSON(t, r, http.MethodPost, "/patients/", gin.H{
		"full_name": "Bruno Lima",
		"email":     email,
		"phone":     "555-0001",
	}, nil)
	wantStatus(t, rec, http.StatusCreated)

	var patient struct {
		ID uint `json:"id"`
	}
	decode(t, rec, &patient)
	return patient.ID
}
