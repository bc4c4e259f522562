package handlers_test

import (
	"net/http"
	"testing"
)

func TestAdminGate(t *testing.T) {
	r, _ := newTestServer(t)

	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
	}{
		{"missing header", nil, http.StatusForbidden},
		{"wrong secret", map[string]string{"admin-secret": "nope"}, http.StatusForbidden},
		{"correct secret", map[string]string{"admin-secret": testAdminSecret}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, r, http.MethodGet, "/admin/", nil, tt.headers)
			wantStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestAdminGateMessage(t *testing.T) {
	r, _ := newTestServer(t)

	rec := doJSON(t, r, http.MethodGet, "/admin/", nil, map[string]string{
		"admin-secret": testAdminSecret,
	})
	wantStatus(t, rec, http.StatusOK)

	var body struct {
		Message string `json:"message"`
	}
	decode(t, rec, &body)
	if body.Message != "Welcome, admin!" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestAdminUserSeeded(t *testing.T) {
	_, gdb := newTestServer(t)

	var count int64
	gdb.Table("users").Where("username = ?", testAdminUsername).Count(&count)
	if count != 1 {
		t.Errorf("admin rows = %d, want 1", count)
	}
}
