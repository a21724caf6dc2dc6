package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewMux_Routes(t *testing.T) {
	mux := NewMux(newTestDB(t))

	tests := []struct {
		method     string
		path       string
		wantStatus int
		wantJSON   bool
	}{
		{method: http.MethodGet, path: "/healthz", wantStatus: http.StatusOK, wantJSON: true},
		{method: http.MethodGet, path: "/caixa/1/ultimo", wantStatus: http.StatusNotFound, wantJSON: true},
		{method: http.MethodGet, path: "/caixa/1/media?periodo=day", wantStatus: http.StatusOK, wantJSON: true},
		{method: http.MethodPost, path: "/healthz", wantStatus: http.StatusMethodNotAllowed},
		{method: http.MethodGet, path: "/caixa", wantStatus: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status=%d want=%d", rec.Code, tt.wantStatus)
			}
			isJSON := strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json")
			if isJSON != tt.wantJSON {
				t.Fatalf("Content-Type=%q, want JSON=%v", rec.Header().Get("Content-Type"), tt.wantJSON)
			}
		})
	}
}
