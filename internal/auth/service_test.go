package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSessionRoundTrip(t *testing.T) {
	svc := NewService("test-secret")

	session, err := svc.CreateSession()
	if err != nil {
		t.Fatalf("CreateSession() = %v", err)
	}
	if session.Token == "" || session.SessionID == "" {
		t.Fatalf("empty session: %+v", session)
	}
	if !strings.HasPrefix(session.SessionID, "sess_") {
		t.Errorf("SessionID = %q, want sess_ prefix", session.SessionID)
	}

	got, err := svc.ValidateToken(session.Token)
	if err != nil {
		t.Fatalf("ValidateToken() = %v", err)
	}
	if got != session.SessionID {
		t.Errorf("ValidateToken() = %q, want %q", got, session.SessionID)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := NewService("test-secret")

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := svc.ValidateToken(token); err == nil {
			t.Errorf("ValidateToken(%q) succeeded", token)
		}
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	session, err := NewService("secret-a").CreateSession()
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewService("secret-b").ValidateToken(session.Token); err == nil {
		t.Error("token signed with another secret validated")
	}
}

func TestControlMiddleware(t *testing.T) {
	svc := NewService("test-secret")
	session, err := svc.CreateSession()
	if err != nil {
		t.Fatal(err)
	}

	var gotSessionID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSessionID = SessionIDFromContext(r.Context())
	})
	handler := svc.ControlMiddleware(next)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid", "Bearer " + session.Token, http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"malformed", "Token abc", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/base/position", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK && gotSessionID != session.SessionID {
				t.Errorf("session in context = %q, want %q", gotSessionID, session.SessionID)
			}
		})
	}
}
