package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	fbauth "firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
)

type fakeVerifier map[string]*fbauth.Token

func (f fakeVerifier) VerifyIDToken(_ context.Context, tok string) (*fbauth.Token, error) {
	if t, ok := f[tok]; ok {
		return t, nil
	}
	return nil, errors.New("bad token")
}

func serve(m *Middleware, h http.Handler, authz string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	m.Load(h).ServeHTTP(rec, req)
	return rec
}

func TestLoad_ValidToken(t *testing.T) {
	v := fakeVerifier{"good": {UID: "u1", Claims: map[string]interface{}{
		"email": "sara@example.com", "email_verified": true, "name": "Sara", "picture": "https://p/x.png",
	}}}
	m := New(v, zap.NewNop())

	var got *User
	rec := serve(m, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = CurrentUser(r)
	}), "Bearer good")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	want := User{UID: "u1", Email: "sara@example.com", EmailVerified: true, Name: "Sara", Picture: "https://p/x.png"}
	if got == nil || *got != want {
		t.Errorf("user = %+v, want %+v", got, want)
	}
}

func TestLoad_AnonymousCases(t *testing.T) {
	m := New(fakeVerifier{}, zap.NewNop())
	for _, h := range []string{"", "Bearer nope", "Basic abc", "Bearer"} {
		found := true
		serve(m, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, found = CurrentUser(r)
		}), h)
		if found {
			t.Errorf("Authorization %q should leave request anonymous", h)
		}
	}
}

func TestRequire(t *testing.T) {
	m := New(fakeVerifier{"good": {UID: "u1"}}, zap.NewNop())
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	h := m.Require(ok)

	if rec := serve(m, h, ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", rec.Code)
	}
	if rec := serve(m, h, "Bearer good"); rec.Code != http.StatusNoContent {
		t.Errorf("good token: status = %d, want 204", rec.Code)
	}
}

func TestNilVerifier(t *testing.T) {
	m := New(nil, zap.NewNop())
	rec := serve(m, m.Require(http.NotFoundHandler()), "Bearer anything")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestWithUser_Preloaded(t *testing.T) {
	m := New(nil, zap.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithUser(req.Context(), &User{UID: "test"}))
	rec := httptest.NewRecorder()
	m.Load(m.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, _ := CurrentUser(r)
		_, _ = w.Write([]byte(u.UID))
	}))).ServeHTTP(rec, req)
	if rec.Body.String() != "test" {
		t.Errorf("body = %q", rec.Body.String())
	}
}
