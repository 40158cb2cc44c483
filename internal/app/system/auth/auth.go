// Package auth authenticates API callers with Firebase ID tokens.
//
// Clients sign in with the Firebase JS SDK and send the resulting ID token as
// "Authorization: Bearer <token>". Load verifies it and puts the caller in the
// request context; Require rejects requests that arrive without one.
package auth

import (
	"context"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
)

// TokenVerifier checks a Firebase ID token. *auth.Client satisfies it.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// User is the verified caller.
type User struct {
	UID           string
	Email         string
	EmailVerified bool
	Name          string
	Picture       string
}

type ctxKey struct{}

// CurrentUser returns the verified caller, if any.
func CurrentUser(r *http.Request) (*User, bool) {
	return FromContext(r.Context())
}

func FromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(ctxKey{}).(*User)
	return u, ok && u != nil
}

// WithUser returns ctx carrying u.
func WithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// Middleware verifies bearer tokens. A nil verifier means sign-in is not
// configured and every request is anonymous.
type Middleware struct {
	verifier TokenVerifier
	log      *zap.Logger
}

func New(v TokenVerifier, log *zap.Logger) *Middleware {
	return &Middleware{verifier: v, log: log}
}

// Load attaches the caller to the context when a valid token is present.
// A missing or bad token leaves the request anonymous.
func (m *Middleware) Load(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); ok || m.verifier == nil {
			next.ServeHTTP(w, r)
			return
		}
		raw := bearerToken(r)
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}
		tok, err := m.verifier.VerifyIDToken(r.Context(), raw)
		if err != nil {
			m.log.Debug("rejected id token", zap.Error(err), zap.String("path", r.URL.Path))
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), userFromToken(tok))))
	})
}

// Require answers 401 unless Load found a caller.
func (m *Middleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); !ok {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("WWW-Authenticate", `Bearer realm="paperhub"`)
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"Please sign in to continue."}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	scheme, tok, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(tok)
}

func userFromToken(t *fbauth.Token) *User {
	u := &User{UID: t.UID}
	u.Email, _ = t.Claims["email"].(string)
	u.EmailVerified, _ = t.Claims["email_verified"].(bool)
	u.Name, _ = t.Claims["name"].(string)
	u.Picture, _ = t.Claims["picture"].(string)
	return u
}
