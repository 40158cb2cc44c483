// internal/app/features/profile/profile.go
package profile

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/paperhub/internal/app/features/errors"
	profilestore "github.com/dalemusser/paperhub/internal/app/store/profiles"
	"github.com/dalemusser/paperhub/internal/app/system/auth"
	"github.com/dalemusser/paperhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/paperhub/internal/app/system/inputval"
	"github.com/dalemusser/paperhub/internal/app/system/limits"
	"github.com/dalemusser/paperhub/internal/app/system/timeouts"
	"github.com/dalemusser/paperhub/internal/domain/models"
	"go.uber.org/zap"
)

// HandleRegister handles POST /register.
//
// The profile is built from the verified token claims. Registering twice is
// not an error: the existing profile comes back with 200 after its email
// fields are refreshed from the token.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "register profile")
	defer cancel()

	p, err := h.Profiles.GetByUID(ctx, u.UID)
	if err == nil {
		h.existing(w, r, u, p)
		return
	}
	if !errors.Is(err, profilestore.ErrNotFound) {
		h.ErrLog.LogServerError(w, r, "profile: load for register", err, "")
		return
	}

	p, err = h.Profiles.Create(ctx, models.Profile{
		UID:           u.UID,
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
		DisplayName:   defaultName(u),
		PhotoURL:      u.Picture,
		CreatedAt:     h.now().UTC(),
	})
	if errors.Is(err, profilestore.ErrExists) {
		// Lost a race with a concurrent register.
		p, err = h.Profiles.GetByUID(ctx, u.UID)
		if err == nil {
			h.existing(w, r, u, p)
			return
		}
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "profile: create", err, "We couldn't create your profile. Please try again.")
		return
	}

	h.Log.Info("profile registered", zap.String("uid", u.UID))
	uierrors.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) existing(w http.ResponseWriter, r *http.Request, u *auth.User, p models.Profile) {
	if p.Email != u.Email || p.EmailVerified != u.EmailVerified {
		if err := h.Profiles.SyncIdentity(r.Context(), u.UID, u.Email, u.EmailVerified); err != nil {
			h.Log.Warn("profile: sync identity", zap.String("uid", u.UID), zap.Error(err))
		} else {
			p.Email, p.EmailVerified = u.Email, u.EmailVerified
		}
	}
	uierrors.WriteJSON(w, http.StatusOK, p)
}

// ServeProfile handles GET /profile.
func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "load profile")
	defer cancel()

	p, err := h.Profiles.GetByUID(ctx, u.UID)
	if errors.Is(err, profilestore.ErrNotFound) {
		uierrors.RenderNotFound(w, "Please finish registering first.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "profile: load", err, "")
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, p)
}

type updateInput struct {
	DisplayName string `json:"displayName" validate:"required,max=80" label:"Display name"`
	City        string `json:"city" validate:"max=80" label:"City"`
	Institution string `json:"institution" validate:"max=120" label:"Institution"`
	Bio         string `json:"bio" validate:"max=1000" label:"Bio"`
}

func (in *updateInput) normalize() {
	in.DisplayName = strings.TrimSpace(htmlsanitize.StripTags(in.DisplayName))
	in.City = strings.TrimSpace(htmlsanitize.StripTags(in.City))
	in.Institution = strings.TrimSpace(htmlsanitize.StripTags(in.Institution))
	in.Bio = strings.TrimSpace(htmlsanitize.StripTags(in.Bio))
}

// HandleUpdate handles PUT /profile.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	var in updateInput
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.ErrLog.LogBadRequest(w, r, "profile: bad update body", err, "Invalid request body.")
		return
	}
	in.normalize()
	if res := inputval.Validate(in); res.HasErrors() {
		fields := make([]uierrors.FieldError, len(res.Errors))
		for i, e := range res.Errors {
			fields[i] = uierrors.FieldError{Field: e.Field, Message: e.Message}
		}
		uierrors.WriteFields(w, fields)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "update profile")
	defer cancel()

	p, err := h.Profiles.UpdateByUID(ctx, u.UID, profilestore.Update{
		DisplayName: in.DisplayName,
		City:        in.City,
		Institution: in.Institution,
		Bio:         in.Bio,
	})
	if errors.Is(err, profilestore.ErrNotFound) {
		uierrors.RenderNotFound(w, "Please finish registering first.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "profile: update", err, "We couldn't save your profile. Please try again.")
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, p)
}

func defaultName(u *auth.User) string {
	if n := strings.TrimSpace(u.Name); n != "" {
		return n
	}
	local, _, _ := strings.Cut(u.Email, "@")
	if local == "" {
		return "Student"
	}
	return local
}
