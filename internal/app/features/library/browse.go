// internal/app/features/library/browse.go
package library

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/paperhub/internal/app/features/errors"
	resourcestore "github.com/dalemusser/paperhub/internal/app/store/resources"
	"github.com/dalemusser/paperhub/internal/app/system/paging"
	"github.com/dalemusser/paperhub/internal/app/system/timeouts"
	"github.com/dalemusser/paperhub/internal/domain/models"
	"github.com/dalemusser/paperhub/internal/domain/taxonomy"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type resolveResponse struct {
	Collection string                `json:"collection"`
	Known      bool                  `json:"known"`
	Filters    taxonomy.Requirements `json:"filters"`
}

// ServeResolve handles GET /?category=&province=&class=&contentType=.
//
// Filters reports which of board, subject, chapter, and year the listing of
// that collection can be narrowed by.
func (h *Handler) ServeResolve(w http.ResponseWriter, r *http.Request) {
	key := taxonomy.Key{
		MainCategory: query.Get(r, "category"),
		Province:     query.Get(r, "province"),
		ClassLevel:   query.Get(r, "class"),
		ContentType:  query.Get(r, "contentType"),
	}
	name := taxonomy.ResolveCollectionName(key)
	_, known := taxonomy.Lookup(name)
	filters := taxonomy.RequirementsFor(key.MainCategory, key.ContentType, taxonomy.ParseLegacy(query.Get(r, "subject")))
	uierrors.WriteJSON(w, http.StatusOK, resolveResponse{Collection: name, Known: known, Filters: filters})
}

type listResponse struct {
	Collection string       `json:"collection"`
	Key        taxonomy.Key `json:"key"`
	resourcestore.Page
}

// ServeList handles GET /{collection} with q, board, subject, chapter, year,
// after, before, and limit. Collections the taxonomy does not know are 404.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	coll := chi.URLParam(r, "collection")
	key, ok := taxonomy.Lookup(coll)
	if !ok {
		uierrors.RenderNotFound(w, "Collection not found.")
		return
	}

	q := resourcestore.ListQuery{
		Search:  query.Search(r, "q"),
		Board:   query.Get(r, "board"),
		Subject: query.Get(r, "subject"),
		Chapter: query.Get(r, "chapter"),
		Year:    query.Get(r, "year"),
		After:   query.Get(r, "after"),
		Before:  query.Get(r, "before"),
		Limit:   paging.ParseLimit(r),
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "library list")
	defer cancel()

	page, err := h.Resources.List(ctx, coll, q)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			h.ErrLog.LogTimeout(w, r, "library: list timed out", err)
			return
		}
		h.ErrLog.LogServerError(w, r, "library: list resources", err, "")
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, listResponse{Collection: coll, Key: key, Page: page})
}

// ServeResource handles GET /{collection}/{id}. Disabled resources are 404.
func (h *Handler) ServeResource(w http.ResponseWriter, r *http.Request) {
	coll := chi.URLParam(r, "collection")
	if _, ok := taxonomy.Lookup(coll); !ok {
		uierrors.RenderNotFound(w, "Collection not found.")
		return
	}
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, "Resource not found.")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "library get")
	defer cancel()

	res, err := h.Resources.Get(ctx, coll, id)
	if errors.Is(err, resourcestore.ErrNotFound) || (err == nil && res.Status != models.StatusActive) {
		uierrors.RenderNotFound(w, "Resource not found.")
		return
	}
	if errors.Is(err, context.DeadlineExceeded) {
		h.ErrLog.LogTimeout(w, r, "library: get timed out", err)
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "library: get resource", err, "")
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, res)
}
