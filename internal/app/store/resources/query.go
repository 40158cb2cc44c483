package resourcestore

import (
	"errors"
	"strings"

	"github.com/dalemusser/paperhub/internal/app/system/paging"
	"github.com/dalemusser/paperhub/internal/domain/models"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrDuplicate    = errors.New("resource already exists")
	ErrNoCollection = errors.New("resource has no collection")
	ErrNoTitle      = errors.New("title is required")
)

// ListQuery filters and pages a library listing. Empty fields do not filter.
type ListQuery struct {
	Search  string // title prefix, case and diacritics ignored
	Board   string
	Subject string
	Chapter string
	Year    string
	After   string // cursor from Page.Next
	Before  string // cursor from Page.Prev
	Limit   int
}

// Normalize trims the filters and clamps Limit.
func (q ListQuery) Normalize() ListQuery {
	q.Search = strings.TrimSpace(q.Search)
	q.Board = strings.TrimSpace(q.Board)
	q.Subject = strings.TrimSpace(q.Subject)
	q.Chapter = strings.TrimSpace(q.Chapter)
	q.Year = strings.TrimSpace(q.Year)
	if q.Limit < 1 || q.Limit > paging.MaxPageSize {
		q.Limit = paging.PageSize
	}
	return q
}

// Page is one page of a listing.
type Page struct {
	Items []models.Resource `json:"items"`
	paging.Result
	Prev string `json:"prev,omitempty"`
	Next string `json:"next,omitempty"`
}
