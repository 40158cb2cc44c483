// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PageSize is the default number of resources in one library page.
const PageSize = 50

// MaxPageSize caps the ?limit= a client may ask for.
const MaxPageSize = 100

// ParseLimit reads ?limit=, falling back to PageSize when absent or invalid
// and clamping to MaxPageSize.
func ParseLimit(r *http.Request) int {
	n, err := strconv.Atoi(query.Get(r, "limit"))
	if err != nil || n < 1 {
		return PageSize
	}
	return min(n, MaxPageSize)
}

// Result reports whether pages exist on either side of the one returned.
type Result struct {
	HasPrev bool `json:"hasPrev"`
	HasNext bool `json:"hasNext"`
}

// TrimPage trims rows fetched with a limit of size+1 down to size.
//
// Paging backwards (before set) the extra row is the oldest and is dropped
// from the front, and a next page always exists. Otherwise the extra row is
// dropped from the end and a previous page exists only when after was set.
func TrimPage[T any](rows *[]T, before, after string, size int) Result {
	var res Result
	if before != "" {
		if len(*rows) > size {
			*rows = (*rows)[1:]
			res.HasPrev = true
		}
		res.HasNext = true
		return res
	}
	if len(*rows) > size {
		*rows = (*rows)[:size]
		res.HasNext = true
	}
	res.HasPrev = after != ""
	return res
}

// Direction is the direction a keyset query walks the sort order.
type Direction int

const (
	Forward  Direction = iota // ascending, cursor compared with $gt
	Backward                  // descending, cursor compared with $lt
)

// KeysetConfig is a decoded paging request.
type KeysetConfig struct {
	Direction Direction
	SortOrder int // 1 or -1
	Cursor    *wafflemongo.Cursor
	Size      int
}

// ConfigureKeyset decodes the before/after cursors. before wins when both are
// set; an undecodable cursor starts from the beginning.
func ConfigureKeyset(before, after string, size int) KeysetConfig {
	cfg := KeysetConfig{Direction: Forward, SortOrder: 1, Size: size}
	raw := after
	if before != "" {
		cfg.Direction = Backward
		cfg.SortOrder = -1
		raw = before
	}
	if raw != "" {
		if c, ok := wafflemongo.DecodeCursor(raw); ok {
			cfg.Cursor = &c
		}
	}
	return cfg
}

// ApplyToFind sorts by sortField then _id and fetches one row past the page.
func (cfg KeysetConfig) ApplyToFind(find *options.FindOptions, sortField string) {
	find.SetSort(bson.D{
		{Key: sortField, Value: cfg.SortOrder},
		{Key: "_id", Value: cfg.SortOrder},
	}).SetLimit(int64(cfg.Size + 1))
}

// KeysetWindow returns the filter clause that starts the page at the cursor,
// or nil on the first page.
func (cfg KeysetConfig) KeysetWindow(sortField string) bson.M {
	if cfg.Cursor == nil {
		return nil
	}
	dir := "gt"
	if cfg.Direction == Backward {
		dir = "lt"
	}
	return wafflemongo.KeysetWindow(sortField, dir, cfg.Cursor.CI, cfg.Cursor.ID)
}

// Reverse reverses rows in place; backward pages are fetched newest first.
func Reverse[T any](rows []T) {
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
}

// BuildCursors encodes cursors for the first and last rows.
func BuildCursors[T any](rows []T, keyFn func(T) string, idFn func(T) primitive.ObjectID) (prev, next string) {
	if len(rows) == 0 {
		return "", ""
	}
	first, last := rows[0], rows[len(rows)-1]
	return wafflemongo.EncodeCursor(keyFn(first), idFn(first)),
		wafflemongo.EncodeCursor(keyFn(last), idFn(last))
}
