// internal/app/features/taxonomy/handler.go
package taxonomy

import (
	"encoding/json"
	"net/http"
	"strconv"

	uierrors "github.com/dalemusser/paperhub/internal/app/features/errors"
	"github.com/dalemusser/paperhub/internal/app/system/limits"
	tax "github.com/dalemusser/paperhub/internal/domain/taxonomy"
	"github.com/dalemusser/paperhub/internal/domain/wizard"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// Handler serves the read-only taxonomy endpoints the upload wizard and the
// library browser use to fill their dropdowns. Nothing here touches a store.
type Handler struct {
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Log: logger, ErrLog: errLog}
}

type listResponse struct {
	Items []string `json:"items"`
}

func writeList(w http.ResponseWriter, items []string) {
	if items == nil {
		items = []string{}
	}
	uierrors.WriteJSON(w, http.StatusOK, listResponse{Items: items})
}

// ServeCategories handles GET /categories.
func (h *Handler) ServeCategories(w http.ResponseWriter, r *http.Request) {
	writeList(w, tax.Categories())
}

// ServeContentTypes handles GET /content-types?category=&resourceType=.
func (h *Handler) ServeContentTypes(w http.ResponseWriter, r *http.Request) {
	writeList(w, tax.ListContentTypes(query.Get(r, "category"), query.Get(r, "resourceType")))
}

// ServeProvinces handles GET /provinces?category=&class=.
func (h *Handler) ServeProvinces(w http.ResponseWriter, r *http.Request) {
	writeList(w, tax.ListProvinces(query.Get(r, "category"), query.Get(r, "class")))
}

// ServeClasses handles GET /classes?category=.
func (h *Handler) ServeClasses(w http.ResponseWriter, r *http.Request) {
	writeList(w, tax.ListClasses(query.Get(r, "category")))
}

// ServeBoards handles GET /boards?province=.
func (h *Handler) ServeBoards(w http.ResponseWriter, r *http.Request) {
	writeList(w, tax.Boards(query.Get(r, "province")))
}

// ServeSubjects handles GET /subjects?category=&class=.
func (h *Handler) ServeSubjects(w http.ResponseWriter, r *http.Request) {
	writeList(w, tax.Subjects(query.Get(r, "category"), query.Get(r, "class")))
}

// ServeCollections handles GET /collections.
func (h *Handler) ServeCollections(w http.ResponseWriter, r *http.Request) {
	writeList(w, tax.KnownCollections())
}

// ServeRequirements handles
// GET /requirements?category=&contentType=&subject=&subjectAddNew=.
//
// subjectAddNew=true marks subject as free text typed after picking
// "Add New"; without it a bare "Add New" is read as the legacy placeholder.
func (h *Handler) ServeRequirements(w http.ResponseWriter, r *http.Request) {
	subject := query.Get(r, "subject")
	var choice tax.Choice
	if addNew, _ := strconv.ParseBool(query.Get(r, "subjectAddNew")); addNew {
		choice = tax.AddNew(subject)
	} else {
		choice = tax.ParseLegacy(subject)
	}
	req := tax.RequirementsFor(query.Get(r, "category"), query.Get(r, "contentType"), choice)
	uierrors.WriteJSON(w, http.StatusOK, req)
}

type stepsResponse struct {
	Category     string `json:"category"`
	TotalSteps   int    `json:"totalSteps"`
	ProvinceStep bool   `json:"provinceStep"`
}

// ServeSteps handles GET /steps?category=.
func (h *Handler) ServeSteps(w http.ResponseWriter, r *http.Request) {
	cat := query.Get(r, "category")
	uierrors.WriteJSON(w, http.StatusOK, stepsResponse{
		Category:     cat,
		TotalSteps:   wizard.TotalSteps(cat),
		ProvinceStep: tax.HasProvinceStep(cat),
	})
}

type advanceRequest struct {
	Step      int              `json:"step"`
	Selection wizard.Selection `json:"selection"`
}

type advanceResponse struct {
	Step       int  `json:"step"`
	CanAdvance bool `json:"canAdvance"`
	TotalSteps int  `json:"totalSteps"`
}

// HandleAdvance handles POST /advance with {step, selection}.
func (h *Handler) HandleAdvance(w http.ResponseWriter, r *http.Request) {
	var in advanceRequest
	if !h.decode(w, r, &in) {
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, advanceResponse{
		Step:       in.Step,
		CanAdvance: wizard.CanAdvance(in.Step, in.Selection),
		TotalSteps: wizard.TotalSteps(in.Selection.MainCategory),
	})
}

type resolveRequest struct {
	Selection wizard.Selection `json:"selection"`
}

type resolveResponse struct {
	Collection string `json:"collection"`
	Known      bool   `json:"known"`
}

// HandleResolve handles POST /resolve with {selection}. known is false when
// the name falls outside the table (the fallback, or a partial selection).
func (h *Handler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	var in resolveRequest
	if !h.decode(w, r, &in) {
		return
	}
	name := in.Selection.Collection()
	_, known := tax.Lookup(name)
	uierrors.WriteJSON(w, http.StatusOK, resolveResponse{Collection: name, Known: known})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.ErrLog.LogBadRequest(w, r, "taxonomy: bad request body", err, "Invalid request body.")
		return false
	}
	return true
}
