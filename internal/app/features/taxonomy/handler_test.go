package taxonomy_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	uierrors "github.com/dalemusser/paperhub/internal/app/features/errors"
	taxfeature "github.com/dalemusser/paperhub/internal/app/features/taxonomy"
	tax "github.com/dalemusser/paperhub/internal/domain/taxonomy"
	"github.com/dalemusser/paperhub/internal/domain/wizard"
	"github.com/dalemusser/paperhub/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

func newRouter() http.Handler {
	logger := zap.NewNop()
	return taxfeature.Routes(taxfeature.NewHandler(uierrors.NewErrorLogger(logger), logger))
}

func get(t *testing.T, target string) *testutil.ResponseRecorder {
	t.Helper()
	rec := testutil.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func post(t *testing.T, target string, body any) *testutil.ResponseRecorder {
	t.Helper()
	rec := testutil.NewRecorder()
	newRouter().ServeHTTP(rec, testutil.NewJSONRequest(t, http.MethodPost, target, body))
	return rec
}

type list struct {
	Items []string `json:"items"`
}

func TestLists(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{"categories", "/categories", tax.Categories()},
		{"content types", "/content-types?category=School&resourceType=Lecture", tax.ListContentTypes(tax.CategorySchool, tax.ResourceLecture)},
		{"provinces", "/provinces?category=Entry+Test&class=MDCAT", tax.ListProvinces(tax.CategoryEntryTest, "MDCAT")},
		{"classes", "/classes?category=School", []string{"9th", "10th"}},
		{"boards", "/boards?province=Punjab", tax.Boards("Punjab")},
		{"subjects", "/subjects?category=Entry+Test&class=ECAT", tax.Subjects(tax.CategoryEntryTest, "ECAT")},
		{"collections", "/collections", tax.KnownCollections()},
		{"unknown category is empty", "/classes?category=Nowhere", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, tt.target)
			rec.AssertStatus(t, http.StatusOK)
			var got list
			rec.DecodeJSON(t, &got)
			if diff := cmp.Diff(tt.want, got.Items); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", tt.target, diff)
			}
		})
	}
}

func TestUnknownListsEncodeAsEmptyArray(t *testing.T) {
	rec := get(t, "/boards?province=Atlantis")
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"items":[]`)
}

func TestRequirements(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   tax.Requirements
	}{
		{
			"school past papers",
			"/requirements?category=School&contentType=PastPapers&subject=Physics",
			tax.Requirements{Board: true, Subject: true, Year: true},
		},
		{
			"notes with concrete subject",
			"/requirements?category=School&contentType=Notes&subject=Physics",
			tax.Requirements{Subject: true, Chapter: true},
		},
		{
			"legacy add new placeholder",
			"/requirements?category=School&contentType=Notes&subject=Add+New",
			tax.Requirements{Subject: true},
		},
		{
			"typed custom subject",
			"/requirements?category=School&contentType=Notes&subject=Astronomy&subjectAddNew=true",
			tax.Requirements{Subject: true, Chapter: true},
		},
		{
			"pending custom subject",
			"/requirements?category=School&contentType=Notes&subject=&subjectAddNew=1",
			tax.Requirements{Subject: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, tt.target)
			rec.AssertStatus(t, http.StatusOK)
			var got tax.Requirements
			rec.DecodeJSON(t, &got)
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSteps(t *testing.T) {
	for _, cat := range tax.Categories() {
		rec := get(t, "/steps?category="+strings.ReplaceAll(cat, " ", "+"))
		rec.AssertStatus(t, http.StatusOK)
		var got struct {
			Category   string `json:"category"`
			TotalSteps int    `json:"totalSteps"`
		}
		rec.DecodeJSON(t, &got)
		if got.Category != cat || got.TotalSteps != wizard.TotalSteps(cat) {
			t.Errorf("steps for %q = %+v, want %d", cat, got, wizard.TotalSteps(cat))
		}
	}
}

func TestAdvance(t *testing.T) {
	sel := wizard.Selection{}.
		WithResourceType(tax.ResourcePDF).
		WithMainCategory(tax.CategorySchool).
		WithContentType(tax.ContentNotes).
		WithClassLevel("9th")

	tests := []struct {
		name string
		step int
		sel  wizard.Selection
		want bool
	}{
		{"content type chosen", wizard.StepContentType, sel, true},
		{"province missing", wizard.StepProvince, sel, false},
		{"province chosen", wizard.StepProvince, sel.WithProvince("Punjab"), true},
		{"empty selection", wizard.StepResourceType, wizard.Selection{}, false},
		{"out of range", 9, sel, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, "/advance", map[string]any{"step": tt.step, "selection": tt.sel})
			rec.AssertStatus(t, http.StatusOK)
			var got struct {
				CanAdvance bool `json:"canAdvance"`
				TotalSteps int  `json:"totalSteps"`
			}
			rec.DecodeJSON(t, &got)
			if got.CanAdvance != tt.want {
				t.Errorf("canAdvance = %v, want %v", got.CanAdvance, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	sel := wizard.Selection{
		MainCategory: tax.CategorySchool,
		Province:     "Punjab",
		ClassLevel:   "9th",
		ContentType:  tax.ContentPastPapers,
	}
	rec := post(t, "/resolve", map[string]any{"selection": sel})
	rec.AssertStatus(t, http.StatusOK)
	var got struct {
		Collection string `json:"collection"`
		Known      bool   `json:"known"`
	}
	rec.DecodeJSON(t, &got)
	if got.Collection != "Punjab9thPastPapers" || !got.Known {
		t.Errorf("resolve = %+v", got)
	}

	rec = post(t, "/resolve", map[string]any{"selection": wizard.Selection{}})
	rec.AssertStatus(t, http.StatusOK)
	rec.DecodeJSON(t, &got)
	if got.Collection != tax.DefaultCollection || got.Known {
		t.Errorf("empty resolve = %+v, want fallback", got)
	}
}

func TestAdvance_BadBody(t *testing.T) {
	rec := testutil.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/advance", strings.NewReader("{"))
	newRouter().ServeHTTP(rec, req)
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Invalid request body.")
}
