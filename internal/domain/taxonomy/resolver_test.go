package taxonomy

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestListContentTypes_Lecture(t *testing.T) {
	got := ListContentTypes(CategorySchool, ResourceLecture)
	want := []string{ContentLectures}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListContentTypes(School, Lecture) mismatch (-want +got):\n%s", diff)
	}
}

func TestListContentTypes_PDF(t *testing.T) {
	got := ListContentTypes(CategorySchool, ResourcePDF)
	if len(got) == 0 {
		t.Fatal("expected content types for School PDF")
	}
	for _, ct := range got {
		if ct == ContentLectures {
			t.Errorf("PDF content types should not include %q", ContentLectures)
		}
	}
	if !sort.StringsAreSorted(got) {
		t.Errorf("content types not sorted: %v", got)
	}
	if len(got) != len(categories[CategorySchool].ContentTypes)-1 {
		t.Errorf("got %d content types, want every type but Lectures", len(got))
	}
}

func TestListContentTypes_UnknownCategory(t *testing.T) {
	got := ListContentTypes("Kindergarten", ResourcePDF)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", got)
	}
}

func TestListContentTypes_CambridgeHasNoBoardTypes(t *testing.T) {
	got := ListContentTypes(CategoryCambridge, ResourcePDF)
	for _, ct := range got {
		if ct == ContentPairingScheme || ct == ContentGazette {
			t.Errorf("Cambridge should not offer %q", ct)
		}
	}
}

func TestListProvinces(t *testing.T) {
	tests := []struct {
		name     string
		category string
		class    string
		want     []string
	}{
		{"flat list ignores class", CategorySchool, "", provinces},
		{"flat list ignores unknown class", CategoryCollege, "Nonsense", provinces},
		{"per-class list", CategoryEntryTest, "MDCAT", provincialOnly},
		{"class without provinces", CategoryEntryTest, "ECAT", []string{}},
		{"category without provinces", CategoryCambridge, "OLevel", []string{}},
		{"university per-class", CategoryUniversity, "BS", provincialOnly},
		{"university national class", CategoryUniversity, "MBBS", []string{}},
		{"unknown category", "Nowhere", "9th", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ListProvinces(tt.category, tt.class)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ListProvinces(%q, %q) mismatch (-want +got):\n%s", tt.category, tt.class, diff)
			}
		})
	}
}

func TestListClasses(t *testing.T) {
	if diff := cmp.Diff([]string{"9th", "10th"}, ListClasses(CategorySchool)); diff != "" {
		t.Errorf("School classes mismatch (-want +got):\n%s", diff)
	}
	if got := ListClasses(CategoryGeneral); len(got) != 0 {
		t.Errorf("General should have no classes, got %v", got)
	}
	if got := ListClasses(CategoryCompetitionExam); len(got) == 0 {
		t.Error("Competition Exam should define classes")
	}
}

func TestRequiresBoard(t *testing.T) {
	if !RequiresBoard(CategorySchool, ContentPastPapers) {
		t.Error("School PastPapers should require a board")
	}
	if RequiresBoard(CategorySchool, ContentNotes) {
		t.Error("School Notes should not require a board")
	}
	if RequiresBoard(CategoryCambridge, ContentPastPapers) {
		t.Error("Cambridge PastPapers should not require a board")
	}
	if RequiresBoard("Unknown", ContentPastPapers) {
		t.Error("unknown category should not require a board")
	}
}

func TestRequiresSubject(t *testing.T) {
	for _, ct := range []string{
		ContentPastPapers, ContentGuessPapers, ContentLectures, ContentNotes,
		ContentPairingScheme, ContentQuiz, ContentTest, ContentTextBooks,
	} {
		if !RequiresSubject(ct) {
			t.Errorf("RequiresSubject(%q) = false, want true", ct)
		}
	}
	for _, ct := range []string{ContentDateSheet, ContentGazette, ContentSyllabus, ContentUrduCalligraphy, ""} {
		if RequiresSubject(ct) {
			t.Errorf("RequiresSubject(%q) = true, want false", ct)
		}
	}
}

func TestRequiresChapter(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		subject     Choice
		want        bool
	}{
		{"legacy add new placeholder", ContentNotes, ParseLegacy("Add New"), false},
		{"concrete subject", ContentNotes, ParseLegacy("Physics"), true},
		{"selected physics", ContentQuiz, Selected("Physics"), true},
		{"no subject", ContentLectures, Choice{}, false},
		{"pending custom subject", ContentNotes, AddNew("   "), false},
		{"typed custom subject", ContentNotes, AddNew("Astronomy"), true},
		{"subject literally named Add New", ContentNotes, Selected("Add New"), true},
		{"content type without chapters", ContentPastPapers, Selected("Physics"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RequiresChapter(tt.contentType, tt.subject); got != tt.want {
				t.Errorf("RequiresChapter(%q, %+v) = %v, want %v", tt.contentType, tt.subject, got, tt.want)
			}
		})
	}
}

func TestRequiresYear(t *testing.T) {
	for ct, want := range map[string]bool{
		ContentPastPapers: true,
		ContentDateSheet:  true,
		ContentGazette:    true,
		ContentNotes:      false,
		ContentQuiz:       false,
	} {
		if got := RequiresYear(ct); got != want {
			t.Errorf("RequiresYear(%q) = %v, want %v", ct, got, want)
		}
	}
}

func TestResolverDoesNotMutateTable(t *testing.T) {
	before := Table()

	provs := ListProvinces(CategorySchool, "")
	provs[0] = "Atlantis"
	classes := ListClasses(CategorySchool)
	classes[0] = "1st"
	types := ListContentTypes(CategorySchool, ResourcePDF)
	types[0] = "Scrolls"
	cat, _ := Get(CategoryEntryTest)
	cat.ProvincesFor["MDCAT"][0] = "Atlantis"
	cat.ContentTypes["Scrolls"] = true
	tbl := Table()
	delete(tbl, CategorySchool)

	if diff := cmp.Diff(before, Table()); diff != "" {
		t.Errorf("table changed after caller mutation (-before +after):\n%s", diff)
	}
}

func TestResolverIsIdempotent(t *testing.T) {
	for _, cat := range Categories() {
		for _, rt := range ResourceTypes {
			a := ListContentTypes(cat, rt)
			b := ListContentTypes(cat, rt)
			if diff := cmp.Diff(a, b); diff != "" {
				t.Errorf("ListContentTypes(%q, %q) differs between calls:\n%s", cat, rt, diff)
			}
		}
		for _, class := range ListClasses(cat) {
			if diff := cmp.Diff(ListProvinces(cat, class), ListProvinces(cat, class)); diff != "" {
				t.Errorf("ListProvinces(%q, %q) differs between calls:\n%s", cat, class, diff)
			}
		}
	}
}

func TestRequirementsFor(t *testing.T) {
	got := RequirementsFor(CategorySchool, ContentPastPapers, Selected("Physics"))
	want := Requirements{Board: true, Subject: true, Chapter: false, Year: true}
	if got != want {
		t.Errorf("RequirementsFor = %+v, want %+v", got, want)
	}
}

func TestBoardsAndSubjects(t *testing.T) {
	if got := Boards("Punjab"); len(got) == 0 || got[0] != "Lahore Board" {
		t.Errorf("Boards(Punjab) = %v", got)
	}
	if got := Boards("Atlantis"); len(got) != 0 {
		t.Errorf("Boards(Atlantis) = %v, want empty", got)
	}
	for _, s := range Subjects(CategoryEntryTest, "ECAT") {
		if s == "Biology" {
			t.Error("ECAT subjects should not include Biology")
		}
	}
	if got := Subjects(CategoryGeneral, ""); len(got) != 0 {
		t.Errorf("General subjects = %v, want empty", got)
	}
}
