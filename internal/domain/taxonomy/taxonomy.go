// internal/domain/taxonomy/taxonomy.go

// Package taxonomy holds the static category table for PaperHub and the pure
// functions that answer questions about it: which content types, provinces,
// and classes a category offers, which fields a content type requires, and
// which collection a fully described resource is stored in.
//
// Every function in this package is safe for concurrent use. Nothing here
// performs I/O and nothing mutates the table; slices handed to callers are
// always fresh copies.
package taxonomy

// Canonical category names. These are stored on every resource document and
// appear in URLs, so they must never change.
const (
	CategorySchool          = "School"
	CategoryCollege         = "College"
	CategoryCambridge       = "Cambridge"
	CategoryEntryTest       = "Entry Test"
	CategoryUniversity      = "University"
	CategoryCompetitionExam = "Competition Exam"
	CategoryGeneral         = "General"
)

// Canonical content type names.
const (
	ContentPastPapers         = "PastPapers"
	ContentGuessPapers        = "GuessPapers"
	ContentPairingScheme      = "PairingScheme"
	ContentDateSheet          = "DateSheet"
	ContentGazette            = "Gazette"
	ContentNotes              = "Notes"
	ContentLectures           = "Lectures"
	ContentQuiz               = "Quiz"
	ContentTest               = "Test"
	ContentTextBooks          = "TextBooks"
	ContentSyllabus           = "Syllabus"
	ContentUrduCalligraphy    = "UrduCalligraphy"
	ContentEnglishCalligraphy = "EnglishCalligraphy"
	ContentEnglishLanguage    = "EnglishLanguage"
	ContentGeneralKnowledge   = "GeneralKnowledge"
)

// Resource types. A Lecture is a video link; a PDF is an uploaded document.
const (
	ResourcePDF     = "PDF"
	ResourceLecture = "Lecture"
)

// ResourceTypes lists the recognised resource types.
var ResourceTypes = []string{ResourcePDF, ResourceLecture}

// DefaultCollection is returned by ResolveCollectionName when a selection has
// no province, class, or content type to build a name from.
const DefaultCollection = "DefaultCollection"

// Category describes one top-level educational track.
//
// Provinces and ProvincesFor are mutually exclusive: a category either asks
// every upload for a province, or only asks for it on specific classes.
type Category struct {
	Provinces    []string            `json:"provinces,omitempty" yaml:"provinces,omitempty"`
	Classes      []string            `json:"classes,omitempty" yaml:"classes,omitempty"`
	ContentTypes map[string]bool     `json:"contentTypes" yaml:"contentTypes"` // content type -> needsBoard
	ProvincesFor map[string][]string `json:"provincesFor,omitempty" yaml:"provincesFor,omitempty"`
}

var provinces = []string{"Punjab", "Sindh", "KPK", "Balochistan", "Federal"}

// Entry Test and University classes that are split by province do not
// include the federal capital.
var provincialOnly = []string{"Punjab", "Sindh", "KPK", "Balochistan"}

func boardContent() map[string]bool {
	return map[string]bool{
		ContentPastPapers:    true,
		ContentGuessPapers:   true,
		ContentPairingScheme: true,
		ContentDateSheet:     true,
		ContentGazette:       true,
		ContentNotes:         false,
		ContentLectures:      false,
		ContentQuiz:          false,
		ContentTest:          false,
		ContentTextBooks:     false,
	}
}

// categoryOrder is the order categories are offered in the wizard.
var categoryOrder = []string{
	CategorySchool,
	CategoryCollege,
	CategoryCambridge,
	CategoryEntryTest,
	CategoryUniversity,
	CategoryCompetitionExam,
	CategoryGeneral,
}

// categories is the static table. It is never written after package init.
var categories = map[string]Category{
	CategorySchool: {
		Provinces:    provinces,
		Classes:      []string{"9th", "10th"},
		ContentTypes: boardContent(),
	},
	CategoryCollege: {
		Provinces:    provinces,
		Classes:      []string{"11th", "12th"},
		ContentTypes: boardContent(),
	},
	CategoryCambridge: {
		Classes: []string{"OLevel", "ALevel", "IGCSE"},
		ContentTypes: map[string]bool{
			ContentPastPapers: false,
			ContentNotes:      false,
			ContentLectures:   false,
			ContentQuiz:       false,
			ContentTextBooks:  false,
			ContentSyllabus:   false,
		},
	},
	CategoryEntryTest: {
		Classes: []string{"MDCAT", "ECAT", "NUMS", "AMC", "PMA"},
		ContentTypes: map[string]bool{
			ContentPastPapers: false,
			ContentNotes:      false,
			ContentLectures:   false,
			ContentQuiz:       false,
			ContentTest:       false,
			ContentSyllabus:   false,
		},
		ProvincesFor: map[string][]string{
			"MDCAT": provincialOnly,
		},
	},
	CategoryUniversity: {
		Classes: []string{"VirtualUniversity", "AllamaIqbalOpenUniversity", "MBBS", "BDS", "ADP", "BS"},
		ContentTypes: map[string]bool{
			ContentPastPapers: false,
			ContentNotes:      false,
			ContentLectures:   false,
			ContentQuiz:       false,
			ContentDateSheet:  false,
			ContentSyllabus:   false,
		},
		ProvincesFor: map[string][]string{
			"ADP": provincialOnly,
			"BS":  provincialOnly,
		},
	},
	CategoryCompetitionExam: {
		Classes: []string{"CSS", "PMS", "FPSC", "PPSC", "NTS"},
		ContentTypes: map[string]bool{
			ContentPastPapers: false,
			ContentNotes:      false,
			ContentLectures:   false,
			ContentQuiz:       false,
			ContentTest:       false,
			ContentSyllabus:   false,
		},
	},
	CategoryGeneral: {
		ContentTypes: map[string]bool{
			ContentUrduCalligraphy:    false,
			ContentEnglishCalligraphy: false,
			ContentEnglishLanguage:    false,
			ContentLectures:           false,
			ContentGeneralKnowledge:   false,
		},
	},
}

// Categories returns the category names in wizard order.
func Categories() []string {
	return clone(categoryOrder)
}

// IsCategory reports whether name is a known category.
func IsCategory(name string) bool {
	_, ok := categories[name]
	return ok
}

// Get returns a deep copy of the named category.
func Get(name string) (Category, bool) {
	c, ok := categories[name]
	if !ok {
		return Category{}, false
	}
	return c.copy(), true
}

// Table returns a deep copy of the whole table keyed by category name.
func Table() map[string]Category {
	out := make(map[string]Category, len(categories))
	for name, c := range categories {
		out[name] = c.copy()
	}
	return out
}

func (c Category) copy() Category {
	out := Category{
		Provinces: clone(c.Provinces),
		Classes:   clone(c.Classes),
	}
	if c.ContentTypes != nil {
		out.ContentTypes = make(map[string]bool, len(c.ContentTypes))
		for k, v := range c.ContentTypes {
			out.ContentTypes[k] = v
		}
	}
	if c.ProvincesFor != nil {
		out.ProvincesFor = make(map[string][]string, len(c.ProvincesFor))
		for k, v := range c.ProvincesFor {
			out.ProvincesFor[k] = clone(v)
		}
	}
	return out
}

// clone returns a non-nil copy of s so callers can append freely.
func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
