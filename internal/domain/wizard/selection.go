// Package wizard holds the state of the resource upload wizard and the rules
// for moving through it.
//
// A Selection is a plain value. Every With* method returns a modified copy and
// leaves the receiver untouched, so a selection can be passed between steps,
// stored, or compared without coordination.
package wizard

import (
	"slices"

	"github.com/dalemusser/paperhub/internal/domain/taxonomy"
)

// FileRef points at a file already written to blob storage.
type FileRef struct {
	Path string `json:"path"`
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// QuizInput is the single question a Quiz resource carries.
type QuizInput struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption string   `json:"correctOption"`
}

// Selection is everything the user has entered so far.
type Selection struct {
	ResourceType string `json:"resourceType"`
	MainCategory string `json:"mainCategory"`
	ContentType  string `json:"contentType"`
	Province     string `json:"province"`
	ClassLevel   string `json:"classLevel"`

	Board   taxonomy.Choice `json:"board"`
	Subject taxonomy.Choice `json:"subject"`
	Chapter taxonomy.Choice `json:"chapter"`
	Year    string          `json:"year"`

	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Tags          []string `json:"tags"`
	FocusKeywords []string `json:"focusKeywords"`

	URL      string     `json:"url"`
	File     *FileRef   `json:"file,omitempty"`
	Quiz     *QuizInput `json:"quiz,omitempty"`
	TestType string     `json:"testType"`
}

// Reset returns the empty selection.
func Reset() Selection { return Selection{} }

// Key projects the selection onto the fields the collection name depends on.
func (s Selection) Key() taxonomy.Key {
	return taxonomy.Key{
		MainCategory: s.MainCategory,
		Province:     s.Province,
		ClassLevel:   s.ClassLevel,
		ContentType:  s.ContentType,
	}
}

// Collection is the collection this selection would be written to.
func (s Selection) Collection() string {
	return taxonomy.ResolveCollectionName(s.Key())
}

// clone detaches reference fields so the copy shares nothing with s.
func (s Selection) clone() Selection {
	s.Tags = slices.Clone(s.Tags)
	s.FocusKeywords = slices.Clone(s.FocusKeywords)
	if s.File != nil {
		f := *s.File
		s.File = &f
	}
	if s.Quiz != nil {
		q := *s.Quiz
		q.Options = slices.Clone(q.Options)
		s.Quiz = &q
	}
	return s
}

// clearContentFields drops everything chosen for a particular content type.
func (s *Selection) clearContentFields() {
	s.Board = taxonomy.Choice{}
	s.Subject = taxonomy.Choice{}
	s.Chapter = taxonomy.Choice{}
	s.Year = ""
	s.Quiz = nil
	s.TestType = ""
}

// WithResourceType sets PDF or Lecture. The content type list depends on it,
// so a change clears the content type and what hangs off it.
func (s Selection) WithResourceType(rt string) Selection {
	out := s.clone()
	if rt == s.ResourceType {
		return out
	}
	out.ResourceType = rt
	out.ContentType = ""
	out.clearContentFields()
	return out
}

// WithMainCategory sets the category and clears every field chosen under the
// previous one.
func (s Selection) WithMainCategory(category string) Selection {
	out := s.clone()
	if category == s.MainCategory {
		return out
	}
	out.MainCategory = category
	out.ContentType = ""
	out.Province = ""
	out.ClassLevel = ""
	out.clearContentFields()
	return out
}

// WithContentType sets the content type and clears board, subject, chapter,
// year, quiz, and test type.
func (s Selection) WithContentType(ct string) Selection {
	out := s.clone()
	if ct == s.ContentType {
		return out
	}
	out.ContentType = ct
	out.clearContentFields()
	return out
}

// WithProvince sets the province. Boards are per province, so a change clears
// the board.
func (s Selection) WithProvince(p string) Selection {
	out := s.clone()
	if p == s.Province {
		return out
	}
	out.Province = p
	out.Board = taxonomy.Choice{}
	return out
}

// WithClassLevel sets the class. A province the new class does not offer is
// dropped.
func (s Selection) WithClassLevel(class string) Selection {
	out := s.clone()
	if class == s.ClassLevel {
		return out
	}
	out.ClassLevel = class
	if out.Province != "" {
		if !slices.Contains(taxonomy.ListProvinces(out.MainCategory, class), out.Province) {
			out.Province = ""
			out.Board = taxonomy.Choice{}
		}
	}
	return out
}

func (s Selection) WithBoard(c taxonomy.Choice) Selection {
	out := s.clone()
	out.Board = c
	return out
}

// WithSubject sets the subject; chapters belong to a subject, so a change
// clears the chapter.
func (s Selection) WithSubject(c taxonomy.Choice) Selection {
	out := s.clone()
	if c == s.Subject {
		return out
	}
	out.Subject = c
	out.Chapter = taxonomy.Choice{}
	return out
}

func (s Selection) WithChapter(c taxonomy.Choice) Selection {
	out := s.clone()
	out.Chapter = c
	return out
}

func (s Selection) WithYear(y string) Selection {
	out := s.clone()
	out.Year = y
	return out
}

func (s Selection) WithTitle(t string) Selection {
	out := s.clone()
	out.Title = t
	return out
}

func (s Selection) WithDescription(d string) Selection {
	out := s.clone()
	out.Description = d
	return out
}

func (s Selection) WithTags(tags ...string) Selection {
	out := s.clone()
	out.Tags = slices.Clone(tags)
	return out
}

func (s Selection) WithFocusKeywords(kw ...string) Selection {
	out := s.clone()
	out.FocusKeywords = slices.Clone(kw)
	return out
}

func (s Selection) WithURL(u string) Selection {
	out := s.clone()
	out.URL = u
	return out
}

// WithFile attaches an uploaded file. A nil ref removes it.
func (s Selection) WithFile(f *FileRef) Selection {
	out := s.clone()
	if f == nil {
		out.File = nil
		return out
	}
	cp := *f
	out.File = &cp
	return out
}

func (s Selection) WithQuiz(q *QuizInput) Selection {
	out := s.clone()
	if q == nil {
		out.Quiz = nil
		return out
	}
	cp := *q
	cp.Options = slices.Clone(q.Options)
	out.Quiz = &cp
	return out
}

func (s Selection) WithTestType(tt string) Selection {
	out := s.clone()
	out.TestType = tt
	return out
}
