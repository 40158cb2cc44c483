package wizard

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/dalemusser/paperhub/internal/domain/taxonomy"
	"github.com/dalemusser/waffle/pantry/urlutil"
)

// MaxTitleLen is the longest title accepted, in characters.
const MaxTitleLen = 200

// FieldError is one problem with a submission, worded for the user.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string { return e.Field + ": " + e.Message }

type fieldErrors []FieldError

func (fe *fieldErrors) add(field, format string, args ...any) {
	*fe = append(*fe, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Validate runs the final-step checks on a selection and returns every
// problem found, in field order. A nil result means the selection can be
// submitted.
func Validate(sel Selection) []FieldError {
	var errs fieldErrors

	switch sel.ResourceType {
	case "":
		errs.add("resourceType", "Please select a resource type")
	case taxonomy.ResourcePDF, taxonomy.ResourceLecture:
	default:
		errs.add("resourceType", "Resource type must be PDF or Lecture")
	}

	cat := sel.MainCategory
	switch {
	case cat == "":
		errs.add("mainCategory", "Please select a category")
		return errs
	case !taxonomy.IsCategory(cat):
		errs.add("mainCategory", "Unknown category %q", cat)
		return errs
	}

	ct := sel.ContentType
	if ct == "" {
		errs.add("contentType", "Please select a content type")
	} else if !slices.Contains(taxonomy.ListContentTypes(cat, sel.ResourceType), ct) {
		errs.add("contentType", "%s is not offered for %s", ct, cat)
	}

	if classes := taxonomy.ListClasses(cat); len(classes) > 0 {
		if sel.ClassLevel == "" {
			errs.add("classLevel", "Please select class for %s", cat)
		} else if !slices.Contains(classes, sel.ClassLevel) {
			errs.add("classLevel", "%s is not a class of %s", sel.ClassLevel, cat)
		}
	}

	if provs := taxonomy.ListProvinces(cat, sel.ClassLevel); len(provs) > 0 {
		if sel.Province == "" {
			errs.add("province", "Please select province for %s", displayFor(cat, sel.ClassLevel))
		} else if !slices.Contains(provs, sel.Province) {
			errs.add("province", "%s is not a province for %s", sel.Province, displayFor(cat, sel.ClassLevel))
		}
	}

	if ct != "" {
		req := taxonomy.RequirementsFor(cat, ct, sel.Subject)
		if req.Board && !sel.Board.IsConcrete() {
			errs.add("board", "Please select board for %s", ct)
		}
		if req.Subject && !sel.Subject.IsConcrete() {
			errs.add("subject", "Please select subject for %s", ct)
		}
		if req.Chapter && !sel.Chapter.IsConcrete() {
			errs.add("chapter", "Please select chapter for %s", ct)
		}
		if req.Year && strings.TrimSpace(sel.Year) == "" {
			errs.add("year", "Please select year for %s", ct)
		}
	}
	if y := strings.TrimSpace(sel.Year); y != "" && !isYear(y) {
		errs.add("year", "Year must be a 4-digit year")
	}

	title := strings.TrimSpace(sel.Title)
	switch {
	case title == "":
		errs.add("title", "Please enter a title")
	case utf8.RuneCountInString(title) > MaxTitleLen:
		errs.add("title", "Title must be at most %d characters", MaxTitleLen)
	}

	validateSource(sel, &errs)

	switch ct {
	case taxonomy.ContentQuiz:
		validateQuiz(sel.Quiz, &errs)
	case taxonomy.ContentTest:
		if strings.TrimSpace(sel.TestType) == "" {
			errs.add("testType", "Please select test type")
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// validateSource checks the lecture link or uploaded file. Quizzes carry
// their content inline and need neither.
func validateSource(sel Selection, errs *fieldErrors) {
	u := strings.TrimSpace(sel.URL)
	if u != "" && !urlutil.IsValidAbsHTTPURL(u) {
		errs.add("url", "URL must start with http:// or https://")
		return
	}
	if sel.ContentType == taxonomy.ContentQuiz {
		return
	}
	if sel.ResourceType == taxonomy.ResourceLecture {
		if u == "" {
			errs.add("url", "Please enter the lecture URL")
		}
		return
	}
	if u == "" && (sel.File == nil || sel.File.Path == "") {
		errs.add("url", "Please upload a PDF or enter its URL")
	}
}

func validateQuiz(q *QuizInput, errs *fieldErrors) {
	if q == nil || strings.TrimSpace(q.Question) == "" {
		errs.add("quiz.question", "Please enter the quiz question")
	}
	var opts []string
	if q != nil {
		opts = trimmedSet(q.Options)
	}
	if len(opts) < 2 {
		errs.add("quiz.options", "Please enter at least 2 options")
		return
	}
	if !slices.Contains(opts, strings.TrimSpace(q.CorrectOption)) {
		errs.add("quiz.correctOption", "Correct option must be one of the options")
	}
}

func displayFor(category, class string) string {
	if class != "" {
		return class
	}
	return category
}

func isYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
