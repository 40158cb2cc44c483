package wizard

import (
	"strings"
	"time"
	"unicode"

	"github.com/dalemusser/paperhub/internal/domain/models"
	"github.com/dalemusser/paperhub/internal/domain/taxonomy"
	"github.com/dalemusser/waffle/pantry/text"
)

// Uploader identifies who submitted a resource.
type Uploader struct {
	UID  string
	Name string
}

// BuildDocument turns a validated selection into the document to persist.
// Free-text fields are trimmed, tags and keywords de-duplicated, and the
// collection resolved from the selection's key. The ID is left for the store.
func BuildDocument(sel Selection, by Uploader, now time.Time) models.Resource {
	title := strings.TrimSpace(sel.Title)
	subject := sel.Subject.Value()

	doc := models.Resource{
		Collection:   sel.Collection(),
		ResourceType: sel.ResourceType,
		MainCategory: sel.MainCategory,
		ContentType:  sel.ContentType,
		Province:     sel.Province,
		ClassLevel:   sel.ClassLevel,
		Board:        sel.Board.Value(),
		Subject:      subject,
		Chapter:      sel.Chapter.Value(),
		Year:         strings.TrimSpace(sel.Year),

		Title:         title,
		TitleCI:       text.Fold(title),
		Slug:          Slugify(title),
		Description:   strings.TrimSpace(sel.Description),
		Tags:          trimmedSet(sel.Tags),
		FocusKeywords: trimmedSet(sel.FocusKeywords),

		URL:      strings.TrimSpace(sel.URL),
		TestType: strings.TrimSpace(sel.TestType),

		Status:       models.StatusActive,
		UploaderUID:  by.UID,
		UploaderName: by.Name,
		CreatedAt:    now.UTC(),
	}
	if subject != "" {
		doc.SubjectCI = text.Fold(subject)
	}
	if sel.File != nil {
		doc.FilePath = sel.File.Path
		doc.FileName = sel.File.Name
		doc.FileSize = sel.File.Size
	}
	if sel.ContentType == taxonomy.ContentQuiz && sel.Quiz != nil {
		doc.Quiz = &models.Quiz{
			Question:      strings.TrimSpace(sel.Quiz.Question),
			Options:       trimmedSet(sel.Quiz.Options),
			CorrectOption: strings.TrimSpace(sel.Quiz.CorrectOption),
		}
	}
	if sel.ContentType != taxonomy.ContentTest {
		doc.TestType = ""
	}
	return doc
}

// Slugify lowercases s and joins its letter and digit runs with hyphens.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(text.Fold(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}

// trimmedSet trims each value and drops blanks and case-insensitive repeats,
// keeping first occurrences in order. It returns nil when nothing is left.
func trimmedSet(in []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		k := strings.ToLower(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}
