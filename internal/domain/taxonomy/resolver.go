package taxonomy

import "sort"

var subjectContent = map[string]bool{
	ContentPastPapers:    true,
	ContentGuessPapers:   true,
	ContentLectures:      true,
	ContentNotes:         true,
	ContentPairingScheme: true,
	ContentQuiz:          true,
	ContentTest:          true,
	ContentTextBooks:     true,
}

var chapterContent = map[string]bool{
	ContentLectures: true,
	ContentNotes:    true,
	ContentQuiz:     true,
}

var yearContent = map[string]bool{
	ContentPastPapers: true,
	ContentDateSheet:  true,
	ContentGazette:    true,
}

// ListContentTypes returns the content types a category offers for the given
// resource type, sorted alphabetically. Lectures are the only content type
// for a Lecture; every other content type is a PDF. Unknown categories yield
// an empty list.
func ListContentTypes(category, resourceType string) []string {
	c, ok := categories[category]
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(c.ContentTypes))
	for name := range c.ContentTypes {
		switch resourceType {
		case ResourceLecture:
			if name != ContentLectures {
				continue
			}
		case ResourcePDF:
			if name == ContentLectures {
				continue
			}
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ListProvinces returns the provinces to offer for a category and class.
// A category-wide list wins and ignores classLevel; otherwise a per-class
// list applies when one exists. An empty result means no province step.
func ListProvinces(category, classLevel string) []string {
	c, ok := categories[category]
	if !ok {
		return []string{}
	}
	if len(c.Provinces) > 0 {
		return clone(c.Provinces)
	}
	if p, ok := c.ProvincesFor[classLevel]; ok {
		return clone(p)
	}
	return []string{}
}

// HasProvinceStep reports whether any class in the category can ask for a
// province.
func HasProvinceStep(category string) bool {
	c, ok := categories[category]
	return ok && (len(c.Provinces) > 0 || len(c.ProvincesFor) > 0)
}

// ListClasses returns the category's classes in display order.
func ListClasses(category string) []string {
	return clone(categories[category].Classes)
}

// RequiresBoard reports whether uploads of contentType in category must name
// an examination board.
func RequiresBoard(category, contentType string) bool {
	return categories[category].ContentTypes[contentType]
}

// RequiresSubject reports whether contentType is filed under a subject.
func RequiresSubject(contentType string) bool {
	return subjectContent[contentType]
}

// RequiresChapter reports whether contentType is filed under a chapter. That
// only applies once a concrete subject has been chosen.
func RequiresChapter(contentType string, subject Choice) bool {
	return chapterContent[contentType] && subject.IsConcrete()
}

// RequiresYear reports whether contentType is filed under an exam year.
func RequiresYear(contentType string) bool {
	return yearContent[contentType]
}

// Requirements bundles the four field predicates for one selection.
type Requirements struct {
	Board   bool `json:"board"`
	Subject bool `json:"subject"`
	Chapter bool `json:"chapter"`
	Year    bool `json:"year"`
}

// RequirementsFor evaluates every Requires* predicate at once.
func RequirementsFor(category, contentType string, subject Choice) Requirements {
	return Requirements{
		Board:   RequiresBoard(category, contentType),
		Subject: RequiresSubject(contentType),
		Chapter: RequiresChapter(contentType, subject),
		Year:    RequiresYear(contentType),
	}
}
