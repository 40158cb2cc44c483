// internal/domain/models/resource.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resource is one uploaded item (past paper, notes, lecture link, quiz...).
//
// Resources do not share a collection: each is written to the collection the
// taxonomy resolves for its category, province, class, and content type, and
// Collection records that name on the document itself.
type Resource struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id" firestore:"-"`
	Collection string             `bson:"collection" json:"collection" firestore:"collection"`

	ResourceType string `bson:"resource_type" json:"resource_type" firestore:"resource_type"` // PDF | Lecture
	MainCategory string `bson:"main_category" json:"main_category" firestore:"main_category"`
	ContentType  string `bson:"content_type" json:"content_type" firestore:"content_type"`
	Province     string `bson:"province,omitempty" json:"province,omitempty" firestore:"province,omitempty"`
	ClassLevel   string `bson:"class_level,omitempty" json:"class_level,omitempty" firestore:"class_level,omitempty"`
	Board        string `bson:"board,omitempty" json:"board,omitempty" firestore:"board,omitempty"`
	Subject      string `bson:"subject,omitempty" json:"subject,omitempty" firestore:"subject,omitempty"`
	SubjectCI    string `bson:"subject_ci,omitempty" json:"subject_ci,omitempty" firestore:"subject_ci,omitempty"`
	Chapter      string `bson:"chapter,omitempty" json:"chapter,omitempty" firestore:"chapter,omitempty"`
	Year         string `bson:"year,omitempty" json:"year,omitempty" firestore:"year,omitempty"`

	Title         string   `bson:"title" json:"title" firestore:"title"`
	TitleCI       string   `bson:"title_ci" json:"title_ci" firestore:"title_ci"` // lowercase, diacritics-stripped
	Slug          string   `bson:"slug" json:"slug" firestore:"slug"`
	Description   string   `bson:"description,omitempty" json:"description,omitempty" firestore:"description,omitempty"`
	Tags          []string `bson:"tags,omitempty" json:"tags,omitempty" firestore:"tags,omitempty"`
	FocusKeywords []string `bson:"focus_keywords,omitempty" json:"focus_keywords,omitempty" firestore:"focus_keywords,omitempty"`

	// Content source: a lecture link or an uploaded file (FilePath set).
	URL      string `bson:"url,omitempty" json:"url,omitempty" firestore:"url,omitempty"`
	FilePath string `bson:"file_path,omitempty" json:"file_path,omitempty" firestore:"file_path,omitempty"`
	FileName string `bson:"file_name,omitempty" json:"file_name,omitempty" firestore:"file_name,omitempty"`
	FileSize int64  `bson:"file_size,omitempty" json:"file_size,omitempty" firestore:"file_size,omitempty"`

	Quiz     *Quiz  `bson:"quiz,omitempty" json:"quiz,omitempty" firestore:"quiz,omitempty"`
	TestType string `bson:"test_type,omitempty" json:"test_type,omitempty" firestore:"test_type,omitempty"`

	Status string `bson:"status" json:"status" firestore:"status"` // "active" or "disabled"

	UploaderUID  string `bson:"uploader_uid" json:"uploader_uid" firestore:"uploader_uid"`
	UploaderName string `bson:"uploader_name,omitempty" json:"uploader_name,omitempty" firestore:"uploader_name,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at" firestore:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty" firestore:"updated_at,omitempty"`
}

// Quiz is the single multiple-choice question carried by Quiz resources.
type Quiz struct {
	Question      string   `bson:"question" json:"question" firestore:"question"`
	Options       []string `bson:"options" json:"options" firestore:"options"`
	CorrectOption string   `bson:"correct_option" json:"correct_option" firestore:"correct_option"`
}

// HasFile returns true if this resource has an uploaded file.
func (r *Resource) HasFile() bool {
	return r.FilePath != ""
}

// HasURL returns true if this resource links to external content.
func (r *Resource) HasURL() bool {
	return r.URL != ""
}
