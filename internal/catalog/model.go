package catalog

import "strings"

// Record is one catalog entry (one row of the Project Gutenberg sheet).
type Record struct {
	ID       int
	Author   string
	Title    string
	Language string
}

// Field identifies one searchable column of a Record.
type Field string

const (
	FieldID       Field = "id"
	FieldAuthor   Field = "author"
	FieldTitle    Field = "title"
	FieldLanguage Field = "language"
)

// StringValue returns the record's value for a string field. The ID field
// has no string value; callers compare it numerically.
func (r Record) StringValue(f Field) string {
	switch f {
	case FieldAuthor:
		return r.Author
	case FieldTitle:
		return r.Title
	case FieldLanguage:
		return r.Language
	}
	return ""
}

// ByID returns the first record with the given id, or nil.
func ByID(records []Record, id int) *Record {
	for i := range records {
		if records[i].ID == id {
			return &records[i]
		}
	}
	return nil
}

// CleanTitle strips embedded newlines that some sheet rows carry.
func (r Record) CleanTitle() string {
	return strings.ReplaceAll(r.Title, "\n", "")
}
