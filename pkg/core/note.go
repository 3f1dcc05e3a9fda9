package core

import "strings"

// MaxNotes is the default number of titles returned by an enumeration.
// It matches the fixed row of note buttons the store was first built for.
const MaxNotes = 5

// ReadErrorText is shown in place of note contents when a read fails.
const ReadErrorText = "<ERROR: Could not read note content>"

// Note is the central entity of the domain.
// Its Title doubles as the storage identity; Content is the exact stored text.
type Note struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Draft is the input of a create operation, before normalization.
type Draft struct {
	Title    string `validate:"required,notetitle"`
	Contents string `validate:"required"`
}

// Normalize trims surrounding whitespace from title and contents.
func (d Draft) Normalize() Draft {
	return Draft{
		Title:    strings.TrimSpace(d.Title),
		Contents: strings.TrimSpace(d.Contents),
	}
}

// Note converts a normalized draft into the note that will be stored.
func (d Draft) Note() Note {
	return Note{Title: d.Title, Content: d.Contents}
}
