// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SaveStatus is the observable persistence state of a [Draft].
type SaveStatus string

const (
	SaveStatusIdle   SaveStatus = "idle"
	SaveStatusSaving SaveStatus = "saving"
	SaveStatusSaved  SaveStatus = "saved"
	SaveStatusError  SaveStatus = "error"
)

// DraftField names an editable field of a [Draft].
type DraftField string

const (
	FieldTitle   DraftField = "title"
	FieldContent DraftField = "content"
)

// Draft is the client-local, possibly unsaved state of the note being edited.
// ID stays empty until the first successful create.
type Draft struct {
	ID      string
	Title   string
	Content string
}

// IsNew reports whether the draft has never been persisted.
func (d Draft) IsNew() bool {
	return d.ID == ""
}

// IsEmpty reports whether both title and content are empty.
func (d Draft) IsEmpty() bool {
	return d.Title == "" && d.Content == ""
}

// Input converts the draft into the create/update request body.
func (d Draft) Input() NoteInput {
	return NoteInput{Title: d.Title, Content: d.Content}
}
