// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Permission is the access level granted to a share recipient.
type Permission string

const (
	PermissionRead  Permission = "read"
	PermissionWrite Permission = "write"
)

// Valid reports whether p is one of the known permission levels.
func (p Permission) Valid() bool {
	return p == PermissionRead || p == PermissionWrite
}

// Note is a note as returned by the backend.
type Note struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	AuthorID    string       `json:"author_id"`
	Author      *User        `json:"author,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
	Shares      []Share      `json:"shares,omitempty"`

	// Permission is the caller's access level for notes shared with them.
	// Empty for the caller's own notes.
	Permission Permission `json:"permission,omitempty"`

	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// InTrash reports whether the note was soft-deleted.
func (n Note) InTrash() bool {
	return n.DeletedAt != nil
}

// NoteInput is the body of the create and update calls.
type NoteInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Share is one recipient of a shared note.
type Share struct {
	UserID     string     `json:"user_id"`
	Email      string     `json:"email,omitempty"`
	Permission Permission `json:"permission"`
}

// ShareRequest is the body of the share call. Recipient is an e-mail or a
// user identifier.
type ShareRequest struct {
	Recipient  string     `json:"recipient"`
	Permission Permission `json:"permission"`
}

// ListScope selects which notes a list view shows.
type ListScope string

const (
	ScopeOwn    ListScope = "own"
	ScopeShared ListScope = "shared"
	ScopeTrash  ListScope = "trash"
)

// ListFilter holds the paging and filter parameters of the list call.
type ListFilter struct {
	Page   int
	Limit  int
	Search string
	Scope  ListScope
}

// NotesPage is one page of the list call.
type NotesPage struct {
	Notes []Note `json:"notes"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

// Pages returns the number of pages needed to show Total notes.
func (p NotesPage) Pages() int {
	if p.Limit <= 0 || p.Total == 0 {
		return 1
	}
	return (p.Total + p.Limit - 1) / p.Limit
}
