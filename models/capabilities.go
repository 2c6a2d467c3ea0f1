// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NoteActions is the set of actions a list view offers on its items.
// Views pass it down explicitly instead of wiring optional handlers.
type NoteActions struct {
	Open       bool
	Edit       bool
	Delete     bool
	HardDelete bool
	Restore    bool
	Share      bool
}

// ActionsFor returns the capability set of the list view for scope.
// Shared notes can only be edited with write permission, which is checked per
// item with [NoteActions.ForNote].
func ActionsFor(scope ListScope) NoteActions {
	switch scope {
	case ScopeOwn:
		return NoteActions{Open: true, Edit: true, Delete: true, Share: true}
	case ScopeShared:
		return NoteActions{Open: true, Edit: true}
	case ScopeTrash:
		return NoteActions{HardDelete: true, Restore: true}
	default:
		return NoteActions{}
	}
}

// ForNote narrows a for a single note: editing a shared note requires write
// permission.
func (a NoteActions) ForNote(n Note) NoteActions {
	if n.Permission == PermissionRead {
		a.Edit = false
	}
	return a
}
