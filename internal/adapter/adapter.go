// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

// ServerAdapter is the full backend API used by the client services.
type ServerAdapter interface {
	AuthAdapter
	NotesAdapter
	AttachmentsAdapter
	SharesAdapter
	ProfileAdapter
}
