package tui

import "github.com/MKhiriev/vault-notes/models"

// NavigateTo switches the active page of [RootModel]. Payload, when set, is
// delivered to the new page as the next message.
type NavigateTo struct {
	Page    string
	Payload any
}

// SignInResult is produced by every sign-in flow of [SignInModel].
type SignInResult struct {
	Session models.Session
	Err     error
}

type federatedURLMsg struct {
	provider models.FederatedProvider
	signIn   models.FederatedSignIn
	err      error
}

type notesLoadedMsg struct {
	page models.NotesPage
	err  error
}

type noteActionMsg struct {
	status    string
	removedID string
	err       error
}

type reloadNotesMsg struct{}

type openEditorMsg struct {
	note     *models.Note
	readOnly bool
}

type noteLoadedMsg struct {
	note     models.Note
	readOnly bool
	err      error
}

type openProfileMsg struct{}

type profileLoadedMsg struct {
	user   models.User
	status string
	err    error
}

type savedMsg struct {
	err error
}

type uploadsStartedMsg struct {
	tasks []models.UploadTask
	err   error
}

type attachmentsMsg struct {
	status string
	err    error
}

type logoutMsg struct{}

type copiedMsg struct {
	what string
	err  error
}

type editorTickMsg struct {
	gen int
}

type clearStatusMsg struct{}
