package tui

import "github.com/NeonGeckoCom/neon-hub-config/models"

// NavigateTo switches the active page of [RootModel].
type NavigateTo struct {
	Page string
}

// LoginResult is produced by the login page once the backend answered.
type LoginResult struct {
	Username string
	Err      error
}

type baseURLSavedMsg struct {
	url string
	err error
}

type configLoadedMsg struct {
	err error
}

type sectionSavedMsg struct {
	section models.SectionKey
	err     error
	auto    bool
}

type rawLoadedMsg struct {
	target models.RawTarget
	err    error
}

type rawSavedMsg struct {
	target models.RawTarget
	err    error
}

type copiedMsg struct {
	label string
	err   error
}

type clearStatusMsg struct{}
