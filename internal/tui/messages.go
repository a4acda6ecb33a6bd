package tui

import (
	"github.com/MKhiriev/go-post-board/models"
)

type authDoneMsg struct {
	user models.User
	err  error
}

type profileLoadedMsg struct {
	profile models.Profile
	err     error
}

type profileSavedMsg struct {
	profile models.Profile
	err     error
}

type feedLoadedMsg struct {
	posts []models.Post
	err   error
}

type postLoadedMsg struct {
	post models.Post
	err  error
}

type postSavedMsg struct {
	post models.Post
	err  error
}

type postMutatedMsg struct {
	post models.Post
	err  error
}

type postDeletedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
