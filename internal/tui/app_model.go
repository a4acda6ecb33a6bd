// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-post-board/internal/adapter"
	"github.com/MKhiriev/go-post-board/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type screen int

const (
	screenMenu screen = iota
	screenLogin
	screenRegister
	screenProfile
	screenFeed
	screenDetail
	screenCompose
	screenComment
)

type appModel struct {
	ctx           context.Context
	server        adapter.ServerAdapter
	currentScreen screen

	user    models.User
	profile models.Profile

	menuIdx int

	loginForm    form
	registerForm form
	profileForm  form
	composeForm  form
	commentForm  form

	posts      []models.Post
	feedCursor int

	detail        models.Post
	commentCursor int

	status     string
	errMsg     string
	quitByUser bool
}

func newAppModel(ctx context.Context, server adapter.ServerAdapter) appModel {
	return appModel{
		ctx:    ctx,
		server: server,
		loginForm: newForm(
			formField{label: "Login", placeholder: "login", charLimit: 64},
			formField{label: "Password", placeholder: "password", charLimit: 256, masked: true},
		),
		registerForm: newForm(
			formField{label: "Login", placeholder: "login", charLimit: 64},
			formField{label: "Name", placeholder: "display name", charLimit: 64},
			formField{label: "Password", placeholder: "password", charLimit: 256, masked: true},
		),
		profileForm: newForm(
			formField{label: "Handle", placeholder: "handle", charLimit: 64},
			formField{label: "Bio", placeholder: "a line about you", charLimit: 200},
			formField{label: "Avatar", placeholder: "avatar URL (optional)", charLimit: 200},
		),
		composeForm: newForm(
			formField{label: "Text", placeholder: "what's on your mind?", charLimit: 300},
		),
		commentForm: newForm(
			formField{label: "Comment", placeholder: "your comment", charLimit: 300},
		),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		m.quitByUser = true
		return m, tea.Quit
	}

	switch typed := msg.(type) {
	case authDoneMsg:
		return m.onAuthDone(typed)
	case profileLoadedMsg:
		return m.onProfileLoaded(typed)
	case profileSavedMsg:
		return m.onProfileSaved(typed)
	case feedLoadedMsg:
		return m.onFeedLoaded(typed)
	case postLoadedMsg:
		return m.onPostLoaded(typed)
	case postSavedMsg:
		return m.onPostSaved(typed)
	case postMutatedMsg:
		return m.onPostMutated(typed)
	case postDeletedMsg:
		return m.onPostDeleted(typed)
	case copiedMsg:
		return m.withStatus("copied to clipboard")
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	switch m.currentScreen {
	case screenMenu:
		return m.updateMenu(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenProfile:
		return m.updateProfile(msg)
	case screenFeed:
		return m.updateFeed(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenCompose:
		return m.updateCompose(msg)
	case screenComment:
		return m.updateComment(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	switch m.currentScreen {
	case screenMenu:
		return m.viewMenu()
	case screenLogin:
		return renderPage("SIGN IN", m.loginForm.view("Sign in"),
			"esc: back │ tab: next field │ enter: submit")
	case screenRegister:
		return renderPage("CREATE ACCOUNT", m.registerForm.view("Register"),
			"esc: back │ tab: next field │ enter: submit")
	case screenProfile:
		return renderPage("CREATE PROFILE", m.profileForm.view("Save profile"),
			"tab: next field │ enter: submit")
	case screenFeed:
		return m.viewFeed()
	case screenDetail:
		return m.viewDetail()
	case screenCompose:
		return renderPage("NEW POST", m.composeForm.view("Publish"),
			"esc: back │ enter: publish")
	case screenComment:
		return renderPage("NEW COMMENT", m.commentForm.view("Comment"),
			"esc: back │ enter: submit")
	}
	return renderPage("POST BOARD", "", "")
}

// message handlers

func (m appModel) onAuthDone(msg authDoneMsg) (tea.Model, tea.Cmd) {
	activeForm := &m.loginForm
	if m.currentScreen == screenRegister {
		activeForm = &m.registerForm
	}

	activeForm.submitting = false
	if msg.err != nil {
		activeForm.errMsg = humanizeServerUnavailableError(msg.err)
		return m, nil
	}

	m.user = msg.user
	return m, m.cmdLoadProfile()
}

func (m appModel) onProfileLoaded(msg profileLoadedMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.err, adapter.ErrNotFound) {
		m.profileForm.reset()
		m.currentScreen = screenProfile
		return m, nil
	}
	if msg.err != nil {
		m.errMsg = humanizeServerUnavailableError(msg.err)
		return m, nil
	}

	m.profile = msg.profile
	m.currentScreen = screenFeed
	return m, m.cmdLoadFeed()
}

func (m appModel) onProfileSaved(msg profileSavedMsg) (tea.Model, tea.Cmd) {
	m.profileForm.submitting = false
	if msg.err != nil {
		m.profileForm.errMsg = humanizeServerUnavailableError(msg.err)
		return m, nil
	}

	m.profile = msg.profile
	m.currentScreen = screenFeed
	return m, m.cmdLoadFeed()
}

func (m appModel) onFeedLoaded(msg feedLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errMsg = humanizeServerUnavailableError(msg.err)
		return m, nil
	}

	m.errMsg = ""
	m.posts = msg.posts
	if m.feedCursor >= len(m.posts) {
		m.feedCursor = len(m.posts) - 1
	}
	if m.feedCursor < 0 {
		m.feedCursor = 0
	}
	return m, nil
}

func (m appModel) onPostLoaded(msg postLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errMsg = humanizeServerUnavailableError(msg.err)
		return m, nil
	}

	m.errMsg = ""
	m.detail = msg.post
	m.commentCursor = 0
	m.currentScreen = screenDetail
	return m, nil
}

func (m appModel) onPostSaved(msg postSavedMsg) (tea.Model, tea.Cmd) {
	m.composeForm.submitting = false
	if msg.err != nil {
		m.composeForm.errMsg = humanizeServerUnavailableError(msg.err)
		return m, nil
	}

	m.composeForm.reset()
	m.currentScreen = screenFeed
	model, cmd := m.withStatus("post published")
	return model, tea.Batch(cmd, m.cmdLoadFeed())
}

func (m appModel) onPostMutated(msg postMutatedMsg) (tea.Model, tea.Cmd) {
	m.commentForm.submitting = false
	if msg.err != nil {
		if m.currentScreen == screenComment {
			m.commentForm.errMsg = humanizeServerUnavailableError(msg.err)
		} else {
			m.errMsg = humanizeServerUnavailableError(msg.err)
		}
		return m, nil
	}

	m.errMsg = ""
	m.applyPost(msg.post)
	if m.currentScreen == screenComment {
		m.commentForm.reset()
		m.currentScreen = screenDetail
	}
	if m.commentCursor >= len(m.detail.Comments) {
		m.commentCursor = len(m.detail.Comments) - 1
	}
	if m.commentCursor < 0 {
		m.commentCursor = 0
	}
	return m, nil
}

func (m appModel) onPostDeleted(msg postDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errMsg = humanizeServerUnavailableError(msg.err)
		return m, nil
	}

	m.currentScreen = screenFeed
	model, cmd := m.withStatus("post deleted")
	return model, tea.Batch(cmd, m.cmdLoadFeed())
}

// applyPost replaces the post in both the detail view and the cached feed.
func (m *appModel) applyPost(post models.Post) {
	if m.detail.ID == post.ID {
		m.detail = post
	}
	for i := range m.posts {
		if m.posts[i].ID == post.ID {
			m.posts[i] = post
			return
		}
	}
}

func (m appModel) withStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// screen updates

func (m appModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.menuIdx > 0 {
			m.menuIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.menuIdx < 1 {
			m.menuIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.menuIdx == 0 {
			m.loginForm.reset()
			m.currentScreen = screenLogin
		} else {
			m.registerForm.reset()
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.currentScreen = screenMenu
			return m, nil
		case "tab":
			m.loginForm.focusNext()
			return m, nil
		case "shift+tab":
			m.loginForm.focusPrev()
			return m, nil
		case "enter":
			if m.loginForm.submitting {
				return m, nil
			}

			login := m.loginForm.value(0)
			pass := m.loginForm.rawValue(1)
			if login == "" || pass == "" {
				m.loginForm.errMsg = "login and password are required"
				return m, nil
			}

			m.loginForm.errMsg = ""
			m.loginForm.submitting = true
			return m, m.cmdLogin(login, pass)
		}
	}

	cmd := m.loginForm.updateFocused(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.currentScreen = screenMenu
			return m, nil
		case "tab":
			m.registerForm.focusNext()
			return m, nil
		case "shift+tab":
			m.registerForm.focusPrev()
			return m, nil
		case "enter":
			if m.registerForm.submitting {
				return m, nil
			}

			login := m.registerForm.value(0)
			name := m.registerForm.value(1)
			pass := m.registerForm.rawValue(2)
			if login == "" || name == "" || pass == "" {
				m.registerForm.errMsg = "login, name and password are required"
				return m, nil
			}

			m.registerForm.errMsg = ""
			m.registerForm.submitting = true
			return m, m.cmdRegister(login, name, pass)
		}
	}

	cmd := m.registerForm.updateFocused(msg)
	return m, cmd
}

func (m appModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "tab":
			m.profileForm.focusNext()
			return m, nil
		case "shift+tab":
			m.profileForm.focusPrev()
			return m, nil
		case "enter":
			if m.profileForm.submitting {
				return m, nil
			}

			handle := m.profileForm.value(0)
			if handle == "" {
				m.profileForm.errMsg = "handle is required"
				return m, nil
			}

			m.profileForm.errMsg = ""
			m.profileForm.submitting = true
			return m, m.cmdCreateProfile(models.Profile{
				Handle: handle,
				Bio:    m.profileForm.value(1),
				Avatar: m.profileForm.value(2),
			})
		}
	}

	cmd := m.profileForm.updateFocused(msg)
	return m, cmd
}

func (m appModel) updateFeed(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.feedCursor > 0 {
			m.feedCursor--
		}
	case key.Matches(keyMsg, keys.down):
		if m.feedCursor < len(m.posts)-1 {
			m.feedCursor++
		}
	case key.Matches(keyMsg, keys.enter):
		if post, ok := m.selectedPost(); ok {
			return m, m.cmdLoadPost(post.ID)
		}
	case key.Matches(keyMsg, keys.newPost):
		m.composeForm.reset()
		m.currentScreen = screenCompose
	case key.Matches(keyMsg, keys.refresh):
		return m, m.cmdLoadFeed()
	case key.Matches(keyMsg, keys.like):
		if post, ok := m.selectedPost(); ok {
			return m, m.cmdLike(post.ID)
		}
	case key.Matches(keyMsg, keys.unlike):
		if post, ok := m.selectedPost(); ok {
			return m, m.cmdUnlike(post.ID)
		}
	case key.Matches(keyMsg, keys.delete):
		if post, ok := m.selectedPost(); ok && post.UserID == m.user.UserID {
			return m, m.cmdDeletePost(post.ID)
		}
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenFeed
	case key.Matches(keyMsg, keys.up):
		if m.commentCursor > 0 {
			m.commentCursor--
		}
	case key.Matches(keyMsg, keys.down):
		if m.commentCursor < len(m.detail.Comments)-1 {
			m.commentCursor++
		}
	case key.Matches(keyMsg, keys.like):
		return m, m.cmdLike(m.detail.ID)
	case key.Matches(keyMsg, keys.unlike):
		return m, m.cmdUnlike(m.detail.ID)
	case key.Matches(keyMsg, keys.comment):
		m.commentForm.reset()
		m.currentScreen = screenComment
	case key.Matches(keyMsg, keys.delete):
		if len(m.detail.Comments) > 0 {
			comment := m.detail.Comments[m.commentCursor]
			return m, m.cmdDeleteComment(m.detail.ID, comment.ID)
		}
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopy(m.detail.Text)
	}

	return m, nil
}

func (m appModel) updateCompose(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.currentScreen = screenFeed
			return m, nil
		case "enter":
			if m.composeForm.submitting {
				return m, nil
			}

			text := m.composeForm.value(0)
			if text == "" {
				m.composeForm.errMsg = "post text is required"
				return m, nil
			}

			m.composeForm.errMsg = ""
			m.composeForm.submitting = true
			return m, m.cmdCreatePost(text)
		}
	}

	cmd := m.composeForm.updateFocused(msg)
	return m, cmd
}

func (m appModel) updateComment(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.currentScreen = screenDetail
			return m, nil
		case "enter":
			if m.commentForm.submitting {
				return m, nil
			}

			text := m.commentForm.value(0)
			if text == "" {
				m.commentForm.errMsg = "comment text is required"
				return m, nil
			}

			m.commentForm.errMsg = ""
			m.commentForm.submitting = true
			return m, m.cmdAddComment(m.detail.ID, text)
		}
	}

	cmd := m.commentForm.updateFocused(msg)
	return m, cmd
}

func (m appModel) selectedPost() (models.Post, bool) {
	if len(m.posts) == 0 || m.feedCursor < 0 || m.feedCursor >= len(m.posts) {
		return models.Post{}, false
	}
	return m.posts[m.feedCursor], true
}

// async commands

func (m appModel) cmdLogin(login, pass string) tea.Cmd {
	ctx, server := m.ctx, m.server
	return func() tea.Msg {
		user, err := server.Login(ctx, models.User{Login: login, Password: pass})
		return authDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdRegister(login, name, pass string) tea.Cmd {
	ctx, server := m.ctx, m.server
	return func() tea.Msg {
		user, err := server.Register(ctx, models.User{Login: login, Name: name, Password: pass})
		return authDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdLoadProfile() tea.Cmd {
	ctx, server := m.ctx, m.server
	return func() tea.Msg {
		profile, err := server.GetOwnProfile(ctx)
		return profileLoadedMsg{profile: profile, err: err}
	}
}

func (m appModel) cmdCreateProfile(profile models.Profile) tea.Cmd {
	ctx, server := m.ctx, m.server
	return func() tea.Msg {
		created, err := server.CreateProfile(ctx, profile)
		return profileSavedMsg{profile: created, err: err}
	}
}

func (m appModel) cmdLoadFeed() tea.Cmd {
	ctx, server := m.ctx, m.server
	return func() tea.Msg {
		posts, err := server.ListPosts(ctx)
		return feedLoadedMsg{posts: posts, err: err}
	}
}

func (m appModel) cmdLoadPost(id int64) tea.Cmd {
	ctx, server := m.ctx, m.server
	return func() tea.Msg {
		post, err := server.GetPost(ctx, id)
		return postLoadedMsg{post: post, err: err}
	}
}

func (m appModel) cmdCreatePost(text string) tea.Cmd {
	ctx, server := m.ctx, m.server
	profile := m.profile
	return func() tea.Msg {
		post, err := server.CreatePost(ctx, models.PostInput{
			Text:   text,
			Name:   profile.Handle,
			Avatar: profile.Avatar,
		})
		return postSavedMsg{post: post, err: err}
	}
}

func (m appModel) cmdDeletePost(id int64) tea.Cmd {
	ctx, server := m.ctx, m.server
	return func() tea.Msg {
		return postDeletedMsg{err: server.DeletePost(ctx, id)}
	}
}

func (m appModel) cmdLike(id int64) tea.Cmd {
	ctx, server := m.ctx, m.server
	return func() tea.Msg {
		post, err := server.LikePost(ctx, id)
		return postMutatedMsg{post: post, err: err}
	}
}

func (m appModel) cmdUnlike(id int64) tea.Cmd {
	ctx, server := m.ctx, m.server
	return func() tea.Msg {
		post, err := server.UnlikePost(ctx, id)
		return postMutatedMsg{post: post, err: err}
	}
}

func (m appModel) cmdAddComment(id int64, text string) tea.Cmd {
	ctx, server := m.ctx, m.server
	profile := m.profile
	return func() tea.Msg {
		post, err := server.AddComment(ctx, id, models.PostInput{
			Text:   text,
			Name:   profile.Handle,
			Avatar: profile.Avatar,
		})
		return postMutatedMsg{post: post, err: err}
	}
}

func (m appModel) cmdDeleteComment(id int64, commentID string) tea.Cmd {
	ctx, server := m.ctx, m.server
	return func() tea.Msg {
		post, err := server.DeleteComment(ctx, id, commentID)
		return postMutatedMsg{post: post, err: err}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		_ = clipboard.WriteAll(text)
		return copiedMsg{}
	}
}
