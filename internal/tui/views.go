package tui

import (
	"fmt"
	"strings"
)

func (m appModel) viewMenu() string {
	items := []string{"Sign in", "Create account"}

	var b strings.Builder
	for i, item := range items {
		cursor := " "
		if i == m.menuIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %d. %s\n", cursor, i+1, item))
	}

	return renderPage("POST BOARD", strings.TrimRight(b.String(), "\n"),
		"enter: select │ ↑/↓: navigate")
}

func (m appModel) viewFeed() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString("OK: ")
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n\n")
	}

	if len(m.posts) == 0 {
		b.WriteString("the feed is empty, press n to write the first post")
	}

	for i, post := range m.posts {
		cursor := " "
		if i == m.feedCursor {
			cursor = ">"
		}

		marker := " "
		if post.UserID == m.user.UserID {
			marker = "*"
		}

		b.WriteString(fmt.Sprintf("%s %s%-14s  %-44s  ♥ %-3d  ✎ %d\n",
			cursor,
			marker,
			fitText(post.Name, 14),
			fitText(firstLine(post.Text), 44),
			len(post.Likes),
			len(post.Comments),
		))
	}

	return renderPage("FEED", strings.TrimRight(b.String(), "\n"),
		"enter: open │ n: new │ l/u: like/unlike │ d: delete own │ r: refresh │ q: quit")
}

func (m appModel) viewDetail() string {
	var b strings.Builder

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(m.detail.Name)
	b.WriteString(" · ")
	b.WriteString(m.detail.CreatedAt.Format("2006-01-02 15:04"))
	b.WriteString("\n\n")
	b.WriteString(m.detail.Text)
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("♥ %d likes", len(m.detail.Likes)))
	b.WriteString("\n\n")

	b.WriteString(viewTitle(fmt.Sprintf("Comments (%d)", len(m.detail.Comments))))
	if len(m.detail.Comments) == 0 {
		b.WriteString("no comments yet\n")
	}
	for i, comment := range m.detail.Comments {
		cursor := " "
		if i == m.commentCursor {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-14s  %s\n",
			cursor,
			fitText(comment.Name, 14),
			fitText(firstLine(comment.Text), 52),
		))
	}

	return renderPage("POST", strings.TrimRight(b.String(), "\n"),
		"esc: back │ l/u: like/unlike │ c: comment │ d: delete comment │ y: copy text")
}
