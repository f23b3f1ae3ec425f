// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/comet-tui/internal/commands"
)

// =============================================================================
// HELP PAGES
// =============================================================================

// helpOverview builds the top-level help page.
func helpOverview(reg *commands.Registry) string {
	var b strings.Builder
	b.WriteString("# comet help\n\n")
	b.WriteString("Available categories:\n\n")
	for _, cat := range reg.Categories() {
		b.WriteString("- " + cat + "\n")
	}
	b.WriteString("\n")
	b.WriteString("Type `help <command>` for more details on a command.\n\n")
	b.WriteString("Type `help <category>` to list commands in a category.\n\n")
	b.WriteString("Type `search <keyword>` to find commands.\n")
	return b.String()
}

// helpCommand builds the detail page for one command.
func helpCommand(d *commands.Descriptor) string {
	var b strings.Builder
	b.WriteString("# " + d.Name + "\n\n")
	b.WriteString(d.Description + "\n\n")
	b.WriteString("**Category:** " + d.Category + "\n\n")
	b.WriteString("**Parameters:**\n\n")
	for _, p := range d.Params {
		line := "- `--" + p.Name + "` (" + string(p.Type) + ")"
		if p.Required {
			line += " (Required)"
		}
		if p.Post {
			line += " (POST data)"
		}
		b.WriteString(line + "\n")
	}
	if d.Example != "" {
		b.WriteString("\n**Example:** `" + d.Example + "`\n")
	}
	return b.String()
}

// helpCategory builds the page listing one category's commands.
func helpCategory(reg *commands.Registry, category string) string {
	var b strings.Builder
	b.WriteString("# " + category + "\n\n")
	b.WriteString("Commands in category '" + category + "':\n\n")
	for _, name := range reg.CommandsInCategory(category) {
		d := reg.Lookup(name)
		b.WriteString("- `" + name + "` - " + d.Description + "\n")
	}
	return b.String()
}

// helpSearch builds the result page for the search builtin.
func helpSearch(reg *commands.Registry, keyword string) string {
	cmds, cats := reg.Search(keyword)
	if len(cmds) == 0 && len(cats) == 0 {
		return "No commands or categories found matching '" + keyword + "'.\n"
	}

	var b strings.Builder
	if len(cmds) > 0 {
		b.WriteString("Commands matching '" + keyword + "':\n\n")
		for _, name := range cmds {
			b.WriteString("- `" + name + "` - " + reg.Lookup(name).Description + "\n")
		}
	}
	if len(cats) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("Categories matching '" + keyword + "':\n\n")
		for _, cat := range cats {
			b.WriteString("- " + cat + "\n")
		}
	}
	return b.String()
}

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// newMarkdownRenderer builds the glamour renderer used for help pages.
// A nil renderer means glamour could not initialize; callers fall back
// to the raw markdown text.
func newMarkdownRenderer(width int) *glamour.TermRenderer {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	return r
}

// renderMarkdown renders a help page for the transcript, falling back
// to the raw text if the renderer is unavailable.
func renderMarkdown(r *glamour.TermRenderer, content string) string {
	if r == nil {
		return content
	}
	out, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(out, "\n")
}
