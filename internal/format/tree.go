// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package format

import (
	"strconv"
	"strings"

	"github.com/jeranaias/comet-tui/internal/ui/styles"
	"github.com/jeranaias/comet-tui/internal/util"
)

// TreeTruncateLimit is the tree renderer's string length threshold.
// Strings over it keep their first TreeTruncateLimit characters and
// gain an ellipsis marker.
const TreeTruncateLimit = 100

// =============================================================================
// TREE RENDERER
// =============================================================================

// TreeRenderer draws the response as a guide tree rooted at "root":
// non-empty objects and arrays become branches, scalars become leaves.
// Preferred for deeply nested responses where the flat block layout
// loses structure.
type TreeRenderer struct {
	styles Styles
}

// NewTreeRenderer creates a tree renderer drawing with st.
func NewTreeRenderer(st Styles) *TreeRenderer {
	return &TreeRenderer{styles: st}
}

// Render formats v as a guide tree.
func (r *TreeRenderer) Render(v *Value) string {
	lines := []string{r.styles.Key.Render("root")}
	r.walk(v, "", &lines)
	return strings.Join(lines, "\n")
}

func (r *TreeRenderer) walk(v *Value, prefix string, lines *[]string) {
	switch v.Kind {
	case KindObject:
		for i, f := range v.Fields {
			last := i == len(v.Fields)-1
			if isBranch(f.Value) {
				r.addLine(lines, prefix, last, r.styles.Key.Render(f.Key))
				r.walk(f.Value, childPrefix(prefix, last), lines)
			} else {
				r.addLine(lines, prefix, last, r.styles.Key.Render(f.Key)+": "+r.leaf(f.Value))
			}
		}
	case KindArray:
		for i, item := range v.Items {
			last := i == len(v.Items)-1
			label := r.styles.Index.Render("[" + strconv.Itoa(i) + "]")
			if isBranch(item) {
				r.addLine(lines, prefix, last, label)
				r.walk(item, childPrefix(prefix, last), lines)
			} else {
				r.addLine(lines, prefix, last, label+" "+r.leaf(item))
			}
		}
	default:
		r.addLine(lines, prefix, true, r.leaf(v))
	}
}

func (r *TreeRenderer) addLine(lines *[]string, prefix string, last bool, text string) {
	*lines = append(*lines, r.styles.Guide.Render(prefix+styles.RenderTreeLine(last))+text)
}

func (r *TreeRenderer) leaf(v *Value) string {
	switch v.Kind {
	case KindNull:
		return r.styles.Null.Render("null")
	case KindBool:
		return r.styles.Bool.Render(strconv.FormatBool(v.Bool))
	case KindNumber:
		return r.styles.Num.Render(v.Num)
	case KindString:
		switch ClassifyString(v.Str, TreeTruncateLimit) {
		case StringErrorLike:
			return r.styles.Error.Render(strconv.Quote(v.Str))
		case StringTruncated:
			truncated := util.TruncateRunesNoEllipsis(v.Str, TreeTruncateLimit) + "..."
			return r.styles.Str.Render(strconv.Quote(truncated))
		default:
			return r.styles.Str.Render(strconv.Quote(v.Str))
		}
	case KindObject:
		return "{}" // only reachable for empty composites
	case KindArray:
		return "[]"
	}
	return v.JSON()
}

// isBranch reports whether a value gets its own subtree. Empty
// composites render as leaves ({} or []).
func isBranch(v *Value) bool {
	switch v.Kind {
	case KindObject:
		return len(v.Fields) > 0
	case KindArray:
		return len(v.Items) > 0
	}
	return false
}

// childPrefix extends the guide prefix for a branch's children: a pipe
// column while siblings remain, blank once the branch was the last.
func childPrefix(prefix string, last bool) string {
	if last {
		return prefix + "   "
	}
	return prefix + styles.TreeChars.Pipe + "  "
}
