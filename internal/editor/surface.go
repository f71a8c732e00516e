package editor

import (
	"fmt"
	"strings"
)

// Surface translates structured editing commands into content mutations on
// one Document. Commands operate on a cursor/selection within the current
// markup; each successful command issues exactly one content SetField, so
// rapid commands apply in issuance order. The Surface never talks to the
// content store.
type Surface struct {
	doc *Document
	sel selection
}

func NewSurface(doc *Document) *Surface {
	return &Surface{doc: doc}
}

// Select positions the selection as byte offsets into the content markup.
// Offsets are clamped to the current content bounds; a collapsed selection
// is a cursor.
func (s *Surface) Select(start, end int) {
	s.sel = clampSelection(s.doc.Field(FieldContent), selection{start, end})
}

// Selection reports the current selection offsets.
func (s *Surface) Selection() (start, end int) {
	return s.sel.start, s.sel.end
}

// SetTitle feeds a plain-text title edit straight to the document.
func (s *Surface) SetTitle(text string) {
	_ = s.doc.SetField(FieldTitle, text)
}

// ToggleBold wraps or unwraps the selection in <strong> tags. Re-applying
// the command on an unchanged selection restores the prior markup.
func (s *Surface) ToggleBold() {
	s.applyInline("strong")
}

// ToggleItalic wraps or unwraps the selection in <em> tags.
func (s *Surface) ToggleItalic() {
	s.applyInline("em")
}

func (s *Surface) applyInline(tag string) {
	content := s.doc.Field(FieldContent)
	out, sel := toggleInline(content, s.sel, tag)
	s.sel = sel
	_ = s.doc.SetField(FieldContent, out)
}

// ToggleHeading switches the block enclosing the selection to the given
// heading level, or back to a paragraph when it already has that level.
// Outside any recognized block the selection itself is wrapped.
func (s *Surface) ToggleHeading(level int) error {
	if level < 1 || level > 3 {
		return fmt.Errorf("unsupported heading level %d", level)
	}
	target := fmt.Sprintf("h%d", level)
	content := s.doc.Field(FieldContent)
	s.sel = clampSelection(content, s.sel)

	blk, ok := enclosingBlock(content, s.sel.start)
	if !ok {
		out, sel := toggleInline(content, s.sel, target)
		s.sel = sel
		return s.doc.SetField(FieldContent, out)
	}

	newTag := target
	if blk.tag == target {
		newTag = "p"
	}
	out, delta := retagBlock(content, blk, newTag)
	if s.sel.start >= blk.innerStart {
		s.sel.start += delta
		s.sel.end += delta
	}
	s.sel = clampSelection(out, s.sel)
	return s.doc.SetField(FieldContent, out)
}

// SetLink wraps the selection in an anchor pointing at url. An empty url
// means the user cancelled the prompt: nothing happens and no error is
// returned.
func (s *Surface) SetLink(url string) {
	if url == "" {
		return
	}
	content := s.doc.Field(FieldContent)
	s.sel = clampSelection(content, s.sel)
	open := `<a href="` + url + `">`
	inner := content[s.sel.start:s.sel.end]
	out := content[:s.sel.start] + open + inner + "</a>" + content[s.sel.end:]
	s.sel = selection{s.sel.start + len(open), s.sel.end + len(open)}
	_ = s.doc.SetField(FieldContent, out)
}

// UnsetLink removes the anchor enclosing the selection, keeping its text.
// Without an enclosing anchor it is a no-op.
func (s *Surface) UnsetLink() {
	content := s.doc.Field(FieldContent)
	s.sel = clampSelection(content, s.sel)

	openStart := strings.LastIndex(content[:s.sel.start], "<a ")
	if openStart < 0 {
		return
	}
	openEnd := strings.Index(content[openStart:], ">")
	if openEnd < 0 {
		return
	}
	openEnd += openStart + 1
	closeStart := strings.Index(content[s.sel.end:], "</a>")
	if closeStart < 0 {
		return
	}
	closeStart += s.sel.end
	if openEnd > s.sel.start {
		return
	}

	out := content[:openStart] + content[openEnd:closeStart] + content[closeStart+len("</a>"):]
	shift := openEnd - openStart
	s.sel = clampSelection(out, selection{s.sel.start - shift, s.sel.end - shift})
	_ = s.doc.SetField(FieldContent, out)
}

// InsertYoutube places an embedded video at the cursor. Watch and short-link
// URLs are normalized to the embed form; an empty url is a cancelled prompt
// and a no-op.
func (s *Surface) InsertYoutube(url string) {
	if url == "" {
		return
	}
	fragment := `<iframe class="youtube-embed" src="` + youtubeEmbedURL(url) + `" allowfullscreen></iframe>`
	s.insertFragment(fragment)
}

// InsertHorizontalRule places a rule at the cursor.
func (s *Surface) InsertHorizontalRule() {
	s.insertFragment("<hr>")
}

func (s *Surface) insertFragment(fragment string) {
	content := s.doc.Field(FieldContent)
	s.sel = clampSelection(content, s.sel)
	out := insertAt(content, fragment, s.sel.end)
	pos := s.sel.end + len(fragment)
	s.sel = selection{pos, pos}
	_ = s.doc.SetField(FieldContent, out)
}
