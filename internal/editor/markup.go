package editor

import "strings"

// selection is a half-open byte range [start, end) into the content markup.
type selection struct {
	start, end int
}

func clampSelection(content string, sel selection) selection {
	if sel.start < 0 {
		sel.start = 0
	}
	if sel.start > len(content) {
		sel.start = len(content)
	}
	if sel.end < 0 {
		sel.end = 0
	}
	if sel.end > len(content) {
		sel.end = len(content)
	}
	if sel.start > sel.end {
		sel.start = sel.end
	}
	return sel
}

// toggleInline wraps the selection in an inline tag pair, or removes the
// pair when the selection is already wrapped. Applying the same toggle twice
// on an unchanged selection restores the markup byte-for-byte.
func toggleInline(content string, sel selection, tag string) (string, selection) {
	open := "<" + tag + ">"
	close := "</" + tag + ">"
	sel = clampSelection(content, sel)

	// Selection sits immediately inside an existing pair: unwrap.
	if sel.start >= len(open) && sel.end+len(close) <= len(content) &&
		content[sel.start-len(open):sel.start] == open &&
		content[sel.end:sel.end+len(close)] == close {
		out := content[:sel.start-len(open)] + content[sel.start:sel.end] + content[sel.end+len(close):]
		return out, selection{sel.start - len(open), sel.end - len(open)}
	}

	// Selection includes the pair itself: strip it.
	inner := content[sel.start:sel.end]
	if strings.HasPrefix(inner, open) && strings.HasSuffix(inner, close) && len(inner) >= len(open)+len(close) {
		stripped := inner[len(open) : len(inner)-len(close)]
		out := content[:sel.start] + stripped + content[sel.end:]
		return out, selection{sel.start, sel.start + len(stripped)}
	}

	out := content[:sel.start] + open + inner + close + content[sel.end:]
	return out, selection{sel.start + len(open), sel.end + len(open)}
}

// block tags the heading command recognizes, most specific first.
var blockTags = []string{"h1", "h2", "h3", "p"}

type blockSpan struct {
	tag              string
	open, innerStart int
	innerEnd, end    int
}

// enclosingBlock finds the recognized block whose span contains pos.
func enclosingBlock(content string, pos int) (blockSpan, bool) {
	for _, tag := range blockTags {
		open := "<" + tag + ">"
		close := "</" + tag + ">"
		from := 0
		for {
			i := strings.Index(content[from:], open)
			if i < 0 {
				break
			}
			i += from
			j := strings.Index(content[i:], close)
			if j < 0 {
				break
			}
			j += i
			if pos >= i && pos <= j+len(close) {
				return blockSpan{
					tag:        tag,
					open:       i,
					innerStart: i + len(open),
					innerEnd:   j,
					end:        j + len(close),
				}, true
			}
			from = j + len(close)
		}
	}
	return blockSpan{}, false
}

// retagBlock rewrites the block's tag pair and reports the length delta of
// the opening tag so selections can be shifted.
func retagBlock(content string, blk blockSpan, newTag string) (string, int) {
	newOpen := "<" + newTag + ">"
	newClose := "</" + newTag + ">"
	inner := content[blk.innerStart:blk.innerEnd]
	out := content[:blk.open] + newOpen + inner + newClose + content[blk.end:]
	return out, len(newOpen) - (blk.innerStart - blk.open)
}

// insertAt splices a fragment into the markup at pos.
func insertAt(content, fragment string, pos int) string {
	if pos < 0 {
		pos = 0
	}
	if pos > len(content) {
		pos = len(content)
	}
	return content[:pos] + fragment + content[pos:]
}

// youtubeEmbedURL normalizes watch and short-link forms to the embed URL.
// Anything unrecognized passes through untouched.
func youtubeEmbedURL(url string) string {
	if i := strings.Index(url, "watch?v="); i >= 0 {
		id := url[i+len("watch?v="):]
		if j := strings.IndexAny(id, "&#"); j >= 0 {
			id = id[:j]
		}
		return "https://www.youtube.com/embed/" + id
	}
	if i := strings.Index(url, "youtu.be/"); i >= 0 {
		id := url[i+len("youtu.be/"):]
		if j := strings.IndexAny(id, "?&#"); j >= 0 {
			id = id[:j]
		}
		return "https://www.youtube.com/embed/" + id
	}
	return url
}
