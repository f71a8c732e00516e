package editor

import "strings"

// RenderPreview projects title and content into display markup. The content
// string is injected exactly as stored, with no sanitization or rewriting
// stage, so the preview always shows the same bytes the store will receive.
func RenderPreview(title, content string) string {
	var b strings.Builder
	b.WriteString(`<article class="prose">`)
	b.WriteString("<h1>")
	b.WriteString(title)
	b.WriteString("</h1>")
	b.WriteString(`<div class="article-body">`)
	b.WriteString(content)
	b.WriteString("</div>")
	b.WriteString("</article>")
	return b.String()
}

// Preview renders the document's current state.
func Preview(doc *Document) string {
	a := doc.Article()
	return RenderPreview(a.Title, a.Content)
}
