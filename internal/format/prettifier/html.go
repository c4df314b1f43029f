package prettifier

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// HTML pretty-prints HTML documents.
// The input is parsed the way a browser does, so fragments are wrapped into
// an html/head/body skeleton and damaged markup is repaired rather than rejected.
// Block elements start on their own indented line, inline elements and
// text flow inside them with whitespace collapsed.
type HTML struct {
	indent int
}

const (
	maxHTMLPadding = 30
	htmlWhitespace = " \t\n\r\f"
)

type htmlTag struct {
	block         bool
	formatAsBlock bool
	void          bool
}

//nolint:gochecknoglobals // Immutable lookup tables.
var (
	htmlBlockTags = []string{
		"html", "head", "body", "frameset", "script", "noscript", "style", "meta", "link", "title",
		"frame", "noframes", "section", "nav", "aside", "hgroup", "header", "footer", "p",
		"h1", "h2", "h3", "h4", "h5", "h6", "ul", "ol", "pre", "div", "blockquote", "hr",
		"address", "figure", "figcaption", "form", "fieldset", "ins", "del", "dl", "dt", "dd",
		"li", "table", "caption", "thead", "tfoot", "tbody", "colgroup", "col", "tr", "th", "td",
		"video", "audio", "canvas", "details", "menu", "plaintext", "template", "article", "main",
		"svg", "math", "center", "dir", "applet", "marquee", "listing",
	}
	htmlInlineTags = []string{
		"object", "base", "font", "tt", "i", "b", "u", "big", "small", "em", "strong", "dfn",
		"code", "samp", "kbd", "var", "cite", "abbr", "time", "acronym", "mark", "ruby", "rt",
		"rp", "rtc", "a", "img", "br", "wbr", "map", "q", "sub", "sup", "bdo", "iframe", "embed",
		"span", "input", "select", "textarea", "label", "button", "optgroup", "option", "legend",
		"datalist", "keygen", "output", "progress", "meter", "area", "param", "source", "track",
		"summary", "command", "device", "basefont", "bgsound", "menuitem", "data", "bdi", "s",
		"strike", "nobr", "rb",
	}
	htmlInlineFormattedTags = []string{
		"title", "a", "p", "h1", "h2", "h3", "h4", "h5", "h6", "pre", "address", "li", "th", "td",
		"script", "style", "ins", "del", "s", "button",
	}
	htmlVoidTags = []string{
		"meta", "link", "base", "frame", "img", "br", "wbr", "embed", "hr", "input", "keygen",
		"col", "command", "device", "area", "basefont", "bgsound", "menuitem", "param", "source",
		"track",
	}
	htmlPreserveWhitespaceTags = map[string]struct{}{
		"pre": {}, "plaintext": {}, "title": {}, "textarea": {},
	}
	htmlLeadingNewlineTags = map[string]struct{}{
		"pre": {}, "textarea": {}, "listing": {},
	}
	htmlRawTextTags = map[string]struct{}{
		"script": {}, "style": {}, "xmp": {}, "iframe": {}, "noembed": {}, "noframes": {},
		"plaintext": {},
	}
	htmlBooleanAttributes = map[string]struct{}{
		"allowfullscreen": {}, "async": {}, "autofocus": {}, "checked": {}, "compact": {},
		"declare": {}, "default": {}, "defer": {}, "disabled": {}, "formnovalidate": {},
		"hidden": {}, "inert": {}, "ismap": {}, "itemscope": {}, "multiple": {}, "muted": {},
		"nohref": {}, "noresize": {}, "noshade": {}, "novalidate": {}, "nowrap": {}, "open": {},
		"readonly": {}, "required": {}, "reversed": {}, "seamless": {}, "selected": {},
		"sortable": {}, "truespeed": {}, "typemustmatch": {},
	}
	htmlTags = buildHTMLTags()

	// Unknown elements are inline but still formatted as blocks.
	htmlUnknownTag = htmlTag{formatAsBlock: true}

	htmlTextEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\u00a0", "&nbsp;")
	htmlAttrEscaper = strings.NewReplacer("&", "&amp;", `"`, "&quot;", "\u00a0", "&nbsp;")
)

func buildHTMLTags() map[string]htmlTag {
	tags := make(map[string]htmlTag, len(htmlBlockTags)+len(htmlInlineTags))

	for _, name := range htmlBlockTags {
		tags[name] = htmlTag{block: true, formatAsBlock: true}
	}

	for _, name := range htmlInlineTags {
		tags[name] = htmlTag{}
	}

	for _, name := range htmlInlineFormattedTags {
		tag := tags[name]
		tag.formatAsBlock = false
		tags[name] = tag
	}

	for _, name := range htmlVoidTags {
		tag := tags[name]
		tag.void = true
		tags[name] = tag
	}

	return tags
}

func lookupHTMLTag(node *html.Node) htmlTag {
	if node == nil || node.Type != html.ElementNode {
		return htmlTag{}
	}

	if tag, ok := htmlTags[node.Data]; ok {
		return tag
	}

	return htmlUnknownTag
}

// NewHTML creates an HTML prettifier with the given indentation per element level.
func NewHTML(indent int) *HTML {
	if indent < 0 {
		indent = DefaultIndent
	}

	return &HTML{indent: indent}
}

// Apply implements Prettifier.
func (p *HTML) Apply(text string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil || len(doc.Nodes) == 0 {
		return text
	}

	buf := getBuffer()
	defer putBuffer(buf)

	p.writeChildren(buf, doc.Selection, 0)

	return strings.TrimSpace(buf.String())
}

func (p *HTML) writeChildren(buf *bytes.Buffer, sel *goquery.Selection, depth int) {
	sel.Contents().Each(func(_ int, child *goquery.Selection) {
		p.writeNode(buf, child, depth)
	})
}

func (p *HTML) writeNode(buf *bytes.Buffer, sel *goquery.Selection, depth int) {
	node := sel.Get(0)

	switch node.Type {
	case html.ElementNode:
		p.writeElement(buf, sel, depth)
	case html.TextNode:
		p.writeText(buf, node, depth)
	case html.CommentNode:
		if prevSignificant(node) == nil && lookupHTMLTag(node.Parent).formatAsBlock {
			p.newline(buf, depth)
		}

		buf.WriteString("<!--")
		buf.WriteString(node.Data)
		buf.WriteString("-->")
	case html.DoctypeNode:
		writeDoctype(buf, node)
	case html.ErrorNode, html.DocumentNode, html.RawNode:
		// Nothing to render.
	}
}

func (p *HTML) writeElement(buf *bytes.Buffer, sel *goquery.Selection, depth int) {
	var (
		node = sel.Get(0)
		tag  = lookupHTMLTag(node)
	)

	if p.shouldIndent(node) {
		p.newline(buf, depth)
	}

	buf.WriteByte('<')
	buf.WriteString(node.Data)
	writeHTMLAttributes(buf, node.Attr)
	buf.WriteByte('>')

	if tag.void && node.FirstChild == nil {
		return
	}

	p.writeChildren(buf, sel, depth+1)

	if tag.formatAsBlock && hasContent(node) {
		p.newline(buf, depth)
	}

	buf.WriteString("</")
	buf.WriteString(node.Data)
	buf.WriteByte('>')
}

// shouldIndent reports whether node starts on a new line.
// Blank text siblings are ignored, they are the indentation of an earlier pass.
func (p *HTML) shouldIndent(node *html.Node) bool {
	if node == nil || node.Type != html.ElementNode {
		return false
	}

	tag := lookupHTMLTag(node)
	parentTag := lookupHTMLTag(node.Parent)

	if !tag.formatAsBlock && !parentTag.formatAsBlock {
		return false
	}

	inlineable := !tag.block &&
		(node.Parent == nil || parentTag.block) &&
		prevSignificant(node) != nil

	return !inlineable
}

func (p *HTML) writeText(buf *bytes.Buffer, node *html.Node, depth int) {
	parent := node.Parent
	if parent != nil && parent.Type == html.ElementNode {
		if _, ok := htmlRawTextTags[parent.Data]; ok {
			buf.WriteString(node.Data)

			return
		}
	}

	if preservesWhitespace(parent) {
		// The parser drops a newline right after these start tags.
		if _, ok := htmlLeadingNewlineTags[parent.Data]; ok && node.PrevSibling == nil &&
			strings.HasPrefix(node.Data, "\n") {
			buf.WriteByte('\n')
		}

		buf.WriteString(htmlTextEscaper.Replace(node.Data))

		return
	}

	var (
		parentTag = lookupHTMLTag(parent)
		blank     = isHTMLBlank(node.Data)
		prev      = prevSignificant(node)
		next      = nextSignificant(node)
	)

	if blank && (p.shouldIndent(nextElement(node.NextSibling)) || isBlankText(node.NextSibling)) {
		return
	}

	startsLine := prev == nil && parentTag.formatAsBlock && !blank
	isDocumentChild := parent != nil && parent.Type == html.DocumentNode
	trimLeading := startsLine || (prev == nil && parentTag.block) || isDocumentChild
	trimTrailing := (next == nil && (parentTag.block || parentTag.formatAsBlock)) ||
		p.shouldIndent(nextElement(next))

	if startsLine {
		p.newline(buf, depth)
	}

	text := collapseWhitespace(node.Data)
	if trimLeading {
		text = strings.TrimLeft(text, htmlWhitespace)
	}

	if trimTrailing {
		text = strings.TrimRight(text, htmlWhitespace)
	}

	buf.WriteString(htmlTextEscaper.Replace(text))
}

func (p *HTML) newline(buf *bytes.Buffer, depth int) {
	buf.WriteByte('\n')
	writeIndent(buf, min(depth*p.indent, maxHTMLPadding))
}

func writeHTMLAttributes(buf *bytes.Buffer, attrs []html.Attribute) {
	for _, attr := range attrs {
		key := attr.Key
		if attr.Namespace != "" {
			key = attr.Namespace + ":" + key
		}

		buf.WriteByte(' ')
		buf.WriteString(key)

		if _, ok := htmlBooleanAttributes[key]; ok && (attr.Val == "" || strings.EqualFold(attr.Val, key)) {
			continue
		}

		buf.WriteString(`="`)
		buf.WriteString(htmlAttrEscaper.Replace(attr.Val))
		buf.WriteByte('"')
	}
}

func writeDoctype(buf *bytes.Buffer, node *html.Node) {
	var publicID, systemID string

	for _, attr := range node.Attr {
		switch attr.Key {
		case "public":
			publicID = attr.Val
		case "system":
			systemID = attr.Val
		}
	}

	if node.PrevSibling != nil {
		buf.WriteByte('\n')
	}

	if publicID == "" && systemID == "" {
		buf.WriteString("<!doctype")
	} else {
		buf.WriteString("<!DOCTYPE")
	}

	if node.Data != "" {
		buf.WriteByte(' ')
		buf.WriteString(node.Data)
	}

	if publicID != "" {
		buf.WriteString(` PUBLIC "`)
		buf.WriteString(publicID)
		buf.WriteByte('"')
	}

	if systemID != "" {
		buf.WriteString(` "`)
		buf.WriteString(systemID)
		buf.WriteByte('"')
	}

	buf.WriteByte('>')
}

func preservesWhitespace(node *html.Node) bool {
	for current := node; current != nil; current = current.Parent {
		if current.Type != html.ElementNode {
			continue
		}

		if _, ok := htmlPreserveWhitespaceTags[current.Data]; ok {
			return true
		}
	}

	return false
}

func nextElement(node *html.Node) *html.Node {
	if node != nil && node.Type == html.ElementNode {
		return node
	}

	return nil
}

func prevSignificant(node *html.Node) *html.Node {
	sibling := node.PrevSibling
	for isBlankText(sibling) {
		sibling = sibling.PrevSibling
	}

	return sibling
}

func nextSignificant(node *html.Node) *html.Node {
	sibling := node.NextSibling
	for isBlankText(sibling) {
		sibling = sibling.NextSibling
	}

	return sibling
}

// hasContent reports whether node has a child other than blank text.
func hasContent(node *html.Node) bool {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if !isBlankText(child) || preservesWhitespace(node) {
			return true
		}
	}

	return false
}

func isBlankText(node *html.Node) bool {
	return node != nil && node.Type == html.TextNode && isHTMLBlank(node.Data)
}

// isHTMLBlank reports whether s holds only HTML whitespace. A no-break space is content.
func isHTMLBlank(s string) bool {
	return strings.Trim(s, htmlWhitespace) == ""
}

func collapseWhitespace(s string) string {
	var (
		builder strings.Builder
		inSpace bool
	)

	builder.Grow(len(s))

	for _, r := range s {
		if strings.ContainsRune(htmlWhitespace, r) {
			if !inSpace {
				builder.WriteByte(' ')
			}

			inSpace = true

			continue
		}

		inSpace = false

		builder.WriteRune(r)
	}

	return builder.String()
}
