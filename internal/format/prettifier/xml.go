package prettifier

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// XML pretty-prints well-formed XML documents.
// The XML declaration is dropped, whitespace-only text is discarded, elements without
// content are self-closed and elements holding only text stay on one line.
type XML struct {
	indent int
}

var (
	// errNoRootElement indicates a document without any element.
	errNoRootElement = errors.New("document has no root element")

	// errMultipleRoots indicates a document with more than one top-level element.
	errMultipleRoots = errors.New("document has more than one root element")

	// errTextOutsideRoot indicates character data outside of the root element.
	errTextOutsideRoot = errors.New("character data outside of root element")

	// errMismatchedTag indicates an end tag that does not close the current element.
	errMismatchedTag = errors.New("mismatched end tag")
)

type xmlNodeKind uint8

const (
	xmlElement xmlNodeKind = iota
	xmlText
	xmlComment
	xmlProcInst
	xmlDirective
)

type xmlNode struct {
	kind     xmlNodeKind
	name     string
	attrs    []xml.Attr
	data     string
	children []*xmlNode
}

//nolint:gochecknoglobals // Immutable replacers.
var (
	xmlTextEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	xmlAttrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", `"`, "&quot;")
)

// NewXML creates an XML prettifier with the given indentation per element level.
func NewXML(indent int) *XML {
	if indent < 0 {
		indent = DefaultIndent
	}

	return &XML{indent: indent}
}

// Apply implements Prettifier.
func (p *XML) Apply(text string) string {
	top, err := parseXML(text)
	if err != nil {
		return text
	}

	buf := getBuffer()
	defer putBuffer(buf)

	for _, node := range top {
		buf.WriteByte('\n')
		p.write(buf, node, 0)
	}

	return strings.TrimSpace(buf.String())
}

func parseXML(text string) ([]*xmlNode, error) {
	decoder := xml.NewDecoder(strings.NewReader(text))
	decoder.Strict = true

	var (
		top   []*xmlNode
		stack []*xmlNode
		roots int
	)

	appendNode := func(node *xmlNode) {
		if len(stack) == 0 {
			top = append(top, node)

			return
		}

		parent := stack[len(stack)-1]
		parent.children = append(parent.children, node)
	}

	for {
		token, err := decoder.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if len(stack) == 0 {
				roots++
				if roots > 1 {
					return nil, errMultipleRoots
				}
			}

			node := &xmlNode{
				kind:  xmlElement,
				name:  qualifiedName(t.Name),
				attrs: append([]xml.Attr(nil), t.Attr...),
			}

			appendNode(node)
			stack = append(stack, node)
		case xml.EndElement:
			if len(stack) == 0 || stack[len(stack)-1].name != qualifiedName(t.Name) {
				return nil, errMismatchedTag
			}

			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				if !isBlank(string(t)) {
					return nil, errTextOutsideRoot
				}

				continue
			}

			appendNode(&xmlNode{kind: xmlText, data: string(t)})
		case xml.Comment:
			appendNode(&xmlNode{kind: xmlComment, data: string(t)})
		case xml.ProcInst:
			if t.Target == "xml" {
				continue
			}

			appendNode(&xmlNode{kind: xmlProcInst, name: t.Target, data: string(t.Inst)})
		case xml.Directive:
			appendNode(&xmlNode{kind: xmlDirective, data: string(t)})
		}
	}

	if len(stack) > 0 {
		return nil, io.ErrUnexpectedEOF
	}

	if roots == 0 {
		return nil, errNoRootElement
	}

	return top, nil
}

func qualifiedName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}

	return name.Space + ":" + name.Local
}

func (p *XML) write(buf *bytes.Buffer, node *xmlNode, depth int) {
	switch node.kind {
	case xmlElement:
		p.writeElement(buf, node, depth)
	case xmlText:
		buf.WriteString(xmlTextEscaper.Replace(strings.TrimSpace(node.data)))
	case xmlComment:
		buf.WriteString("<!--")
		buf.WriteString(node.data)
		buf.WriteString("-->")
	case xmlProcInst:
		buf.WriteString("<?")
		buf.WriteString(node.name)

		if node.data != "" {
			buf.WriteByte(' ')
			buf.WriteString(node.data)
		}

		buf.WriteString("?>")
	case xmlDirective:
		buf.WriteString("<!")
		buf.WriteString(node.data)
		buf.WriteByte('>')
	}
}

func (p *XML) writeElement(buf *bytes.Buffer, node *xmlNode, depth int) {
	buf.WriteByte('<')
	buf.WriteString(node.name)

	for _, attr := range node.attrs {
		buf.WriteByte(' ')
		buf.WriteString(qualifiedName(attr.Name))
		buf.WriteString(`="`)
		buf.WriteString(xmlAttrEscaper.Replace(attr.Value))
		buf.WriteByte('"')
	}

	children := significantChildren(node.children)
	if len(children) == 0 {
		buf.WriteString("/>")

		return
	}

	buf.WriteByte('>')

	if textOnly(children) {
		for _, child := range children {
			buf.WriteString(xmlTextEscaper.Replace(child.data))
		}
	} else {
		for _, child := range children {
			buf.WriteByte('\n')
			writeIndent(buf, (depth+1)*p.indent)
			p.write(buf, child, depth+1)
		}

		buf.WriteByte('\n')
		writeIndent(buf, depth*p.indent)
	}

	buf.WriteString("</")
	buf.WriteString(node.name)
	buf.WriteByte('>')
}

// significantChildren drops whitespace-only text nodes.
func significantChildren(children []*xmlNode) []*xmlNode {
	result := make([]*xmlNode, 0, len(children))

	for _, child := range children {
		if child.kind == xmlText && isBlank(child.data) {
			continue
		}

		result = append(result, child)
	}

	return result
}

func textOnly(children []*xmlNode) bool {
	for _, child := range children {
		if child.kind != xmlText {
			return false
		}
	}

	return true
}
