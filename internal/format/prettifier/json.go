package prettifier

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// JSON pretty-prints JSON documents: object members one per line as `"key" : value`,
// arrays inline as `[ a, b ]`, empty containers as `{ }` and `[ ]`.
// Member order and number literals are preserved.
type JSON struct {
	indent int
}

// errTrailingData indicates that the input holds more than one JSON value.
var errTrailingData = errors.New("unexpected data after top-level value")

type jsonKind uint8

const (
	jsonScalar jsonKind = iota
	jsonObject
	jsonArray
)

type jsonNode struct {
	kind     jsonKind
	scalar   string
	keys     []string
	children []*jsonNode
}

// NewJSON creates a JSON prettifier with the given indentation per object level.
func NewJSON(indent int) *JSON {
	if indent < 0 {
		indent = DefaultIndent
	}

	return &JSON{indent: indent}
}

// Apply implements Prettifier.
func (p *JSON) Apply(text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	decoder := json.NewDecoder(strings.NewReader(text))
	decoder.UseNumber()

	root, err := readJSONValue(decoder)
	if err != nil {
		return text
	}

	if _, err = decoder.Token(); !errors.Is(err, io.EOF) {
		return text
	}

	buf := getBuffer()
	defer putBuffer(buf)

	p.write(buf, root, 0)

	return strings.TrimRight(buf.String(), " \t\r\n")
}

func readJSONValue(decoder *json.Decoder) (*jsonNode, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	return readJSONNode(decoder, token)
}

func readJSONNode(decoder *json.Decoder, token json.Token) (*jsonNode, error) {
	switch t := token.(type) {
	case json.Delim:
		switch t {
		case '{':
			return readJSONObject(decoder)
		case '[':
			return readJSONArray(decoder)
		default:
			return nil, errTrailingData
		}
	case string:
		encoded, err := encodeJSONString(t)
		if err != nil {
			return nil, err
		}

		return &jsonNode{kind: jsonScalar, scalar: encoded}, nil
	case json.Number:
		return &jsonNode{kind: jsonScalar, scalar: t.String()}, nil
	case bool:
		if t {
			return &jsonNode{kind: jsonScalar, scalar: "true"}, nil
		}

		return &jsonNode{kind: jsonScalar, scalar: "false"}, nil
	case nil:
		return &jsonNode{kind: jsonScalar, scalar: "null"}, nil
	default:
		return nil, errTrailingData
	}
}

func readJSONObject(decoder *json.Decoder) (*jsonNode, error) {
	node := &jsonNode{kind: jsonObject}

	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return nil, err
		}

		key, ok := keyToken.(string)
		if !ok {
			return nil, errTrailingData
		}

		encodedKey, err := encodeJSONString(key)
		if err != nil {
			return nil, err
		}

		child, err := readJSONValue(decoder)
		if err != nil {
			return nil, err
		}

		node.keys = append(node.keys, encodedKey)
		node.children = append(node.children, child)
	}

	// Closing brace.
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}

	return node, nil
}

func readJSONArray(decoder *json.Decoder) (*jsonNode, error) {
	node := &jsonNode{kind: jsonArray}

	for decoder.More() {
		child, err := readJSONValue(decoder)
		if err != nil {
			return nil, err
		}

		node.children = append(node.children, child)
	}

	// Closing bracket.
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}

	return node, nil
}

func encodeJSONString(s string) (string, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(s); err != nil {
		return "", err
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// write renders node at the given object nesting level. Arrays are inline and do not add a level.
func (p *JSON) write(buf *bytes.Buffer, node *jsonNode, level int) {
	switch node.kind {
	case jsonScalar:
		buf.WriteString(node.scalar)
	case jsonObject:
		if len(node.children) == 0 {
			buf.WriteString("{ }")

			return
		}

		buf.WriteByte('{')

		for i, child := range node.children {
			if i > 0 {
				buf.WriteByte(',')
			}

			buf.WriteByte('\n')
			writeIndent(buf, (level+1)*p.indent)
			buf.WriteString(node.keys[i])
			buf.WriteString(" : ")
			p.write(buf, child, level+1)
		}

		buf.WriteByte('\n')
		writeIndent(buf, level*p.indent)
		buf.WriteByte('}')
	case jsonArray:
		if len(node.children) == 0 {
			buf.WriteString("[ ]")

			return
		}

		buf.WriteString("[ ")

		for i, child := range node.children {
			if i > 0 {
				buf.WriteString(", ")
			}

			p.write(buf, child, level)
		}

		buf.WriteString(" ]")
	}
}
