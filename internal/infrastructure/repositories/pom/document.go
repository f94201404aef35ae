package pom

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"

	"github.com/beevik/etree"
)

const (
	indentSpaces = 2
	xmlHeader    = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"
)

// ParseError is a malformed descriptor. It is terminal for the file.
type ParseError struct {
	Line int // 0 when the decoder gave no position
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// parseDocument parses a descriptor into an ordered element tree.
func parseDocument(content []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(content); err != nil {
		parseErr := &ParseError{Err: err}
		var syntaxErr *xml.SyntaxError
		if errors.As(err, &syntaxErr) {
			parseErr.Line = syntaxErr.Line
			parseErr.Err = errors.New(syntaxErr.Msg)
		}
		return nil, parseErr
	}
	if doc.Root() == nil {
		return nil, &ParseError{Err: errors.New("document has no root element")}
	}
	return doc, nil
}

// serializeDocument renders the tree with two-space indentation per level.
// Attributes, including the root namespace declaration, are written back as
// they were read. An XML declaration is added when the input had none.
func serializeDocument(doc *etree.Document) ([]byte, error) {
	doc.Indent(indentSpaces)

	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize descriptor: %w", err)
	}

	if !hasXMLDeclaration(doc) {
		out = append([]byte(xmlHeader), out...)
	}
	if !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}
	return out, nil
}

func hasXMLDeclaration(doc *etree.Document) bool {
	for _, token := range doc.Child {
		if inst, ok := token.(*etree.ProcInst); ok && inst.Target == "xml" {
			return true
		}
	}
	return false
}
