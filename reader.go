package tmx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// element is implemented by every model type the reader can populate.
// readAttr handles one attribute of the element's own start tag;
// readChild handles one recognized (or skips one unrecognized) child
// element.
type element interface {
	readAttr(name, value string) error
	readChild(r *reader, start xml.StartElement) error
}

// textHolder is implemented by elements that capture raw character data
// between their tags (only Data does). Other elements ignore text
// events.
type textHolder interface {
	readText(text string)
}

// reader drives the recursive descent over the decoder's event stream.
// Each parse call owns its reader exclusively; there is no shared
// state between parses.
type reader struct {
	dec *xml.Decoder
}

// ParseMap reads a TMX document whose root element is <map>.
func ParseMap(src []byte) (*Map, error) {
	return ReadMap(bytes.NewReader(src))
}

// ReadMap is the io.Reader variant of ParseMap.
func ReadMap(src io.Reader) (*Map, error) {
	r := &reader{dec: xml.NewDecoder(src)}
	start, err := r.root("map")
	if err != nil {
		return nil, err
	}
	m := newMap()
	if err := r.readElement(m, start); err != nil {
		return nil, err
	}
	return m, nil
}

// ParseTileset reads a TSX document whose root element is <tileset>.
func ParseTileset(src []byte) (*Tileset, error) {
	return ReadTileset(bytes.NewReader(src))
}

// ReadTileset is the io.Reader variant of ParseTileset.
func ReadTileset(src io.Reader) (*Tileset, error) {
	r := &reader{dec: xml.NewDecoder(src)}
	start, err := r.root("tileset")
	if err != nil {
		return nil, err
	}
	ts := newTileset()
	if err := r.readElement(ts, start); err != nil {
		return nil, err
	}
	return ts, nil
}

// root scans forward to the document's root start element and checks
// its tag name.
func (r *reader) root(want string) (xml.StartElement, error) {
	for {
		tok, err := r.dec.Token()
		if err != nil {
			if err == io.EOF {
				return xml.StartElement{}, &BadXmlError{ParseError{
					Message: fmt.Sprintf("no <%s> root element", want),
				}}
			}
			return xml.StartElement{}, &BadXmlError{ParseError{
				Message: err.Error(),
				Cause:   err,
			}}
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != want {
			return xml.StartElement{}, &BadXmlError{ParseError{
				Message: fmt.Sprintf("expected <%s> root element, got <%s>", want, start.Name.Local),
			}}
		}
		return start, nil
	}
}

// readElement populates e from the attributes of start and from every
// event up to the matching end element. Recognized children are built
// recursively through e.readChild; the first error aborts the walk.
func (r *reader) readElement(e element, start xml.StartElement) error {
	for _, attr := range start.Attr {
		if err := e.readAttr(attr.Name.Local, attr.Value); err != nil {
			return err
		}
	}

	for {
		tok, err := r.dec.Token()
		if err != nil {
			return &BadXmlError{ParseError{Message: err.Error(), Cause: err}}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := e.readChild(r, t); err != nil {
				return err
			}
		case xml.CharData:
			// Indentation between child elements is not content.
			text := string(t)
			if strings.TrimSpace(text) == "" {
				continue
			}
			if h, ok := e.(textHolder); ok {
				h.readText(text)
			}
		case xml.EndElement:
			return nil
		}
	}
}

// skip discards the current element's entire subtree. Called by
// readChild implementations for tags outside their schema, keeping the
// model forward compatible with format extensions.
func (r *reader) skip() error {
	if err := r.dec.Skip(); err != nil {
		return &BadXmlError{ParseError{Message: err.Error(), Cause: err}}
	}
	return nil
}
