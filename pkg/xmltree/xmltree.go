// Package xmltree decodes arbitrary XML documents into a generic
// map-based tree, the XML counterpart of unmarshalling JSON into
// map[string]interface{}. Element attributes are not preserved; the
// upstream payloads this package exists for do not use them.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Decode parses an XML document into a map keyed by the root element
// name. Elements holding only character data become strings; elements
// with children become nested map[string]interface{}; repeated sibling
// elements collapse into a []interface{} in document order.
func Decode(data []byte) (map[string]interface{}, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("no root element found")
		}
		if err != nil {
			return nil, fmt.Errorf("parsing xml: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		value, err := decodeElement(dec, start)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{start.Name.Local: value}, nil
	}
}

// decodeElement consumes tokens up to and including the matching end
// element and returns the element's value.
func decodeElement(dec *xml.Decoder, start xml.StartElement) (interface{}, error) {
	children := make(map[string]interface{})
	var text strings.Builder

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing xml element %q: %w", start.Name.Local, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			value, err := decodeElement(dec, t)
			if err != nil {
				return nil, err
			}
			name := t.Name.Local
			existing, seen := children[name]
			if !seen {
				children[name] = value
				break
			}
			// Repeated sibling: promote to a slice.
			if slice, isSlice := existing.([]interface{}); isSlice {
				children[name] = append(slice, value)
			} else {
				children[name] = []interface{}{existing, value}
			}
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			if len(children) == 0 {
				return strings.TrimSpace(text.String()), nil
			}
			return children, nil
		}
	}
}
