package registry

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"vkstruct-generator/internal/config"
)

// ErrSchemaParse is returned for documents that are not well-formed or
// contain members without a <type> or <name> element.
var ErrSchemaParse = errors.New("schema parse error")

// LoadFile loads and parses a registry document from the given path.
func LoadFile(path string, sel config.Selection) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry %s: %w", path, err)
	}

	return Parse(bytes.NewReader(data), sel)
}

// Parse reads a registry document and returns its qualifying structures.
func Parse(r io.Reader, sel config.Selection) (*Registry, error) {
	l := &loader{dec: xml.NewDecoder(r), sel: sel}

	reg, err := l.run()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaParse, err)
	}

	return reg, nil
}

type loader struct {
	dec *xml.Decoder
	sel config.Selection
}

func (l *loader) run() (*Registry, error) {
	reg := &Registry{}
	sawRoot := false

	for {
		tok, err := l.dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		sawRoot = true

		if start.Name.Local != "type" {
			continue
		}

		if attr(start, "category") != "struct" {
			// Non-struct types may carry arbitrary content (C snippets, nested <type>).
			if err := l.dec.Skip(); err != nil {
				return nil, err
			}

			continue
		}

		reg.Scanned++

		line, _ := l.dec.InputPos()

		st, qualifies, err := l.readStruct(start)
		if err != nil {
			return nil, err
		}

		if qualifies {
			st.Line = line
			reg.Structs = append(reg.Structs, st)
		}
	}

	if !sawRoot {
		return nil, errors.New("document has no root element")
	}

	return reg, nil
}

// readStruct consumes a struct <type> element. Members of structures that do
// not qualify are not validated.
func (l *loader) readStruct(start xml.StartElement) (RawStruct, bool, error) {
	name := attr(start, "name")
	_, isAlias := attrLookup(start, "alias")

	if isAlias || !strings.Contains(name, l.sel.NameContains) {
		return RawStruct{}, false, l.dec.Skip()
	}

	st := RawStruct{Name: name}
	first := true
	var memberErr error

	for {
		tok, err := l.dec.Token()
		if err != nil {
			return RawStruct{}, false, unexpectedEOF(err, name)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "member" {
				// <comment> and anything else.
				if err := l.dec.Skip(); err != nil {
					return RawStruct{}, false, err
				}

				continue
			}

			m, err := l.readMember(t)
			if err != nil {
				return RawStruct{}, false, err
			}

			if first {
				st.Tag = m.Values
				first = false
			}

			if m.Name == "" || m.Type == "" {
				if memberErr == nil {
					memberErr = fmt.Errorf("%s: member %d has no <type> or <name> element", name, len(st.Members))
				}

				continue
			}

			if l.sel.IsExcludedAPI(m.API) {
				continue
			}

			st.Members = append(st.Members, m)

		case xml.EndElement:
			if st.Tag == "" {
				return RawStruct{}, false, nil
			}

			if memberErr != nil {
				return RawStruct{}, false, memberErr
			}

			return st, true, nil
		}
	}
}

// memberPart tracks which segment of a <member> the character data belongs to.
type memberPart int

const (
	partLeading memberPart = iota
	partTrailing
	partExtent
)

func (l *loader) readMember(start xml.StartElement) (RawMember, error) {
	m := RawMember{
		Values:   attr(start, "values"),
		Optional: attr(start, "optional"),
		Len:      attr(start, "len"),
		API:      attr(start, "api"),
	}

	var leading, trailing, extent strings.Builder
	part := partLeading

	for {
		tok, err := l.dec.Token()
		if err != nil {
			return RawMember{}, unexpectedEOF(err, "member")
		}

		switch t := tok.(type) {
		case xml.CharData:
			switch part {
			case partLeading:
				leading.Write(t)
			case partTrailing:
				trailing.Write(t)
			case partExtent:
				extent.Write(t)
			}

		case xml.StartElement:
			switch t.Name.Local {
			case "type":
				text, err := l.readText()
				if err != nil {
					return RawMember{}, err
				}

				m.Type = strings.TrimSpace(text)
				part = partTrailing

			case "name":
				text, err := l.readText()
				if err != nil {
					return RawMember{}, err
				}

				m.Name = strings.TrimSpace(text)
				part = partExtent

			case "enum":
				text, err := l.readText()
				if err != nil {
					return RawMember{}, err
				}

				extent.WriteString(text)

			default:
				if err := l.dec.Skip(); err != nil {
					return RawMember{}, err
				}
			}

		case xml.EndElement:
			m.Leading = strings.TrimSpace(leading.String())
			m.Trailing = strings.TrimSpace(trailing.String())
			m.Extent = strings.TrimSpace(extent.String())

			return m, nil
		}
	}
}

// readText returns the character data of the current element and consumes its end tag.
func (l *loader) readText() (string, error) {
	var sb strings.Builder

	for {
		tok, err := l.dec.Token()
		if err != nil {
			return "", unexpectedEOF(err, "text")
		}

		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			if err := l.dec.Skip(); err != nil {
				return "", err
			}
		case xml.EndElement:
			return sb.String(), nil
		}
	}
}

func unexpectedEOF(err error, where string) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("unexpected end of document inside %s", where)
	}

	return err
}

func attr(el xml.StartElement, name string) string {
	v, _ := attrLookup(el, name)
	return v
}

func attrLookup(el xml.StartElement, name string) (string, bool) {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}

	return "", false
}
