// Package owpml builds the OWPML XML documents inside an HWPX archive:
// the section body (renderer, table handler) and the style header. XML is
// modeled as a plain element tree; serialization sorts attributes by name
// so identical input always yields identical bytes.
package owpml

import (
	"encoding/xml"
	"sort"
	"strconv"
	"strings"
)

// Attr is one XML attribute. Attributes keep insertion order in memory and
// are sorted by name at serialization time.
type Attr struct {
	Name  string
	Value string
}

// Element is one node of an OWPML document. Text and Children are mutually
// exclusive in practice; when both are set, text precedes children.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
	Text     string
}

// New creates an element with the given qualified name.
func New(name string) *Element {
	return &Element{Name: name}
}

// Set adds or replaces an attribute and returns the element for chaining.
func (e *Element) Set(name, value string) *Element {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// SetInt adds or replaces an integer attribute.
func (e *Element) SetInt(name string, value int) *Element {
	return e.Set(name, strconv.Itoa(value))
}

// Attr returns an attribute value, or "" when absent.
func (e *Element) Attr(name string) string {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// Add appends child elements and returns the parent.
func (e *Element) Add(children ...*Element) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// AddNew appends a new child with the given name and returns the child.
func (e *Element) AddNew(name string) *Element {
	c := New(name)
	e.Children = append(e.Children, c)
	return c
}

// Prepend inserts a child at the front, before existing children.
func (e *Element) Prepend(child *Element) *Element {
	e.Children = append([]*Element{child}, e.Children...)
	return e
}

// Find returns the first descendant (depth-first) with the given name, or
// nil. It walks the whole subtree, so it suits tests rather than hot paths.
func (e *Element) Find(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant (depth-first) with the given name.
func (e *Element) FindAll(name string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Name == name {
			out = append(out, c)
		}
		out = append(out, c.FindAll(name)...)
	}
	return out
}

const xmlDecl = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`

// Marshal serializes the element as a standalone XML 1.0 document.
func Marshal(root *Element) []byte {
	var b strings.Builder
	b.WriteString(xmlDecl)
	root.write(&b)
	return []byte(b.String())
}

func (e *Element) write(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(e.Name)

	attrs := make([]Attr, len(e.Attrs))
	copy(attrs, e.Attrs)
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].Name < attrs[j].Name })
	for _, a := range attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(escape(a.Value))
		b.WriteByte('"')
	}

	if e.Text == "" && len(e.Children) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')
	if e.Text != "" {
		b.WriteString(escape(e.Text))
	}
	for _, c := range e.Children {
		c.write(b)
	}
	b.WriteString("</")
	b.WriteString(e.Name)
	b.WriteByte('>')
}

func escape(s string) string {
	var b strings.Builder
	// xml.EscapeText covers <>&'" and control characters; errors are
	// impossible on a strings.Builder.
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
