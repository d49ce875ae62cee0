// Package mpd parses an MPEG-DASH Media Presentation Description (MPD)
// document into a generic attributed node tree. The flattening core in
// pkg/mpdparser only ever reads tags, attribute pairs and children, so
// the tree keeps everything the document declares instead of binding to
// a fixed schema.
package mpd

import (
	"encoding/xml"
	"strings"
)

// http://mpeg.chiariglione.org/standards/mpeg-dash
// https://www.brendanlong.com/the-structure-of-an-mpeg-dash-mpd.html
// http://standards.iso.org/ittf/PubliclyAvailableStandards/MPEG-DASH_schema_files/DASH-MPD.xsd

// Attr is one name/value attribute pair in document order.
type Attr struct {
	Name  string
	Value string
}

// Node is one element of the manifest tree.
type Node struct {
	Tag      string
	Attr     []Attr
	Children []*Node
	Text     string
}

// Decode parses MPD XML into a node tree and returns the root element.
func Decode(b []byte) (*Node, error) {
	root := new(Node)
	if err := xml.Unmarshal(b, root); err != nil {
		return nil, err
	}
	return root, nil
}

// UnmarshalXML implements xml.Unmarshaler, collecting attributes,
// character data and child elements in document order.
func (n *Node) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	n.Tag = start.Name.Local
	for _, a := range start.Attr {
		// Drop namespace declarations, keep everything else verbatim
		if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
			continue
		}
		n.Attr = append(n.Attr, Attr{Name: a.Name.Local, Value: a.Value})
	}
	var text strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child := new(Node)
			if err := child.UnmarshalXML(d, t); err != nil {
				return err
			}
			n.Children = append(n.Children, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			n.Text = text.String()
			return nil
		}
	}
}

// FindChildren returns the direct children with the given tag, in
// document order.
func (n *Node) FindChildren(tag string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// FirstChild returns the first direct child with the given tag, or nil.
func (n *Node) FirstChild(tag string) *Node {
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// AttrValue returns the value of the named attribute.
func (n *Node) AttrValue(name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Content returns the element text with surrounding whitespace removed.
// BaseURL elements carry their URL reference this way.
func (n *Node) Content() string {
	return strings.TrimSpace(n.Text)
}
