package spec

import (
	"strconv"
	"strings"
)

// Segment is a single step in a Path: either a map field name or a list
// index. Build segments with Field and Index.
type Segment struct {
	Name    string
	Index   int
	IsIndex bool
}

// Field returns a segment naming a map field.
func Field(name string) Segment {
	return Segment{Name: name}
}

// Index returns a segment addressing a list item.
func Index(i int) Segment {
	return Segment{Index: i, IsIndex: true}
}

func (s Segment) String() string {
	if s.IsIndex {
		return strconv.Itoa(s.Index)
	}
	return s.Name
}

// Path locates a value inside a nested structure, outermost segment first.
// An empty path addresses the value itself.
type Path []Segment

// String renders the path in dotted form with bracketed indices, e.g.
// "items[2].name".
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		if s.IsIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.Index))
			b.WriteByte(']')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.Name)
	}
	return b.String()
}

// Equal reports whether two paths address the same location.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}
