package document

// Children returns the direct child nodes of n.
func Children(n Node) []Node {
	switch v := n.(type) {
	case Row:
		out := make([]Node, len(v.Columns))
		for i, c := range v.Columns {
			out[i] = c
		}
		return out
	case Column:
		return v.Children
	case Section:
		return v.Children
	case Entry:
		return v.Children
	default:
		return nil
	}
}

// Walk visits nodes depth-first in document order. Returning false from fn skips
// the children of that node.
func Walk(nodes []Node, fn func(Node) bool) {
	for _, n := range nodes {
		if fn(n) {
			Walk(Children(n), fn)
		}
	}
}

// Sections lists the section keys of doc in document order.
func Sections(doc Document) []SectionKey {
	var keys []SectionKey
	Walk(doc.Body, func(n Node) bool {
		if s, ok := n.(Section); ok {
			keys = append(keys, s.Key)
		}
		return true
	})
	return keys
}

// HasSection reports whether doc contains a section with key.
func HasSection(doc Document, key SectionKey) bool {
	for _, k := range Sections(doc) {
		if k == key {
			return true
		}
	}
	return false
}

// EntryIDs lists, in order, the ids of the entries rendered for section.
func EntryIDs(doc Document, section SectionKey) []string {
	var ids []string
	Walk(doc.Body, func(n Node) bool {
		if e, ok := n.(Entry); ok && e.Section == section {
			ids = append(ids, e.ID)
			return false
		}
		return true
	})
	return ids
}

// Texts collects every text value in document order.
func Texts(nodes []Node) []string {
	var out []string
	Walk(nodes, func(n Node) bool {
		if t, ok := n.(Text); ok {
			out = append(out, t.Value)
		}
		return true
	})
	return out
}
