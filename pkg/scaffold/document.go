package scaffold

import (
	"sort"
)

type (
	// Document is a generated file. Path is relative to the project root and
	// always uses forward slashes.
	Document struct {
		Path    string
		Content []byte
	}

	// Documents is a set of generated files sorted by path.
	Documents []Document
)

func newDocuments(docs ...Document) Documents {
	out := Documents(docs)
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })

	return out
}

// Get returns the document at path, if present.
func (d Documents) Get(path string) (Document, bool) {
	i := sort.Search(len(d), func(i int) bool { return d[i].Path >= path })
	if i < len(d) && d[i].Path == path {
		return d[i], true
	}

	return Document{}, false
}

// Paths returns the document paths in order.
func (d Documents) Paths() []string {
	paths := make([]string, len(d))
	for i, doc := range d {
		paths[i] = doc.Path
	}

	return paths
}
