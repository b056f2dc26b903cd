package checklist

import (
	"fmt"
	"sort"
)

// Projection maps view rows to document indices for one view. It is rebuilt after
// every document change and never reused across an edit.
type Projection struct {
	indices []int
	docLen  int
}

// Rebuild scans doc in order and keeps the indices of lines visible under policy.
// A nil doc yields an empty projection.
func Rebuild(doc *Document, policy ViewPolicy) *Projection {
	p := &Projection{}
	if doc == nil {
		return p
	}
	p.docLen = doc.Len()
	p.indices = make([]int, 0, doc.Len())
	for i, l := range doc.lines {
		if policy.Visible(l) {
			p.indices = append(p.indices, i)
		}
	}
	return p
}

// Resolve returns the document index shown at viewRow.
func (p *Projection) Resolve(viewRow int) (int, error) {
	if viewRow < 0 || viewRow >= len(p.indices) {
		return 0, fmt.Errorf("view row %d (rows %d): %w", viewRow, len(p.indices), ErrIndexOutOfRange)
	}
	return p.indices[viewRow], nil
}

// Len is the number of visible rows.
func (p *Projection) Len() int {
	return len(p.indices)
}

// DocumentLen is the length of the document the projection was built from.
func (p *Projection) DocumentLen() int {
	return p.docLen
}

// Indices returns a copy of the row to document index mapping.
func (p *Projection) Indices() []int {
	out := make([]int, len(p.indices))
	copy(out, p.indices)
	return out
}

// Contains reports whether documentIndex is visible. Indices are strictly
// increasing so a binary search suffices.
func (p *Projection) Contains(documentIndex int) bool {
	i := sort.SearchInts(p.indices, documentIndex)
	return i < len(p.indices) && p.indices[i] == documentIndex
}
