package checklist

// NoIndex is the cursor sentinel: nothing loaded or every line hidden.
const NoIndex = -1

// RotationCursor walks a projection one visible line at a time for the panel.
type RotationCursor struct {
	current int
}

// NewRotationCursor returns a cursor in the sentinel state.
func NewRotationCursor() *RotationCursor {
	return &RotationCursor{current: NoIndex}
}

// Current is the document index under the cursor, or NoIndex.
func (c *RotationCursor) Current() int {
	return c.current
}

// Advance moves to the next visible document index after the current one,
// wrapping at the end. After a full cycle with no visible line the cursor
// enters the sentinel state. From the sentinel the scan starts at index 0.
func (c *RotationCursor) Advance(p *Projection) int {
	n := p.DocumentLen()
	if n == 0 || p.Len() == 0 {
		c.current = NoIndex
		return c.current
	}

	start := c.current + 1
	if c.current == NoIndex || c.current >= n {
		start = 0
	}
	c.current = c.scanFrom(p, start)
	return c.current
}

// Reset rebinds the cursor after the document was replaced. It keeps the
// position when still valid and visible, otherwise it settles on the first
// visible index at or after the old position, clamped to the new length.
func (c *RotationCursor) Reset(p *Projection) int {
	n := p.DocumentLen()
	if n == 0 || p.Len() == 0 {
		c.current = NoIndex
		return c.current
	}

	start := c.current
	switch {
	case start < 0:
		start = 0
	case start >= n:
		start = n - 1
	}
	c.current = c.scanFrom(p, start)
	return c.current
}

// scanFrom returns the first member of p at or after start, wrapping once.
func (c *RotationCursor) scanFrom(p *Projection, start int) int {
	n := p.DocumentLen()
	for step := 0; step < n; step++ {
		idx := (start + step) % n
		if p.Contains(idx) {
			return idx
		}
	}
	return NoIndex
}
