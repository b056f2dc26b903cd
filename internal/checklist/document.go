package checklist

import (
	"fmt"
	"strings"
)

// Document is the ordered backing list of memo lines. Order is the memo's line order.
type Document struct {
	lines []Line
}

// Parse splits blob on "\n" and keeps every resulting line. Parsing never fails;
// an empty blob yields a single empty plain line. Carriage returns are not
// stripped.
func Parse(blob string) *Document {
	parts := strings.Split(blob, "\n")
	lines := make([]Line, len(parts))
	for i, p := range parts {
		lines[i] = NewLine(p)
	}
	return &Document{lines: lines}
}

// Serialize joins the raw lines with "\n" and no trailing newline.
func (d *Document) Serialize() string {
	raws := make([]string, len(d.lines))
	for i, l := range d.lines {
		raws[i] = l.Raw()
	}
	return strings.Join(raws, "\n")
}

func (d *Document) Len() int {
	return len(d.lines)
}

// Line returns the line at index.
func (d *Document) Line(index int) (Line, error) {
	if err := d.check(index); err != nil {
		return Line{}, err
	}
	return d.lines[index], nil
}

// Lines returns a copy of the backing list.
func (d *Document) Lines() []Line {
	out := make([]Line, len(d.lines))
	copy(out, d.lines)
	return out
}

// SetChecked rewrites the line at index as a task with the given state using the
// canonical prefix. A plain line is promoted to a task.
func (d *Document) SetChecked(index int, checked bool) error {
	if err := d.check(index); err != nil {
		return err
	}
	d.lines[index] = NewLine(Encode(checked, d.lines[index].Body()))
	return nil
}

// InsertAtEnd appends an unchecked task with body.
func (d *Document) InsertAtEnd(body string) {
	d.lines = append(d.lines, NewLine(Encode(false, body)))
}

// RemoveAt deletes the line at index, shifting later lines up.
func (d *Document) RemoveAt(index int) error {
	if err := d.check(index); err != nil {
		return err
	}
	d.lines = append(d.lines[:index], d.lines[index+1:]...)
	return nil
}

// Stats counts task lines.
func (d *Document) Stats() ChecklistStats {
	var s ChecklistStats
	for _, l := range d.lines {
		if l.Kind() != KindTask {
			continue
		}
		s.Total++
		if l.Checked() {
			s.Completed++
		}
	}
	s.Pending = s.Total - s.Completed
	return s
}

func (d *Document) check(index int) error {
	if index < 0 || index >= len(d.lines) {
		return fmt.Errorf("document index %d (len %d): %w", index, len(d.lines), ErrIndexOutOfRange)
	}
	return nil
}
