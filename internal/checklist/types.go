package checklist

// Kind classifies a line of the mirrored memo.
type Kind int

const (
	KindPlain Kind = iota
	KindTask
)

func (k Kind) String() string {
	if k == KindTask {
		return "task"
	}
	return "plain"
}

// Line is one entry of the backing document. Only the raw text is stored;
// kind, state and body are derived through the codec.
type Line struct {
	raw string
}

// NewLine wraps raw text as a Line.
func NewLine(raw string) Line {
	return Line{raw: raw}
}

// Raw returns the text as persisted, prefix included.
func (l Line) Raw() string { return l.raw }

// Kind reports whether the line is a task or plain text.
func (l Line) Kind() Kind {
	k, _, _ := Classify(l.raw)
	return k
}

// Checked is meaningful only for task lines.
func (l Line) Checked() bool {
	_, checked, _ := Classify(l.raw)
	return checked
}

// Body returns the text with any checklist prefix stripped.
func (l Line) Body() string {
	_, _, body := Classify(l.raw)
	return body
}

// IsCompleted reports a checked task line.
func (l Line) IsCompleted() bool {
	k, checked, _ := Classify(l.raw)
	return k == KindTask && checked
}

// ViewPolicy is the visibility configuration of one view.
type ViewPolicy struct {
	HideCompleted bool
}

// Visible reports whether line passes the policy.
func (p ViewPolicy) Visible(line Line) bool {
	return !(p.HideCompleted && line.IsCompleted())
}

// Row is one entry of the popup list handed to a renderer.
type Row struct {
	Text          string // body, prefix stripped
	Kind          Kind
	Checked       bool
	DocumentIndex int // token identifying the backing line at build time
}

// ChecklistStats represents checklist progress
type ChecklistStats struct {
	Total     int // Task lines
	Completed int // Checked task lines
	Pending   int // Unchecked task lines
}
