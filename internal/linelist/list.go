// Package linelist ingests line sources into an ordered list of text lines
// and converts them to integers.
package linelist

// List is an ordered list of lines. The zero value is an empty list ready to use.
type List struct {
	source string
	lines  []line
}

func New(source string) *List {
	return &List{
		source: source,
	}
}

// Append adds text as the last line of the list.
func (l *List) Append(text string) {
	l.lines = append(l.lines, newLine(text, len(l.lines)+1))
}

func (l *List) Len() int {
	if l == nil {
		return 0
	}

	return len(l.lines)
}

// Source returns the name the list was loaded from, if any.
func (l *List) Source() string {
	if l == nil {
		return ""
	}

	return l.source
}

// Lines returns a copy of the stored texts in insertion order.
func (l *List) Lines() []string {
	texts := make([]string, 0, l.Len())
	if l == nil {
		return texts
	}

	for _, ln := range l.lines {
		texts = append(texts, ln.text)
	}

	return texts
}

// Release drops every line. The list stays usable and can be released again.
func (l *List) Release() {
	if l == nil {
		return
	}

	l.lines = nil
}
