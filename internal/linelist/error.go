package linelist

import "fmt"

// ErrIO is returned when a line source cannot be opened or read.
type ErrIO struct {
	Source string
	Err    error
}

func NewErrIO(source string, err error) error {
	return ErrIO{
		Source: source,
		Err:    err,
	}
}

func (e ErrIO) Error() string {
	return fmt.Sprintf("read %q: %s", e.Source, e.Err)
}

func (e ErrIO) Unwrap() error {
	return e.Err
}

// ErrFormat is returned when a source was read but its content is unusable.
// Line is zero when the error is not tied to a single line.
type ErrFormat struct {
	Source string
	Line   int
	msg    string
}

func NewErrFormat(source string, lineNumber int, msg string) error {
	return ErrFormat{
		Source: source,
		Line:   lineNumber,
		msg:    msg,
	}
}

func (e ErrFormat) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", e.Source, e.msg)
	}

	return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.msg)
}
