package puzzles

import "fmt"

type ErrEmptyPath struct{}

func (e ErrEmptyPath) Error() string {
	return "input path is empty"
}

type ErrInvalidRange struct {
	Min int
	Max int
}

func (e ErrInvalidRange) Error() string {
	return fmt.Sprintf("invalid range [%d, %d]", e.Min, e.Max)
}

type ErrLogLevel struct {
	Level string
}

func (e ErrLogLevel) Error() string {
	return fmt.Sprintf("unknown log level %q", e.Level)
}
