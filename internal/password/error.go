package password

import "fmt"

// ErrRangeTooWide is returned when a range holds more numbers than an int can count.
type ErrRangeTooWide struct {
	Min int
	Max int
}

func (e ErrRangeTooWide) Error() string {
	return fmt.Sprintf("range [%d, %d] is too wide to count", e.Min, e.Max)
}
