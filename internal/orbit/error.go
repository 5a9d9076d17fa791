package orbit

import "fmt"

type ErrMalformedOrbit struct {
	Line int
	Text string
}

func (e ErrMalformedOrbit) Error() string {
	return fmt.Sprintf("line #%d: malformed orbit %q", e.Line, e.Text)
}

type ErrDoubleOrbit struct {
	Object string
}

func (e ErrDoubleOrbit) Error() string {
	return fmt.Sprintf("object %q orbits more than one center", e.Object)
}

type ErrCycle struct {
	Object string
}

func (e ErrCycle) Error() string {
	return fmt.Sprintf("object %q orbits itself", e.Object)
}

type ErrUnknownObject struct {
	Object string
}

func (e ErrUnknownObject) Error() string {
	return fmt.Sprintf("object %q does not orbit anything", e.Object)
}

type ErrNoPath struct {
	From string
	To   string
}

func (e ErrNoPath) Error() string {
	return fmt.Sprintf("no transfer path from %q to %q", e.From, e.To)
}
