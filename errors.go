package retrogfx

import (
	"errors"
	"fmt"
	"log"
	"os"
)

var (
	ErrInvalidIndex = errors.New("invalid index")
	ErrInvalidColor = errors.New("invalid color")
	ErrSystemBank   = errors.New("access to image bank for system")
)

// Error describes one rejected argument. Err is one of the Err* values.
type Error struct {
	Op    string
	Value int
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v (%d)", e.Op, e.Err, e.Value)
}

func (e *Error) Unwrap() error { return e.Err }

// Reporter receives the diagnostics produced by drawing calls.
type Reporter func(err error)

// DiscardReporter drops every diagnostic.
var DiscardReporter Reporter = func(error) {}

// LogReporter prints each diagnostic on l.
func LogReporter(l *log.Logger) Reporter {
	return func(err error) {
		l.Print(err)
	}
}

var defaultReporter = LogReporter(log.New(os.Stderr, "retrogfx: ", log.LstdFlags))

func (g *Graphics) reportf(op string, value int, err error) {
	g.report(&Error{Op: op, Value: value, Err: err})
}

// Check runs fn and returns every diagnostic its drawing calls produced,
// joined into one error, or nil. Calls inside fn still run to
// completion; while fn runs, diagnostics are not passed to the
// configured Reporter.
func (g *Graphics) Check(fn func()) error {
	var errs []error
	prev := g.report
	g.report = func(err error) {
		errs = append(errs, err)
	}
	defer func() { g.report = prev }()

	fn()
	return errors.Join(errs...)
}
