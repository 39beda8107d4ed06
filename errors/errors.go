package errors

import (
	"fmt"
)

// QueryError is the single error kind produced by parsing and analysis. The analyzer stops at
// the first violation, so at most one QueryError describes any failed run.
type QueryError struct {
	Err       error      `json:"-"`
	Message   string     `json:"message"`
	Locations []Location `json:"locations,omitempty"`
	Rule      string     `json:"-"`
}

type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (a Location) Before(b Location) bool {
	return a.Line < b.Line || (a.Line == b.Line && a.Column < b.Column)
}

// IsZero reports whether the location was never set, as is the case for nodes built by hand
// rather than by the parser.
func (a Location) IsZero() bool {
	return a.Line == 0 && a.Column == 0
}

func (a Location) String() string {
	return fmt.Sprintf("(line %d, column %d)", a.Line, a.Column)
}

func Errorf(format string, a ...interface{}) *QueryError {
	// similar to fmt.Errorf, Errorf will wrap the last argument if it is an instance of error
	var err error
	if n := len(a); n > 0 {
		if v, ok := a[n-1].(error); ok {
			err = v
		}
	}

	return &QueryError{
		Err:     err,
		Message: fmt.Sprintf(format, a...),
	}
}

// WithRule sets the rule name of err and returns it.
func (err *QueryError) WithRule(rule string) *QueryError {
	err.Rule = rule
	return err
}

// At appends every non-zero location to err and returns it.
func (err *QueryError) At(locs ...Location) *QueryError {
	for _, loc := range locs {
		if !loc.IsZero() {
			err.Locations = append(err.Locations, loc)
		}
	}
	return err
}

func (err *QueryError) Error() string {
	if err == nil {
		return "<nil>"
	}
	str := fmt.Sprintf("graphql: %s", err.Message)
	for _, loc := range err.Locations {
		str += fmt.Sprintf(" (line %d, column %d)", loc.Line, loc.Column)
	}
	return str
}

func (err *QueryError) Unwrap() error {
	if err == nil {
		return nil
	}
	return err.Err
}

var _ error = &QueryError{}
