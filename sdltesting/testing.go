// Package sdltesting runs table tests that analyze SDL documents and compare the resulting
// schema, encoded as JSON, with an expected document.
package sdltesting

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"testing"

	"github.com/nsf/jsondiff"

	graphql "github.com/graph-gophers/graphql-sdl"
	"github.com/graph-gophers/graphql-sdl/errors"
)

// Test is an SDL test case to be used with RunTest(s).
type Test struct {
	Schema         string
	Options        []graphql.SchemaOpt
	ExpectedResult string
	ExpectedErrors []*errors.QueryError
}

// RunTests runs the given SDL test cases as subtests.
func RunTests(t *testing.T, tests []*Test) {
	t.Helper()
	if len(tests) == 1 {
		RunTest(t, tests[0])
		return
	}

	for i, test := range tests {
		t.Run(strconv.Itoa(i+1), func(t *testing.T) {
			t.Helper()
			RunTest(t, test)
		})
	}
}

// RunTest runs a single SDL test case. Only the message, locations and rule of errors are
// compared.
func RunTest(t *testing.T, test *Test) {
	t.Helper()
	s, err := graphql.ParseSchema(test.Schema, test.Options...)

	var got []*errors.QueryError
	if err != nil {
		qErr, ok := err.(*errors.QueryError)
		if !ok {
			t.Fatalf("unexpected error type %T: %v", err, err)
		}
		got = []*errors.QueryError{qErr}
	}
	checkErrors(t, test.ExpectedErrors, got)

	if test.ExpectedResult == "" {
		if s != nil {
			data, _ := json.Marshal(s)
			t.Fatalf("got: %s\nwant: no schema", data)
		}
		return
	}

	data, jsonErr := json.Marshal(s)
	if jsonErr != nil {
		t.Fatalf("encoding schema: %v", jsonErr)
	}

	opts := jsondiff.Options{
		Added:   jsondiff.Tag{Begin: "+++", End: "+++"},
		Removed: jsondiff.Tag{Begin: "---", End: "---"},
		Changed: jsondiff.Tag{Begin: "|||", End: "|||"},
		Indent:  "    ",
	}
	diff, output := jsondiff.Compare([]byte(test.ExpectedResult), data, &opts)
	if diff != jsondiff.FullMatch {
		t.Log("Did not get expected result:\n", output)
		t.Log("Got:", string(data))
		t.Fail()
	}
}

func checkErrors(t *testing.T, want, got []*errors.QueryError) {
	t.Helper()
	if !reflect.DeepEqual(strip(got), strip(want)) {
		t.Log("unexpected error:")
		t.Log("  Got: \n", formatErrors(got))
		t.Log("  Want: \n", formatErrors(want))
		t.Fatal()
	}
}

// strip drops the wrapped error, which is not part of the expected output.
func strip(errs []*errors.QueryError) []errors.QueryError {
	if len(errs) == 0 {
		return nil
	}
	out := make([]errors.QueryError, len(errs))
	for i, err := range errs {
		if err != nil {
			out[i] = errors.QueryError{Message: err.Message, Locations: err.Locations, Rule: err.Rule}
		}
	}
	return out
}

func formatErrors(errs []*errors.QueryError) string {
	var errorStr string
	for _, err := range errs {
		if err == nil {
			errorStr = errorStr + "(nil)\n"
		} else {
			errorStr = errorStr + formatError(*err)
		}
	}
	return errorStr
}

func formatError(err errors.QueryError) string {
	return fmt.Sprintf(
		`%s
Rule: %s
`,
		err.Error(),
		err.Rule)
}
