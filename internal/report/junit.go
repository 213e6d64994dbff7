package report

import (
	"encoding/xml"
	"fmt"

	m "github.com/mouse-blink/goreg/internal/model"
)

const (
	junitSuiteName  = "goreg"
	junitSuitesName = "goreg tests"

	failureFailed  = "failed"
	failureNew     = "newItem"
	failureDeleted = "deletedItem"
)

type junitTestSuites struct {
	XMLName  xml.Name       `xml:"testsuites"`
	Name     string         `xml:"name,attr"`
	Tests    int            `xml:"tests,attr"`
	Failures int            `xml:"failures,attr"`
	Suite    junitTestSuite `xml:"testsuite"`
}

type junitTestSuite struct {
	Name     string          `xml:"name,attr"`
	Tests    int             `xml:"tests,attr"`
	Failures int             `xml:"failures,attr"`
	Cases    []junitTestCase `xml:"testcase"`
}

type junitTestCase struct {
	Name    string        `xml:"name,attr"`
	Failure *junitFailure `xml:"failure,omitempty"`
}

type junitFailure struct {
	Message string `xml:"message,attr"`
}

// renderJUnit lists failed images as failures. New and deleted images are
// failures only with extended errors and passing cases otherwise. The
// suite counters include new and deleted images either way.
func renderJUnit(input m.ReportInput) ([]byte, error) {
	failures := input.Failed.Len() + input.New.Len() + input.Deleted.Len()
	tests := failures + input.Passed.Len()

	suite := junitTestSuite{
		Name:     junitSuiteName,
		Tests:    tests,
		Failures: failures,
		Cases:    make([]junitTestCase, 0, tests),
	}

	suite.Cases = appendCases(suite.Cases, input.Failed, failureFailed)

	if input.ExtendedErrors {
		suite.Cases = appendCases(suite.Cases, input.New, failureNew)
		suite.Cases = appendCases(suite.Cases, input.Deleted, failureDeleted)
	} else {
		suite.Cases = appendCases(suite.Cases, input.New, "")
		suite.Cases = appendCases(suite.Cases, input.Deleted, "")
	}

	suite.Cases = appendCases(suite.Cases, input.Passed, "")

	doc := junitTestSuites{
		Name:     junitSuitesName,
		Tests:    tests,
		Failures: failures,
		Suite:    suite,
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: junit: %w", m.ErrTemplateRender, err)
	}

	return append([]byte(xml.Header), out...), nil
}

func appendCases(cases []junitTestCase, paths m.PathSet, failure string) []junitTestCase {
	for _, p := range paths.Items() {
		tc := junitTestCase{Name: string(p)}
		if failure != "" {
			tc.Failure = &junitFailure{Message: failure}
		}

		cases = append(cases, tc)
	}

	return cases
}
