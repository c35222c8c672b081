package domain

import "fmt"

// TestCaseType is the provenance label of a test case.
type TestCaseType string

const (
	// TestCaseManual is a test case built from an imported control point.
	TestCaseManual TestCaseType = "Manuel"

	// TestCaseAutoGenerated is a test case built from a generated control point.
	TestCaseAutoGenerated TestCaseType = "Auto-généré"
)

// String returns the display label.
func (t TestCaseType) String() string {
	return string(t)
}

// TestCaseTypeFor returns the type matching a control point's provenance.
func TestCaseTypeFor(manual bool) TestCaseType {
	if manual {
		return TestCaseManual
	}
	return TestCaseAutoGenerated
}

// TestCase is a structured record describing how to verify one control point.
type TestCase struct {
	ID             string       `json:"id"`
	Type           TestCaseType `json:"type"`
	PDC            string       `json:"pdc"`
	Description    string       `json:"description"`
	Steps          string       `json:"steps"`
	ExpectedResult string       `json:"expected_result"`
}

// TestCaseID formats the 1-based position of a test case as "CT-001".
func TestCaseID(index int) string {
	return fmt.Sprintf("CT-%03d", index)
}
