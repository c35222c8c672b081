package domain

// Origin records where a control point came from.
type Origin string

const (
	// OriginImported marks a control point read from an auxiliary document.
	OriginImported Origin = "imported"

	// OriginGenerated marks a control point synthesised from a rule.
	OriginGenerated Origin = "generated"
)

// IsValid returns true if the origin is recognised.
func (o Origin) IsValid() bool {
	return o == OriginImported || o == OriginGenerated
}

// ControlPoint (PDC) is a single verification statement.
type ControlPoint struct {
	// Text is the normalised statement, terminated by one period.
	Text string `json:"text"`

	// Origin is the provenance of the statement.
	Origin Origin `json:"origin"`

	// Rule is the rule the control point was generated from.
	// Empty for imported control points.
	Rule string `json:"rule,omitempty"`
}

// Texts returns the statements of the given control points in order.
func Texts(pdcs []ControlPoint) []string {
	out := make([]string, len(pdcs))
	for i, p := range pdcs {
		out[i] = p.Text
	}
	return out
}
