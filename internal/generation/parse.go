package generation

import (
	"regexp"
	"strings"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/logger"
)

// Field extractors for free-form service responses. Labels may carry
// markdown emphasis or list bullets.
var (
	descriptionRe = regexp.MustCompile(`(?i)description\s*\**\s*:\s*\**[ \t]*([^\n]+)`)
	stepsRe       = regexp.MustCompile(`(?i)[ée]tapes\s*\**\s*:\s*\**[ \t]*\n?((?:[ \t]*\d+[.)][^\n]*(?:\n|$))+)`)
	expectedRe    = regexp.MustCompile(`(?i)r[ée]sultat\s+attendu\s*\**\s*:\s*\**[ \t]*([^\n]+)`)
)

// ParseDescription extracts the "Description:" field.
func ParseDescription(response string) (string, bool) {
	return field(descriptionRe, response, "description")
}

// ParseSteps extracts the numbered lines following "Étapes:", one step
// per line.
func ParseSteps(response string) (string, bool) {
	m := stepsRe.FindStringSubmatch(response)
	if m == nil {
		logger.Debug("test case response: no steps field")
		return "", false
	}
	var steps []string
	for _, line := range strings.Split(m[1], "\n") {
		if line = strings.TrimSpace(line); line != "" {
			steps = append(steps, line)
		}
	}
	if len(steps) == 0 {
		return "", false
	}
	return strings.Join(steps, "\n"), true
}

// ParseExpectedResult extracts the "Résultat attendu:" field.
func ParseExpectedResult(response string) (string, bool) {
	return field(expectedRe, response, "expected result")
}

func field(re *regexp.Regexp, response, name string) (string, bool) {
	m := re.FindStringSubmatch(response)
	if m == nil {
		logger.Debug("test case response: no %s field", name)
		return "", false
	}
	v := strings.TrimSpace(strings.Trim(strings.TrimSpace(m[1]), "*"))
	if v == "" {
		return "", false
	}
	return v, true
}
