package diag

import "strings"

// powerKeywords mark a power-environment status row as unhealthy.
var powerKeywords = []string{"not present", "fail", "off", "bad", "shutdown"}

// CheckPower flags power-supply status rows containing any of the problem
// keywords. Unlike the other checks each qualifying row becomes its own
// standalone issue rather than a sub-item under a shared header.
func CheckPower(blob string) []Issue {
	var issues []Issue
	for _, line := range strings.Split(blob, "\n") {
		lower := strings.ToLower(line)
		for _, keyword := range powerKeywords {
			if strings.Contains(lower, keyword) {
				issues = append(issues, Issue(markPower+" Power supply issue: "+strings.TrimSpace(line)))
				break
			}
		}
	}

	return issues
}
