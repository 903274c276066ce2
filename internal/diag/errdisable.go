package diag

import "strings"

// CheckErrDisabled reports interfaces the switch has forced into the
// err-disabled state. Each matching status row is kept verbatim under a
// single category header; no matches means no output at all.
func CheckErrDisabled(blob string) []Issue {
	var interfaces []string
	for _, line := range strings.Split(blob, "\n") {
		if strings.Contains(strings.ToLower(line), "err-disabled") {
			interfaces = append(interfaces, strings.TrimSpace(line))
		}
	}

	if len(interfaces) == 0 {
		return nil
	}

	issues := make([]Issue, 0, len(interfaces)+1)
	issues = append(issues, Issue(markErrDisabled+" Err-disabled interfaces detected:"))
	for _, intf := range interfaces {
		issues = append(issues, subItem(intf))
	}

	return issues
}
