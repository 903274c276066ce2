package diag

import (
	"strings"
	"time"
)

// CheckSecurityLog selects DHCP snooping log lines from the current calendar
// month. Freshness is a string-prefix match against the month abbreviation as
// IOS renders it in the log timestamp; a device logging in another format
// yields no matches rather than an error. The reference time is supplied by
// the caller so the filter stays a pure function.
func CheckSecurityLog(blob string, now time.Time) []Issue {
	month := now.Format("Jan")

	var messages []string
	for _, line := range strings.Split(blob, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.Contains(strings.ToLower(trimmed), "dhcp_snooping") && strings.HasPrefix(trimmed, month) {
			messages = append(messages, trimmed)
		}
	}

	if len(messages) == 0 {
		return nil
	}

	issues := make([]Issue, 0, len(messages)+1)
	issues = append(issues, Issue(markSecurity+" DHCP Snooping messages (this month):"))
	for _, msg := range messages {
		issues = append(issues, subItem(msg))
	}

	return issues
}
