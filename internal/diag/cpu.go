package diag

import (
	"fmt"
	"regexp"
	"strconv"
)

// cpuThreshold is the five-minute average percentage above which sustained
// load is reported. Fixed contract of the check, not configuration.
const cpuThreshold = 60

var cpuFiveMinutePattern = regexp.MustCompile(`five minutes: (\d+)%`)

// CheckCPU extracts the five-minute CPU average from the utilization summary
// and reports it when it exceeds the threshold. An absent pattern is a normal
// negative result; the upstream command may have returned unexpected output.
func CheckCPU(blob string) []Issue {
	match := cpuFiveMinutePattern.FindStringSubmatch(blob)
	if match == nil {
		return nil
	}

	pct, err := strconv.Atoi(match[1])
	if err != nil || pct <= cpuThreshold {
		return nil
	}

	return []Issue{Issue(fmt.Sprintf("%s Sustained high CPU load: %d%% (5 min avg)", markCPU, pct))}
}
