package diag

import (
	"regexp"
	"strings"
)

// apNamePattern is the accepted access point naming convention: "AP-"
// followed by word characters and hyphens, nothing else. Deliberately
// permissive about segment count.
var apNamePattern = regexp.MustCompile(`^AP-[\w\-]+$`)

const noDescription = "(no description)"

// neighborState tracks how much of the current neighbor block has been seen.
type neighborState int

const (
	stateEmpty neighborState = iota
	stateDeviceSeen
)

// neighborAccumulator collects one neighbor record while scanning the
// discovery output line by line. A record is evaluated only when both the
// device id and the local interface have been seen; partial blocks are
// dropped on the next "Device ID:" line without ever being evaluated, and
// the reset after evaluation means a stray "Interface:" line cannot
// re-trigger the previous record.
type neighborAccumulator struct {
	state    neighborState
	deviceID string
}

func (a *neighborAccumulator) observeDeviceID(id string) {
	a.deviceID = id
	a.state = stateDeviceSeen
}

// observeInterface completes the record when a device id is pending. It
// returns the completed record and resets the accumulator; otherwise ok is
// false and the line is ignored.
func (a *neighborAccumulator) observeInterface(localIf string) (NeighborRecord, bool) {
	if a.state != stateDeviceSeen {
		return NeighborRecord{}, false
	}

	record := NeighborRecord{DeviceID: a.deviceID, LocalInterface: localIf}
	a.state = stateEmpty
	a.deviceID = ""

	return record, true
}

// NeighborRecord is one completed neighbor-discovery entry.
type NeighborRecord struct {
	DeviceID       string
	LocalInterface string
}

// buildDescriptionIndex maps interface names to their free-text description.
// First token of each row is the interface, the remainder is the description
// rejoined with single spaces. Last occurrence wins on duplicate interfaces.
func buildDescriptionIndex(blob string) map[string]string {
	index := make(map[string]string)
	for _, line := range strings.Split(blob, "\n") {
		parts := strings.Fields(line)
		if len(parts) >= 2 {
			index[parts[0]] = strings.Join(parts[1:], " ")
		}
	}

	return index
}

// ValidateTopology cross-references neighbor-discovery records with the
// interface-description table and flags access points violating the naming
// convention. Only the local interface of each neighbor entry is used; the
// peer-side port after the comma is ignored.
func ValidateTopology(neighborBlob, descriptionBlob string) []Issue {
	descriptions := buildDescriptionIndex(descriptionBlob)

	var violations []string
	var acc neighborAccumulator

	for _, raw := range strings.Split(neighborBlob, "\n") {
		line := strings.TrimSpace(raw)
		lower := strings.ToLower(line)

		switch {
		case strings.HasPrefix(lower, "device id:"):
			acc.observeDeviceID(strings.TrimSpace(line[len("device id:"):]))
		case strings.HasPrefix(lower, "interface:"):
			localIf := line[len("interface:"):]
			if comma := strings.Index(localIf, ","); comma >= 0 {
				localIf = localIf[:comma]
			}

			record, ok := acc.observeInterface(strings.TrimSpace(localIf))
			if !ok {
				continue
			}

			if strings.HasPrefix(record.DeviceID, "AP") && !apNamePattern.MatchString(record.DeviceID) {
				desc, found := descriptions[record.LocalInterface]
				if !found {
					desc = noDescription
				}
				violations = append(violations, record.DeviceID+" on "+record.LocalInterface+" — "+desc)
			}
		}
	}

	if len(violations) == 0 {
		return nil
	}

	issues := make([]Issue, 0, len(violations)+1)
	issues = append(issues, Issue(markTopology+" Improperly named Access Points detected:"))
	for _, v := range violations {
		issues = append(issues, subItem(v))
	}

	return issues
}
