package diag

import (
	"fmt"
	"strconv"
	"strings"
)

// tempThresholdF is the inlet reading in Fahrenheit above which a sensor row
// is reported. Fixed contract of the check.
const tempThresholdF = 100.0

// CheckTemperature reports hot inlet sensor readings. Only rows mentioning an
// inlet sensor are considered; every whitespace token that parses as a number
// is treated as a Celsius reading, anything else on the row (sensor IDs,
// state words) is skipped. One row can trigger several issues when it carries
// several readings.
func CheckTemperature(blob string) []Issue {
	var issues []Issue
	for _, line := range strings.Split(blob, "\n") {
		if !strings.Contains(strings.ToLower(line), "inlet") {
			continue
		}

		trimmed := strings.TrimSpace(line)
		for _, token := range strings.Fields(trimmed) {
			tempC, err := strconv.ParseFloat(token, 64)
			if err != nil {
				continue
			}

			tempF := tempC*9/5 + 32
			if tempF > tempThresholdF {
				issues = append(issues, Issue(fmt.Sprintf(
					"%s High inlet temperature: %.1f°F (%.1f°C) on line: %s",
					markTemperature, tempF, tempC, trimmed)))
			}
		}
	}

	return issues
}
