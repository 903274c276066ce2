// Package diag is the diagnostic rule engine: independent classifiers over
// raw switch command output, merged into one ordered issue list per device.
// The engine recognizes only "finding present" and "finding absent" — a
// malformed blob degrades to no findings for its category and never blocks
// the other categories.
package diag

import "time"

// Analyze runs every check over one device's command snapshot and returns
// the findings concatenated in fixed category order: err-disabled, power,
// security logging, CPU, temperature, topology naming. An otherwise empty
// list is replaced by the single healthy placeholder. Pure function of the
// snapshot and the reference time.
func Analyze(snap Snapshot, now time.Time) []Issue {
	var issues []Issue

	issues = append(issues, CheckErrDisabled(snap.ErrDisabled)...)
	issues = append(issues, CheckPower(snap.Power)...)
	issues = append(issues, CheckSecurityLog(snap.SecurityLog, now)...)
	issues = append(issues, CheckCPU(snap.CPU)...)
	issues = append(issues, CheckTemperature(snap.Temperature)...)
	issues = append(issues, ValidateTopology(snap.Neighbors, snap.Descriptions)...)

	if len(issues) == 0 {
		issues = append(issues, healthyIssue)
	}

	return issues
}
