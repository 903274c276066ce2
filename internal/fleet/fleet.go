// Package fleet runs the diagnostic engine across the device inventory.
// Devices are independent, so collection fans out concurrently; the result
// order always matches inventory order regardless of completion order.
package fleet

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"codeberg.org/mutker/switchhealth/internal/diag"
	"codeberg.org/mutker/switchhealth/internal/logger"
	"codeberg.org/mutker/switchhealth/internal/session"
)

// markFailure prefixes the synthetic issue substituted for devices whose
// session could not be established at all.
const markFailure = "❌"

// DeviceReport associates one device's identity with its ordered issue list.
type DeviceReport struct {
	Hostname string
	Address  string
	Issues   []diag.Issue
}

// DialFunc opens a collector for one device address.
type DialFunc func(addr string) (session.Collector, error)

// Inspect collects and analyzes every device in addrs, at most concurrency
// devices in flight at once. A device that cannot be reached yields a report
// with a single connection-failure issue instead of aborting the run; the
// reference time is captured once by the caller so every device is judged
// against the same month.
func Inspect(ctx context.Context, addrs []string, dial DialFunc, now time.Time, concurrency int) []DeviceReport {
	if concurrency < 1 {
		concurrency = 1
	}

	reports := make([]DeviceReport, len(addrs))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)

	for i, addr := range addrs {
		i, addr := i, addr
		group.Go(func() error {
			reports[i] = inspectDevice(groupCtx, addr, dial, now)
			return nil
		})
	}

	// Workers never return errors; failures become per-device reports
	_ = group.Wait()

	return reports
}

func inspectDevice(ctx context.Context, addr string, dial DialFunc, now time.Time) DeviceReport {
	logger.Info().Str("device", addr).Msg("Connecting")

	collector, err := dial(addr)
	if err != nil {
		logger.Warn().Str("device", addr).Err(err).Msg("Connection failed")
		return failureReport(addr, err)
	}
	defer func() {
		if err := collector.Close(); err != nil {
			logger.Debug().Str("device", addr).Err(err).Msg("Session close failed")
		}
	}()

	capture, err := collector.Collect(ctx)
	if err != nil {
		logger.Warn().Str("device", addr).Err(err).Msg("Collection failed")
		return failureReport(addr, err)
	}

	return DeviceReport{
		Hostname: capture.Hostname,
		Address:  addr,
		Issues:   diag.Analyze(capture.Snapshot, now),
	}
}

// failureReport substitutes for the aggregator when no blobs could be
// obtained; the hostname falls back to the address.
func failureReport(addr string, err error) DeviceReport {
	return DeviceReport{
		Hostname: addr,
		Address:  addr,
		Issues:   []diag.Issue{diag.Issue(markFailure + " Failed to connect: " + err.Error())},
	}
}
