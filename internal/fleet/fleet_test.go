package fleet_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/mutker/switchhealth/internal/diag"
	"codeberg.org/mutker/switchhealth/internal/fleet"
	"codeberg.org/mutker/switchhealth/internal/session"
)

var refTime = time.Date(2025, time.June, 20, 9, 30, 0, 0, time.UTC)

type fakeCollector struct {
	capture session.Capture
	delay   time.Duration
}

func (c *fakeCollector) Collect(_ context.Context) (*session.Capture, error) {
	time.Sleep(c.delay)
	capture := c.capture
	return &capture, nil
}

func (c *fakeCollector) Close() error { return nil }

func TestInspectPreservesInventoryOrder(t *testing.T) {
	addrs := []string{"10.0.0.1", "10.0.0.2", "10.0.0.3", "10.0.0.4"}

	// Earlier devices finish later; report order must still follow addrs
	dial := func(addr string) (session.Collector, error) {
		delay := time.Duration(0)
		if addr == "10.0.0.1" {
			delay = 50 * time.Millisecond
		}
		return &fakeCollector{
			capture: session.Capture{Hostname: "sw-" + addr},
			delay:   delay,
		}, nil
	}

	reports := fleet.Inspect(context.Background(), addrs, dial, refTime, 4)
	require.Len(t, reports, 4)
	for i, addr := range addrs {
		assert.Equal(t, addr, reports[i].Address, "Report %d out of inventory order", i)
		assert.Equal(t, "sw-"+addr, reports[i].Hostname)
	}
}

func TestInspectHealthyDevice(t *testing.T) {
	dial := func(addr string) (session.Collector, error) {
		return &fakeCollector{capture: session.Capture{Hostname: "sw-core"}}, nil
	}

	reports := fleet.Inspect(context.Background(), []string{"10.0.0.1"}, dial, refTime, 1)
	require.Len(t, reports, 1)
	require.Len(t, reports[0].Issues, 1)
	assert.Equal(t, diag.Issue("✅ No critical issues detected."), reports[0].Issues[0])
}

func TestInspectConnectionFailure(t *testing.T) {
	dial := func(addr string) (session.Collector, error) {
		if addr == "10.0.0.2" {
			return nil, fmt.Errorf("dial tcp %s:22: connection refused", addr)
		}
		return &fakeCollector{capture: session.Capture{Hostname: "sw-" + addr}}, nil
	}

	reports := fleet.Inspect(context.Background(), []string{"10.0.0.1", "10.0.0.2"}, dial, refTime, 2)
	require.Len(t, reports, 2)

	assert.Equal(t, "sw-10.0.0.1", reports[0].Hostname)

	failed := reports[1]
	assert.Equal(t, "10.0.0.2", failed.Hostname, "Address stands in for the hostname")
	require.Len(t, failed.Issues, 1, "Synthetic issue replaces the aggregator output")
	assert.True(t, strings.HasPrefix(string(failed.Issues[0]), "❌ Failed to connect: "))
	assert.Contains(t, string(failed.Issues[0]), "connection refused")
}

func TestInspectAnalyzesCapture(t *testing.T) {
	dial := func(addr string) (session.Collector, error) {
		return &fakeCollector{capture: session.Capture{
			Hostname: "sw-access-01",
			Snapshot: diag.Snapshot{CPU: "five minutes: 88%"},
		}}, nil
	}

	reports := fleet.Inspect(context.Background(), []string{"10.0.0.1"}, dial, refTime, 1)
	require.Len(t, reports, 1)
	require.Len(t, reports[0].Issues, 1)
	assert.Equal(t, diag.Issue("⚙️ Sustained high CPU load: 88% (5 min avg)"), reports[0].Issues[0])
}
