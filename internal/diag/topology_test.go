package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/mutker/switchhealth/internal/diag"
)

const ifDescBlob = `GigabitEthernet1/0/3    3rd floor west AP drop
GigabitEthernet1/0/9    conference room AP
`

func TestValidateTopologyFlagsBadAPName(t *testing.T) {
	neighbors := `-------------------------
Device ID: APFLOOR2
Entry address(es):
  IP address: 10.20.30.7
Platform: cisco AIR-AP3802I-B-K9,  Capabilities: Trans-Bridge
Interface: GigabitEthernet1/0/3,  Port ID (outgoing port): GigabitEthernet0
`

	issues := diag.ValidateTopology(neighbors, ifDescBlob)
	require.Len(t, issues, 2)
	assert.Equal(t, diag.Issue("📡 Improperly named Access Points detected:"), issues[0])
	assert.Equal(t, diag.Issue("&nbsp;&nbsp;- APFLOOR2 on GigabitEthernet1/0/3 — 3rd floor west AP drop"), issues[1])
}

func TestValidateTopologyAcceptsConventionalName(t *testing.T) {
	neighbors := `Device ID: AP-EAST-3A1
Interface: GigabitEthernet1/0/3,  Port ID (outgoing port): GigabitEthernet0
`

	assert.Empty(t, diag.ValidateTopology(neighbors, ifDescBlob),
		"AP-EAST-3A1 follows the convention")
}

func TestValidateTopologyIgnoresNonAPNeighbors(t *testing.T) {
	neighbors := `Device ID: dist-switch-01.example.net
Interface: TenGigabitEthernet1/1/1,  Port ID (outgoing port): Te2/0/4
`

	assert.Empty(t, diag.ValidateTopology(neighbors, ifDescBlob),
		"Names not starting with AP are out of scope")
}

func TestValidateTopologyDropsIncompleteBlocks(t *testing.T) {
	// First block never names its interface; the record must be dropped,
	// not completed with the next block's interface
	neighbors := `Device ID: APBROKEN
Entry address(es):
Device ID: AP-OK-1
Interface: GigabitEthernet1/0/9,  Port ID (outgoing port): GigabitEthernet0
`

	assert.Empty(t, diag.ValidateTopology(neighbors, ifDescBlob),
		"Incomplete block must not pair with the following interface")
}

func TestValidateTopologyIgnoresStrayInterfaceLines(t *testing.T) {
	// The second interface line arrives with no new device id; the already
	// evaluated record must not produce a second finding
	neighbors := `Device ID: APFLOOR2
Interface: GigabitEthernet1/0/3,  Port ID (outgoing port): GigabitEthernet0
Interface: GigabitEthernet1/0/9,  Port ID (outgoing port): GigabitEthernet0
`

	issues := diag.ValidateTopology(neighbors, ifDescBlob)
	require.Len(t, issues, 2, "Exactly one finding despite the stray interface line")
	assert.Contains(t, string(issues[1]), "GigabitEthernet1/0/3")
}

func TestValidateTopologyMissingDescription(t *testing.T) {
	neighbors := `Device ID: AP_3RD_FLOOR
Interface: GigabitEthernet1/0/44,  Port ID (outgoing port): GigabitEthernet0
`

	issues := diag.ValidateTopology(neighbors, "")
	require.Len(t, issues, 2)
	assert.Equal(t, diag.Issue("&nbsp;&nbsp;- AP_3RD_FLOOR on GigabitEthernet1/0/44 — (no description)"), issues[1])
}

func TestValidateTopologyLastDescriptionWins(t *testing.T) {
	descriptions := `Gi1/0/3  old description
Gi1/0/3  new description
`
	neighbors := `Device ID: APFLOOR2
Interface: Gi1/0/3,  Port ID (outgoing port): GigabitEthernet0
`

	issues := diag.ValidateTopology(neighbors, descriptions)
	require.Len(t, issues, 2)
	assert.Contains(t, string(issues[1]), "new description")
}

func TestValidateTopologyNamingRule(t *testing.T) {
	cases := []struct {
		deviceID  string
		violation bool
	}{
		{"AP-EAST-3A1", false},
		{"AP-1", false},
		{"AP-floor_2", false},
		{"APFLOOR2", true},
		{"AP", true},
		{"AP-", true},
		{"AP-east wing", true},
		{"core-switch", false},
	}

	for _, tc := range cases {
		neighbors := "Device ID: " + tc.deviceID + "\nInterface: Gi1/0/9,  Port ID (outgoing port): Gi0\n"
		issues := diag.ValidateTopology(neighbors, ifDescBlob)
		if tc.violation {
			assert.Len(t, issues, 2, "Expected %q to violate the convention", tc.deviceID)
		} else {
			assert.Empty(t, issues, "Expected %q to pass", tc.deviceID)
		}
	}
}
