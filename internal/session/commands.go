package session

// The diagnostic queries issued per device, one per finding category, plus
// the hostname probe. Command syntax targets the Cisco IOS family this fleet
// runs; output from other families is not guaranteed to parse.
const (
	cmdErrDisabled  = "show interfaces status err-disabled"
	cmdPower        = "show environment power"
	cmdSecurityLog  = "show logging | include DHCP_SNOOPING"
	cmdCPU          = "show processes cpu | include five minutes"
	cmdTemperature  = "show environment temperature"
	cmdNeighbors    = "show cdp neighbors detail"
	cmdDescriptions = "show interfaces description"

	// First token of the reply is the configured hostname
	cmdHostname = "show version | include uptime"
)
