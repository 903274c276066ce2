package diag

// Issue is one formatted, display-only finding line. Category markers and
// the sub-item indentation are part of the line itself; downstream rendering
// includes issues verbatim.
type Issue string

// Category markers, one glyph per finding class. These are fixed output
// contract, the report template passes them through unescaped.
const (
	markErrDisabled = "⛔"
	markPower       = "🔌"
	markSecurity    = "🛡️"
	markCPU         = "⚙️"
	markTemperature = "🌡️"
	markTopology    = "📡"
	markHealthy     = "✅"
)

// subItemPrefix indents a finding under its category header when the report
// is rendered as HTML list items.
const subItemPrefix = "&nbsp;&nbsp;- "

// healthyIssue stands in for an empty finding list; a device report never
// carries zero lines.
const healthyIssue = Issue(markHealthy + " No critical issues detected.")

func subItem(s string) Issue {
	return Issue(subItemPrefix + s)
}

// Snapshot holds the raw output of the seven diagnostic commands captured
// from one device. Blobs are opaque multi-line text; a missing or garbled
// capture is an empty string and simply yields no findings.
type Snapshot struct {
	ErrDisabled  string
	Power        string
	SecurityLog  string
	CPU          string
	Temperature  string
	Neighbors    string
	Descriptions string
}
