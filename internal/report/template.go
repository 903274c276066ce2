package report

// The issue lines carry their own markup (category glyphs and the
// &nbsp; indentation marker), so they are injected unescaped; everything
// else goes through the template engine's escaping.
const documentTemplate = `<h2>Network Health Report</h2>
<p><strong>Generated:</strong> {{.Timestamp}}</p>
{{range .Devices}}<h3>{{.Hostname}} ({{.Address}})</h3>
<ul>
{{range .Issues}}    <li>{{.}}</li>
{{end}}</ul>
{{end}}`
