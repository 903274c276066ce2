// Package report renders the per-device issue lists into the HTML document
// delivered to the operations mailbox.
package report

import (
	"html/template"
	"strings"
	"time"

	"codeberg.org/mutker/switchhealth/internal/errors"
	"codeberg.org/mutker/switchhealth/internal/fleet"
)

const timestampLayout = "2006-01-02 15:04:05"

type deviceView struct {
	Hostname string
	Address  string
	Issues   []template.HTML
}

type documentView struct {
	Timestamp string
	Devices   []deviceView
}

var tmpl = template.Must(template.New("report").Parse(documentTemplate))

// Render produces the full report document for one generation cycle.
func Render(reports []fleet.DeviceReport, generatedAt time.Time) (string, error) {
	errFactory := errors.New()

	view := documentView{
		Timestamp: generatedAt.Format(timestampLayout),
		Devices:   make([]deviceView, 0, len(reports)),
	}
	for _, r := range reports {
		device := deviceView{
			Hostname: r.Hostname,
			Address:  r.Address,
			Issues:   make([]template.HTML, 0, len(r.Issues)),
		}
		for _, issue := range r.Issues {
			device.Issues = append(device.Issues, template.HTML(issue))
		}
		view.Devices = append(view.Devices, device)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", errFactory.Wrap(errors.ErrRenderReport, err)
	}

	return buf.String(), nil
}
