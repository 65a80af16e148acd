package render

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-formwizard/pkg/model"
)

// EncodeSubmission serialises the submitted values in the requested format.
// Only the field values are emitted; session metadata stays out of the
// payload.
func EncodeSubmission(sub model.Submission, format OutputFormat) ([]byte, error) {
	switch format {
	case OutputFormatFormURLEncoded:
		form := url.Values{}
		for name, value := range sub.Values {
			form.Set(name, value)
		}
		return []byte(form.Encode()), nil
	case OutputFormatPrettyText:
		var b strings.Builder
		for _, name := range sub.Values.Names() {
			fmt.Fprintf(&b, "%s=%s\n", name, sub.Values[name])
		}
		return []byte(b.String()), nil
	case OutputFormatJSON, "":
		return json.Marshal(sub.Values)
	default:
		return nil, fmt.Errorf("render: unsupported output format %q", format)
	}
}

// ParseOutputFormat validates a user supplied format name.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	switch format := OutputFormat(strings.ToLower(strings.TrimSpace(raw))); format {
	case "":
		return OutputFormatJSON, nil
	case OutputFormatJSON, OutputFormatFormURLEncoded, OutputFormatPrettyText:
		return format, nil
	default:
		return "", fmt.Errorf("render: unsupported output format %q", raw)
	}
}
