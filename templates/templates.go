package templates

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/libretro/crowdin-progress/models"
)

const ProgressHeaderName = "progress_header"

// One block per language, the trailing blank line separates entries.
const _ProgressHeaderTemplate string = `{{ range . }}/* {{ .Name }} */
#define LANGUAGE_PROGRESS_{{ escape .Name }}_TRANSLATED {{ .TranslationProgress }}
#define LANGUAGE_PROGRESS_{{ escape .Name }}_APPROVED   {{ .ApprovalProgress }}

{{ end }}`

var progressHeader = template.Must(template.New(ProgressHeaderName).
	Funcs(template.FuncMap{"escape": EscapeName}).
	Parse(_ProgressHeaderTemplate))

// EscapeName turns a language display name into the identifier part of the
// generated constants: "Spanish, Latin America" becomes SPANISH_LATIN_AMERICA.
func EscapeName(name string) string {
	escaped := strings.ReplaceAll(name, ", ", "_")
	escaped = strings.ReplaceAll(escaped, " ", "_")
	return strings.ToUpper(escaped)
}

// RenderProgressHeader renders the #define header for entries, keeping their order.
func RenderProgressHeader(entries []models.ProgressEntry) ([]byte, error) {
	var buffer bytes.Buffer
	if err := progressHeader.Execute(&buffer, entries); err != nil {
		return nil, fmt.Errorf("templates: failure to render %s: %s", ProgressHeaderName, err)
	}
	return buffer.Bytes(), nil
}
