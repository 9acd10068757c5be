// internal/app/features/inquiriesadmin/templates.go
package inquiriesadmin

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "inquiriesadmin",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
