// internal/app/features/visionmission/templates.go
package visionmission

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "visionmission",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
