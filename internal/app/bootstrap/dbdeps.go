// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/hopeworks/ngohub/internal/backend"
)

// DBDeps holds the app's backing dependencies. This frontend has no
// database of its own; the REST backend client is the whole data layer.
type DBDeps struct {
	Backend *backend.Client
}
