// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/hopeworks/ngohub/internal/app/system/auth"
	"go.uber.org/zap"
)

type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
}

func NewHandler(sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		SessionMgr: sessionMgr,
	}
}

// ServeLogout clears the admin session and sends the visitor back to the
// public site. The backend token is stateless, so there is nothing to
// revoke server-side; dropping the cookies is the whole operation.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	h.SessionMgr.Clear(w, r)

	// HTMX handling: use HX-Redirect to force a client-side navigation to "/".
	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Redirect", "/")
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
