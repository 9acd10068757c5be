// internal/app/bootstrap/routes.go
package bootstrap

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"

	aboutusfeature "github.com/hopeworks/ngohub/internal/app/features/aboutus"
	contactfeature "github.com/hopeworks/ngohub/internal/app/features/contact"
	dashboardfeature "github.com/hopeworks/ngohub/internal/app/features/dashboard"
	errorsfeature "github.com/hopeworks/ngohub/internal/app/features/errors"
	healthfeature "github.com/hopeworks/ngohub/internal/app/features/health"
	homefeature "github.com/hopeworks/ngohub/internal/app/features/home"
	inquiriesfeature "github.com/hopeworks/ngohub/internal/app/features/inquiriesadmin"
	loginfeature "github.com/hopeworks/ngohub/internal/app/features/login"
	logoutfeature "github.com/hopeworks/ngohub/internal/app/features/logout"
	managerfeature "github.com/hopeworks/ngohub/internal/app/features/manager"
	ourworkfeature "github.com/hopeworks/ngohub/internal/app/features/ourwork"
	profilefeature "github.com/hopeworks/ngohub/internal/app/features/profileadmin"
	projectsfeature "github.com/hopeworks/ngohub/internal/app/features/projectsadmin"
	vmfeature "github.com/hopeworks/ngohub/internal/app/features/visionmission"
	"github.com/hopeworks/ngohub/internal/app/system/auth"
)

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// WAFFLE calls this after configuration, the backend client, and any
// Startup hooks have completed. The layout:
//
//	public:  / /about-us /vision-mission /our-work /contact
//	auth:    /login /logout
//	admin:   /admin (dashboard), /admin/content, /admin/projects,
//	         /admin/inquiries, /admin/profile, /admin/password
//	         (all behind RequireAdmin)
//	infra:   /health /static
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(
		appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain,
		appCfg.SessionTTL, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	csrfProtect := csrf.Protect(
		[]byte(appCfg.SessionKey),
		csrf.Secure(secure),
		csrf.Path("/"),
	)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators.
	healthHandler := healthfeature.NewHandler(deps.Backend, logger)
	r.Get("/health", healthHandler.Serve)

	// Static assets with pre-compressed file support (gzip/brotli).
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	// Everything that renders a page runs behind the session loader (so
	// templates see the signed-in admin) and CSRF protection (every form
	// carries the token).
	r.Group(func(r chi.Router) {
		r.Use(sessionMgr.LoadSession)
		r.Use(csrfProtect)

		// Public pages, cacheable for anonymous visitors.
		r.Group(func(r chi.Router) {
			r.Use(publicCache(appCfg.PublicCacheTTL))

			homeHandler := homefeature.NewHandler(deps.Backend, logger)
			r.Mount("/", homefeature.Routes(homeHandler))

			aboutHandler := aboutusfeature.NewHandler(deps.Backend, logger)
			r.Mount("/about-us", aboutusfeature.Routes(aboutHandler))

			vmHandler := vmfeature.NewHandler(deps.Backend, logger)
			r.Mount("/vision-mission", vmfeature.Routes(vmHandler))

			ourworkHandler := ourworkfeature.NewHandler(deps.Backend, logger)
			r.Mount("/our-work", ourworkfeature.Routes(ourworkHandler))

			contactHandler := contactfeature.NewHandler(deps.Backend, logger)
			r.Mount("/contact", contactfeature.Routes(contactHandler))
		})

		// Authentication
		loginHandler := loginfeature.NewHandler(deps.Backend, sessionMgr, logger)
		r.Mount("/login", loginfeature.Routes(loginHandler))

		logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
		r.Mount("/logout", logoutfeature.Routes(logoutHandler))

		// Error pages
		r.Get("/forbidden", errorsHandler.Forbidden)

		// Admin area
		r.Route("/admin", func(r chi.Router) {
			r.Use(sessionMgr.RequireAdmin)

			dashboardHandler := dashboardfeature.NewHandler(deps.Backend, sessionMgr, logger)
			r.Get("/", dashboardHandler.ServeDashboard)

			managerHandler := managerfeature.NewHandler(deps.Backend, sessionMgr, logger)
			r.Mount("/content", managerfeature.Routes(managerHandler))

			projectsHandler := projectsfeature.NewHandler(deps.Backend, sessionMgr, logger)
			r.Mount("/projects", projectsfeature.Routes(projectsHandler))

			inquiriesHandler := inquiriesfeature.NewHandler(deps.Backend, sessionMgr, logger)
			r.Mount("/inquiries", inquiriesfeature.Routes(inquiriesHandler))

			profileHandler := profilefeature.NewHandler(deps.Backend, sessionMgr, logger)
			r.Mount("/profile", profilefeature.Routes(profileHandler))
			r.Mount("/password", profilefeature.PasswordRoutes(profileHandler))
		})
	})

	return r, nil
}

// publicCache marks anonymous GET responses on the public pages as
// cacheable. Signed-in visitors see their own session state in the page
// chrome, so their responses are never cached. Runs after LoadSession.
func publicCache(ttl time.Duration) func(http.Handler) http.Handler {
	value := fmt.Sprintf("public, max-age=%d", int(ttl.Seconds()))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ttl > 0 && r.Method == http.MethodGet {
				if _, loggedIn := auth.CurrentUser(r); !loggedIn {
					w.Header().Set("Cache-Control", value)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
