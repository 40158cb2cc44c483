// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"strings"

	errorsfeature "github.com/dalemusser/paperhub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/paperhub/internal/app/features/health"
	libraryfeature "github.com/dalemusser/paperhub/internal/app/features/library"
	profilefeature "github.com/dalemusser/paperhub/internal/app/features/profile"
	taxonomyfeature "github.com/dalemusser/paperhub/internal/app/features/taxonomy"
	uploadfeature "github.com/dalemusser/paperhub/internal/app/features/upload"
	profilestore "github.com/dalemusser/paperhub/internal/app/store/profiles"
	uploadstore "github.com/dalemusser/paperhub/internal/app/store/uploads"
	"github.com/dalemusser/paperhub/internal/app/system/auth"
	"github.com/dalemusser/paperhub/internal/app/system/limits"
	"github.com/dalemusser/paperhub/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
//
// PaperHub verifies Firebase ID tokens on every request (anonymous callers
// pass through), then mounts the JSON API: taxonomy and library are public,
// uploads and profile require a signed-in caller.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	resources, err := newResourceBackend(appCfg, deps, logger)
	if err != nil {
		logger.Error("resource backend init failed", zap.Error(err))
		return nil, err
	}
	blobs, err := newBlobStore(appCfg, deps)
	if err != nil {
		logger.Error("blob store init failed", zap.Error(err))
		return nil, err
	}

	am := auth.New(tokenVerifier(deps.Auth), logger)
	uploadLimiter := ratelimit.New(appCfg.UploadRatePerMinute)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) { errorsfeature.RenderNotFound(w, "") })

	// Global auth middleware: attaches the verified caller when a bearer
	// token is present, available to handlers via auth.CurrentUser(r).
	r.Use(am.Load)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, appCfg.ResourceBackend, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Locally stored uploads are served by the app itself.
	if appCfg.StorageType == StorageLocal && strings.HasPrefix(appCfg.StorageLocalURL, "/") {
		prefix := strings.TrimRight(appCfg.StorageLocalURL, "/")
		r.Handle(prefix+"/*", fileserver.Handler(prefix, appCfg.StorageLocalPath))
	}

	r.Route("/api", func(api chi.Router) {
		// Wizard dropdowns and step rules
		taxHandler := taxonomyfeature.NewHandler(errLog, logger)
		api.Mount("/taxonomy", taxonomyfeature.Routes(taxHandler))

		// Public browsing
		libHandler := libraryfeature.NewHandler(resources, errLog, logger)
		api.Mount("/library", libraryfeature.Routes(libHandler))

		// Upload wizard submissions
		upHandler := uploadfeature.NewHandler(
			resources,
			uploadstore.New(deps.MongoDatabase),
			blobs,
			limits.UploadBytes(appCfg.MaxUploadMB),
			errLog, logger,
		)
		api.Mount("/uploads", uploadfeature.Routes(upHandler, am, uploadLimiter))

		// Registration and profile
		profHandler := profilefeature.NewHandler(profilestore.New(deps.MongoDatabase), blobs, errLog, logger)
		api.Mount("/", profilefeature.Routes(profHandler, am))
	})

	return r, nil
}
