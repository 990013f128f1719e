// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	authfeature "github.com/dalemusser/taskhub/internal/app/features/authapi"
	groupsfeature "github.com/dalemusser/taskhub/internal/app/features/groups"
	grouptasksfeature "github.com/dalemusser/taskhub/internal/app/features/grouptasks"
	healthfeature "github.com/dalemusser/taskhub/internal/app/features/health"
	tasksfeature "github.com/dalemusser/taskhub/internal/app/features/tasks"
	groupstore "github.com/dalemusser/taskhub/internal/app/store/groups"
	grouptaskstore "github.com/dalemusser/taskhub/internal/app/store/grouptasks"
	taskstore "github.com/dalemusser/taskhub/internal/app/store/tasks"
	userstore "github.com/dalemusser/taskhub/internal/app/store/users"
	"github.com/dalemusser/taskhub/internal/app/system/auth"
	"github.com/dalemusser/taskhub/internal/app/system/googleauth"
	"github.com/dalemusser/taskhub/internal/app/system/token"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE
// app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and any Startup hooks have completed. TaskHub builds its stores, the
// token manager and bearer guard, and mounts every feature router under
// the /api prefix. The health banner is also reachable at the bare root
// for load balancers that probe "/".
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.TaskHubMongoDatabase

	users := userstore.New(db)
	tasks := taskstore.New(db)
	groups := groupstore.New(db)
	groupTasks := grouptaskstore.New(db)

	tokens := token.NewManager(appCfg.AccessSecret, appCfg.RefreshSecret)
	guard := auth.NewGuard(userstore.Fetcher{Store: users}, tokens, logger)
	verifier := googleauth.NewVerifier(appCfg.GoogleClientID, logger)

	healthHandler := healthfeature.NewHandler(deps.TaskHubMongoClient, logger)
	authHandler := authfeature.NewHandler(users, tokens, verifier, logger)
	tasksHandler := tasksfeature.NewHandler(tasks, logger)
	groupTasksHandler := grouptasksfeature.NewHandler(groups, groupTasks, logger)
	groupsHandler := groupsfeature.NewHandler(groups, groupTasks, users, logger)

	r := chi.NewRouter()

	r.Route("/api", func(api chi.Router) {
		api.Get("/", healthHandler.ServeRoot)
		api.Get("/health", healthHandler.ServeHealth)
		api.Mount("/auth", authfeature.Routes(authHandler, guard))
		api.Mount("/tasks", tasksfeature.Routes(tasksHandler, guard))
		api.Mount("/groups", groupsfeature.Routes(groupsHandler, groupTasksHandler, guard))
	})

	// Bare-root banner for probes that don't know the /api prefix.
	r.Get("/", healthHandler.ServeRoot)

	return r, nil
}
