// Package app wires the application together: configuration, logger,
// database pool, repositories, services, GraphQL transport, and the HTTP
// server with graceful shutdown.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	gqlhandler "github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/plateful/recipebox-backend/internal/adapter/postgres"
	noterepo "github.com/plateful/recipebox-backend/internal/adapter/postgres/note"
	reciperepo "github.com/plateful/recipebox-backend/internal/adapter/postgres/recipe"
	tokenrepo "github.com/plateful/recipebox-backend/internal/adapter/postgres/token"
	userrepo "github.com/plateful/recipebox-backend/internal/adapter/postgres/user"
	"github.com/plateful/recipebox-backend/internal/auth"
	"github.com/plateful/recipebox-backend/internal/config"
	authsvc "github.com/plateful/recipebox-backend/internal/service/auth"
	notesvc "github.com/plateful/recipebox-backend/internal/service/note"
	recipesvc "github.com/plateful/recipebox-backend/internal/service/recipe"
	usersvc "github.com/plateful/recipebox-backend/internal/service/user"
	gqlpkg "github.com/plateful/recipebox-backend/internal/transport/graphql"
	"github.com/plateful/recipebox-backend/internal/transport/graphql/dataloader"
	"github.com/plateful/recipebox-backend/internal/transport/graphql/generated"
	"github.com/plateful/recipebox-backend/internal/transport/graphql/resolver"
	"github.com/plateful/recipebox-backend/internal/transport/middleware"
	"github.com/plateful/recipebox-backend/internal/transport/rest"
)

// Run is the application entry point. It blocks until ctx is cancelled,
// then shuts the HTTP server down gracefully.
func Run(ctx context.Context) error {
	// 1. Configuration and logger.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	// 2. Database pool.
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app.Run: %w", err)
	}
	defer pool.Close()

	// 3. Repositories.
	users := userrepo.New(pool)
	recipes := reciperepo.New(pool)
	notes := noterepo.New(pool)
	tokens := tokenrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	// 4. Services.
	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, tokens, jwtMgr, cfg.Auth)
	recipeService := recipesvc.NewService(logger, recipes, notes, txm)
	noteService := notesvc.NewService(logger, notes, recipes)
	userService := usersvc.NewService(logger, users)

	// 5. GraphQL server.
	res := resolver.NewResolver(logger, authService, recipeService, noteService, userService)
	schema := generated.NewExecutableSchema(generated.Config{Resolvers: res})

	gqlSrv := gqlhandler.New(schema)
	gqlSrv.AddTransport(transport.Options{})
	gqlSrv.AddTransport(transport.GET{})
	gqlSrv.AddTransport(transport.POST{})
	gqlSrv.SetQueryCache(lru.New[*ast.QueryDocument](1000))
	gqlSrv.SetErrorPresenter(gqlpkg.NewErrorPresenter(logger))
	if cfg.GraphQL.ComplexityLimit > 0 {
		gqlSrv.Use(extension.FixedComplexityLimit(cfg.GraphQL.ComplexityLimit))
	}

	// 6. Middleware chain. Auth runs before the dataloader middleware so
	// loaders see the authenticated context.
	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	dlRepos := &dataloader.Repos{User: users, Recipe: recipes}

	graphqlHandler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(authService),
		middleware.Middleware(dataloader.Middleware(dlRepos)),
	)(gqlSrv)

	// 7. Mux.
	mux := http.NewServeMux()

	healthHandler := rest.NewHealthHandler(pool, BuildVersion())
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)

	mux.Handle("POST /query", graphqlHandler)
	mux.Handle("OPTIONS /query", graphqlHandler)

	if cfg.GraphQL.PlaygroundEnabled {
		mux.Handle("GET /", playground.Handler("GraphQL", "/query"))
	}

	// 8. HTTP server with graceful shutdown.
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("app.Run: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app.Run: shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
