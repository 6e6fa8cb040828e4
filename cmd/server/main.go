package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/formintake/modules/users"
	"github.com/dmitrymomot/formintake/pkg/config"
	"github.com/dmitrymomot/formintake/pkg/environment"
	"github.com/dmitrymomot/formintake/pkg/httpserver"
	"github.com/dmitrymomot/formintake/pkg/logger"
	"github.com/dmitrymomot/formintake/pkg/metrics"
	"github.com/dmitrymomot/formintake/pkg/newuser"
	"github.com/dmitrymomot/formintake/pkg/requestid"
)

type appConfig struct {
	Env      environment.Environment `env:"APP_ENV" envDefault:"development"`
	Name     string                  `env:"APP_NAME" envDefault:"formintake"`
	LogLevel string                  `env:"LOG_LEVEL"`
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		app     appConfig
		srvCfg  httpserver.Config
		userCfg users.Config
	)
	if err := config.Load(&app); err != nil {
		return err
	}
	if err := config.Load(&srvCfg); err != nil {
		return err
	}
	if err := config.Load(&userCfg); err != nil {
		return err
	}

	log, err := newLogger(app)
	if err != nil {
		return err
	}

	m := metrics.New()
	svc, err := users.NewCreateUserService(userCfg, log, m, users.DefaultViews())
	if err != nil {
		return fmt.Errorf("create_user: %w", err)
	}

	r := chi.NewRouter()
	r.Use(
		middleware.RealIP,
		requestid.Middleware,
		environment.Middleware(app.Env),
		middleware.Recoverer,
	)

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(log, httpserver.Check{
		Name: "schema",
		Fn: func(context.Context) error {
			return newuser.ValidateSchema(svc.Schema())
		},
	}))
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Mount("/", users.Router(users.RouterOptions{CreateUser: svc}))

	log.InfoContext(ctx, "starting",
		slog.String("env", app.Env.String()),
		slog.Any("fields", svc.Schema().Names()),
	)

	srv := httpserver.NewFromConfig(srvCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, r)
}

func newLogger(app appConfig) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(app.Env, app.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if app.LogLevel != "" {
		lvl, err := logger.ParseLevel(app.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(lvl))
	}
	return logger.New(opts...), nil
}
