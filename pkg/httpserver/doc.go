// Package httpserver wraps net/http with functional options, env-tagged
// configuration and graceful shutdown.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Run returns when ctx is cancelled, the process receives SIGINT or SIGTERM,
// or Shutdown is called. Errors are wrapped with ErrStart or ErrShutdown.
//
// LivenessHandler and ReadinessHandler serve the /health/live and
// /health/ready probes.
package httpserver
