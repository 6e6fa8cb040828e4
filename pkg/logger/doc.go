// Package logger builds *slog.Logger instances from functional options and
// enriches records with values carried in context.Context.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "formintake"),
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithContextExtractors(
//			requestid.LoggerExtractor(),
//			environment.LoggerExtractor(),
//		),
//	)
//	log.InfoContext(ctx, "user created", logger.Field("avatar"), logger.Bytes(n))
//
// Attribute helpers in attr.go keep key names consistent across packages.
// Error and the other helpers that take optional values return an empty Attr
// for zero input, which slog drops.
package logger
