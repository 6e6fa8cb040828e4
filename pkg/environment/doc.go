// Package environment names the deployment environment the service runs in
// and carries it through context.Context and structured logs.
//
// Environment values are parsed from APP_ENV with Parse (or UnmarshalText when
// used in an env-tagged config struct). Short aliases are accepted:
// "dev", "stage" and "prod".
//
// # Usage
//
//	env, err := environment.Parse(os.Getenv("APP_ENV"))
//	if err != nil {
//		return err
//	}
//
//	r := chi.NewRouter()
//	r.Use(environment.Middleware(env))
//
//	if environment.FromContext(ctx).IsProduction() {
//		// hide internal error details
//	}
//
// LoggerExtractor returns a function suitable for logger.WithContextExtractors.
package environment
