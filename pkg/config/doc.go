// Package config loads typed configuration structs from environment
// variables using github.com/caarlos0/env/v11 struct tags, with optional
// dotenv files read through github.com/joho/godotenv.
//
// Configuration is read once at startup; Load caches the parsed value per
// struct type so packages can ask for their own section without re-parsing.
//
//	var srv httpserver.Config
//	config.MustLoad(&srv)
//
// Parse failures wrap ErrParsingConfig and list every offending variable.
package config
