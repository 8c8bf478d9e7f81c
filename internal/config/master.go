package config

import "os"

type AppConfig struct {
	DebugMode      bool
	Schema         string
	RedisConfig    *RedisConfig
	PostgresConfig *PostgresConfig
	JwtConfig      *JwtConfig
	AnalysisConfig *AnalysisConfig
}

func NewSystemConfig() *AppConfig {
	schema := os.Getenv("DB_SCHEMA")
	if schema == "" {
		schema = "public"
	}
	return &AppConfig{
		DebugMode:      os.Getenv("DEBUG_MODE") == "true",
		Schema:         schema,
		RedisConfig:    NewRedisConfig(),
		PostgresConfig: NewPostgresConfig(),
		JwtConfig:      NewJwtConfig(),
		AnalysisConfig: NewAnalysisConfig(),
	}
}
