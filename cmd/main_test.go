package main

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()

	assert.Equal(t, "config.env", configPath)
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()

	assert.Equal(t, "myconfig.env", configPath)
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()
	os.Setenv("JWT_SECRET_KEY", "test-secret")

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaAddr, kafkaTopic,
		jwtSecretKey, jwtExpSecond,
		err := parseConfig("nonexistent.env")

	require.NoError(t, err)
	assert.Equal(t, "localhost", appHost)
	assert.Equal(t, "8080", appPort)
	assert.Equal(t, "info", logLevel)
	assert.Equal(t, "localhost", pgHost)
	assert.Equal(t, 5432, pgPort)
	assert.Equal(t, "user", pgUser)
	assert.Equal(t, "password", pgPassword)
	assert.Equal(t, "courses", pgDB)
	assert.Equal(t, 16, pgMaxOpenConns)
	assert.Equal(t, 8, pgMaxIdleConns)
	assert.Equal(t, "localhost", redisHost)
	assert.Equal(t, 6379, redisPort)
	assert.Equal(t, 0, redisDB)
	assert.Empty(t, redisPassword)
	assert.Empty(t, kafkaAddr)
	assert.Equal(t, "course-events", kafkaTopic)
	assert.Equal(t, "test-secret", jwtSecretKey)
	assert.Equal(t, 3600, jwtExpSecond)
}

func TestParseConfig_FromEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "0.0.0.0")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")
	os.Setenv("POSTGRES_HOST", "db")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("REDIS_HOST", "cache")
	os.Setenv("KAFKA_ADDR", "broker:9092")
	os.Setenv("KAFKA_TOPIC", "catalog")
	os.Setenv("JWT_SECRET_KEY", "another-secret")
	os.Setenv("JWT_EXP_SECOND", "120")

	appHost, appPort, logLevel,
		pgHost, pgPort, _, _, _,
		_, _,
		redisHost, _, _, _,
		kafkaAddr, kafkaTopic,
		jwtSecretKey, jwtExpSecond,
		err := parseConfig("nonexistent.env")

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", appHost)
	assert.Equal(t, "9090", appPort)
	assert.Equal(t, "debug", logLevel)
	assert.Equal(t, "db", pgHost)
	assert.Equal(t, 5433, pgPort)
	assert.Equal(t, "cache", redisHost)
	assert.Equal(t, "broker:9092", kafkaAddr)
	assert.Equal(t, "catalog", kafkaTopic)
	assert.Equal(t, "another-secret", jwtSecretKey)
	assert.Equal(t, 120, jwtExpSecond)
}

func TestParseConfig_MissingSecret(t *testing.T) {
	resetEnv()

	_, _, _,
		_, _, _, _, _,
		_, _,
		_, _, _, _,
		_, _,
		_, _,
		err := parseConfig("nonexistent.env")

	assert.Error(t, err)
}

func TestParseConfig_InvalidNumber(t *testing.T) {
	resetEnv()
	os.Setenv("JWT_SECRET_KEY", "test-secret")
	os.Setenv("POSTGRES_PORT", "not-a-number")

	_, _, _,
		_, _, _, _, _,
		_, _,
		_, _, _, _,
		_, _,
		_, _,
		err := parseConfig("nonexistent.env")

	assert.Error(t, err)
}
