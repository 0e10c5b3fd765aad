// Command createuser provisions an account in the catalog database.
// There is no registration page, so operators run this once per user.
//
//	createuser -username admin -password secret -role admin
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/sbilibin2017/course-catalog/internal/models"
	"github.com/sbilibin2017/course-catalog/internal/repositories"
	"github.com/sbilibin2017/course-catalog/internal/services"
	"github.com/sbilibin2017/course-catalog/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	configPath := flag.String("c", "config.env", "Path to configuration file")
	username := flag.String("username", "", "Username of the new account")
	password := flag.String("password", "", "Password of the new account")
	role := flag.String("role", models.RoleMember, "Account role: member or admin")
	flag.Parse()

	if *username == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	dsn, err := parseConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), dsn, *username, *password, *role); err != nil {
		log.Fatalf("failed to create user: %v", err)
	}

	fmt.Printf("user %q created with role %q\n", *username, *role)
}

// parseConfig loads environment variables from a file and builds the
// PostgreSQL DSN.
func parseConfig(path string) (string, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	pgHost := getEnv("POSTGRES_HOST", "localhost")
	pgUser := getEnv("POSTGRES_USER", "user")
	pgPassword := getEnv("POSTGRES_PASSWORD", "password")
	pgDB := getEnv("POSTGRES_DB", "courses")
	pgPort, err := strconv.Atoi(getEnv("POSTGRES_PORT", "5432"))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB), nil
}

func run(ctx context.Context, dsn, username, password, role string) error {
	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()

	if err := migrations.Up(db.DB); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)

	// Sessions and tokens are not involved in provisioning.
	authService := services.NewAuthService(userReadRepo, userWriteRepo, nil, nil)

	return authService.Register(ctx, username, password, role)
}
