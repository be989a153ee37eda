// Command admin is the operator CLI for the complaints portal: staff
// accounts, complaint types, complainant registration, reports and schema
// migrations. It acts as the built-in system administrator.
//
// Usage:
//
//	admin users create --name "Jane Doe" --email jane@city.gov --role EMPLOYEE
//	admin types list --all
//	admin stats
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/Memex-200/Abutig-sub000/internal/adapter/postgres"
	"github.com/Memex-200/Abutig-sub000/internal/adapter/postgres/complainant"
	"github.com/Memex-200/Abutig-sub000/internal/adapter/postgres/complaint"
	"github.com/Memex-200/Abutig-sub000/internal/adapter/postgres/complainttype"
	"github.com/Memex-200/Abutig-sub000/internal/adapter/postgres/user"
	"github.com/Memex-200/Abutig-sub000/internal/app"
	"github.com/Memex-200/Abutig-sub000/internal/config"
	"github.com/Memex-200/Abutig-sub000/internal/service/admin"
)

func main() {
	_ = godotenv.Load()

	if err := execute(context.Background(), openBackend, os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// openBackend connects to PostgreSQL and builds the admin service.
func openBackend(ctx context.Context) (*backend, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	types := complainttype.New(pool)
	svc := admin.NewService(logger, user.New(pool), types, complainant.New(pool), complaint.New(pool))

	return &backend{
		svc: svc,
		migrate: func(ctx context.Context) (int, error) {
			return postgres.Migrate(ctx, pool)
		},
		close: pool.Close,
	}, nil
}
