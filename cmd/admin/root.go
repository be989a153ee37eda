package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Memex-200/Abutig-sub000/internal/app"
	"github.com/Memex-200/Abutig-sub000/internal/domain"
	"github.com/Memex-200/Abutig-sub000/internal/service/admin"
	"github.com/Memex-200/Abutig-sub000/pkg/ctxutil"
)

type adminService interface {
	CreateUser(ctx context.Context, in admin.CreateUserInput) (*domain.User, error)
	ListUsers(ctx context.Context, filter domain.UserFilter) (*domain.Page[domain.User], error)
	SetUserActive(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error)
	CreateType(ctx context.Context, in admin.CreateTypeInput) (*domain.ComplaintType, error)
	ListTypes(ctx context.Context, includeInactive bool) ([]domain.ComplaintType, error)
	SetTypeActive(ctx context.Context, id uuid.UUID, active bool) (*domain.ComplaintType, error)
	RegisterComplainant(ctx context.Context, in admin.RegisterComplainantInput) (*domain.Complainant, error)
	Stats(ctx context.Context) (*admin.Stats, error)
}

type backend struct {
	svc     adminService
	migrate func(ctx context.Context) (int, error)
	close   func()
}

type opener func(ctx context.Context) (*backend, error)

// cli carries the lazily opened backend shared by all subcommands.
type cli struct {
	open opener
	out  io.Writer
	be   *backend
}

// execute runs the command tree and releases the backend afterwards, even
// when the command fails.
func execute(ctx context.Context, open opener, out io.Writer, args []string) error {
	c := &cli{open: open, out: out}
	root := c.rootCmd()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if c.be != nil && c.be.close != nil {
		c.be.close()
	}
	return err
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "admin",
		Short:         "Operator tooling for the complaints portal",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			be, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			c.be = be
			cmd.SetContext(ctxutil.WithActor(cmd.Context(), domain.SystemActor))
			return nil
		},
	}
	root.SetOut(c.out)

	root.AddCommand(
		c.usersCmd(),
		c.typesCmd(),
		c.complainantsCmd(),
		c.statsCmd(),
		c.migrateCmd(),
	)
	return root
}

func (c *cli) table() *tabwriter.Writer {
	return tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
}

func parseID(arg string) (uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q: %w", arg, err)
	}
	return id, nil
}

func (c *cli) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := c.be.migrate(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "applied %d migrations\n", n)
			return nil
		},
	}
}
