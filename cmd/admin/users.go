package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Memex-200/Abutig-sub000/internal/domain"
	"github.com/Memex-200/Abutig-sub000/internal/service/admin"
)

func (c *cli) usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage staff accounts",
	}
	cmd.AddCommand(
		c.usersCreateCmd(),
		c.usersListCmd(),
		c.usersSetActiveCmd("activate", true),
		c.usersSetActiveCmd("deactivate", false),
	)
	return cmd
}

func (c *cli) usersCreateCmd() *cobra.Command {
	var name, email, role string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an ADMIN or EMPLOYEE account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := c.be.svc.CreateUser(cmd.Context(), admin.CreateUserInput{
				FullName: name,
				Email:    email,
				Role:     domain.Role(strings.ToUpper(role)),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "created %s %s (%s)\n", u.Role, u.ID, u.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&role, "role", "EMPLOYEE", "ADMIN or EMPLOYEE")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func (c *cli) usersListCmd() *cobra.Command {
	var (
		role           string
		activeOnly     bool
		page, pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List staff accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := domain.UserFilter{Page: page, PageSize: pageSize}
			if role != "" {
				r := domain.Role(strings.ToUpper(role))
				filter.Role = &r
			}
			if activeOnly {
				filter.IsActive = &activeOnly
			}

			res, err := c.be.svc.ListUsers(cmd.Context(), filter)
			if err != nil {
				return err
			}

			tw := c.table()
			fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE\tACTIVE")
			for _, u := range res.Items {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n", u.ID, u.FullName, u.Email, u.Role, u.IsActive)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "page %d/%d, %d total\n", res.Page, res.TotalPages, res.Total)
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", "", "filter by role")
	cmd.Flags().BoolVar(&activeOnly, "active", false, "only active accounts")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", domain.MaxPageSize, "page size")
	return cmd
}

func (c *cli) usersSetActiveCmd(use string, active bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <user-id>",
		Short: strings.ToUpper(use[:1]) + use[1:] + " a staff account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			u, err := c.be.svc.SetUserActive(cmd.Context(), id, active)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "%s active=%t\n", u.ID, u.IsActive)
			return nil
		},
	}
}
