package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Memex-200/Abutig-sub000/internal/service/admin"
)

func (c *cli) typesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "Manage complaint types",
	}
	cmd.AddCommand(
		c.typesCreateCmd(),
		c.typesListCmd(),
		c.typesSetActiveCmd("activate", true),
		c.typesSetActiveCmd("deactivate", false),
	)
	return cmd
}

func (c *cli) typesCreateCmd() *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a complaint type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := admin.CreateTypeInput{Name: name}
			if cmd.Flags().Changed("description") {
				in.Description = &description
			}
			t, err := c.be.svc.CreateType(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "created type %s %q\n", t.ID, t.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "type name")
	cmd.Flags().StringVar(&description, "description", "", "optional description")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func (c *cli) typesListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List complaint types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			types, err := c.be.svc.ListTypes(cmd.Context(), all)
			if err != nil {
				return err
			}
			tw := c.table()
			fmt.Fprintln(tw, "ID\tNAME\tACTIVE")
			for _, t := range types {
				fmt.Fprintf(tw, "%s\t%s\t%t\n", t.ID, t.Name, t.IsActive)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include inactive types")
	return cmd
}

func (c *cli) typesSetActiveCmd(use string, active bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <type-id>",
		Short: strings.ToUpper(use[:1]) + use[1:] + " a complaint type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			t, err := c.be.svc.SetTypeActive(cmd.Context(), id, active)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "%s active=%t\n", t.ID, t.IsActive)
			return nil
		},
	}
}
