package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Memex-200/Abutig-sub000/internal/service/admin"
)

func (c *cli) complainantsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complainants",
		Short: "Manage registered citizens",
	}

	var name, nationalID, phone, email string
	create := &cobra.Command{
		Use:   "create",
		Short: "Register a complainant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := admin.RegisterComplainantInput{FullName: name, NationalID: nationalID, Phone: phone}
			if email != "" {
				in.Email = &email
			}
			cp, err := c.be.svc.RegisterComplainant(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "registered complainant %s (%s)\n", cp.ID, cp.NationalID)
			return nil
		},
	}
	create.Flags().StringVar(&name, "name", "", "full name")
	create.Flags().StringVar(&nationalID, "national-id", "", "14-digit national id")
	create.Flags().StringVar(&phone, "phone", "", "phone number")
	create.Flags().StringVar(&email, "email", "", "optional email")
	_ = create.MarkFlagRequired("name")
	_ = create.MarkFlagRequired("national-id")
	_ = create.MarkFlagRequired("phone")

	cmd.AddCommand(create)
	return cmd
}

func (c *cli) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show complaint counts by status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := c.be.svc.Stats(cmd.Context())
			if err != nil {
				return err
			}
			tw := c.table()
			fmt.Fprintln(tw, "STATUS\tCOUNT")
			for _, sc := range s.ByStatus {
				fmt.Fprintf(tw, "%s\t%d\n", sc.Status, sc.Count)
			}
			fmt.Fprintf(tw, "TOTAL\t%d\n", s.Total)
			return tw.Flush()
		},
	}
}
