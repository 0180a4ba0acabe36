package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hotel_booking/internal/domain"
)

func customerCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{Use: "customer", Short: "Manage customers"}

	var id, name, email string
	create := &cobra.Command{
		Use:   "create",
		Short: "Register a customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cu, err := c.customers.Create(cmd.Context(), id, name, email)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cu.Summary())
			return nil
		},
	}
	create.Flags().StringVar(&id, "id", "", "customer id")
	create.Flags().StringVar(&name, "name", "", "customer name")
	create.Flags().StringVar(&email, "email", "", "customer email")

	show := &cobra.Command{
		Use:   "show ID",
		Short: "Show one customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cu, err := c.customers.Find(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cu.Summary())
			return nil
		},
	}

	var newName, newEmail string
	modify := &cobra.Command{
		Use:   "modify ID",
		Short: "Change a customer's name and/or email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var upd domain.CustomerUpdate
			if cmd.Flags().Changed("name") {
				upd.Name = &newName
			}
			if cmd.Flags().Changed("email") {
				upd.Email = &newEmail
			}
			cu, err := c.customers.Modify(cmd.Context(), args[0], upd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cu.Summary())
			return nil
		},
	}
	modify.Flags().StringVar(&newName, "name", "", "new name")
	modify.Flags().StringVar(&newEmail, "email", "", "new email")

	del := &cobra.Command{
		Use:   "delete ID",
		Short: "Remove a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.customers.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted customer %s\n", args[0])
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all customers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := c.customers.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, cu := range all {
				fmt.Fprintln(cmd.OutOrStdout(), cu.Summary())
			}
			return nil
		},
	}

	cmd.AddCommand(create, show, modify, del, list)
	return cmd
}
