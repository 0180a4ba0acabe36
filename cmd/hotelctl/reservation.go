package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func reservationCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{Use: "reservation", Short: "Book and cancel rooms"}

	var id, customerID, hotelID string
	create := &cobra.Command{
		Use:   "create",
		Short: "Book one room for a customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rid := id
			if rid == "" {
				rid = uuid.NewString()
			}
			r, err := c.reservations.Create(cmd.Context(), rid, customerID, hotelID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.Summary())
			return nil
		},
	}
	create.Flags().StringVar(&id, "id", "", "reservation id (generated when empty)")
	create.Flags().StringVar(&customerID, "customer", "", "customer id")
	create.Flags().StringVar(&hotelID, "hotel", "", "hotel id")

	show := &cobra.Command{
		Use:   "show ID",
		Short: "Show one reservation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.reservations.Find(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.Summary())
			return nil
		},
	}

	cancel := &cobra.Command{
		Use:     "cancel ID",
		Aliases: []string{"delete"},
		Short:   "Cancel a reservation and give its room back",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.reservations.Cancel(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cancelled reservation %s\n", args[0])
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all reservations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := c.reservations.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, r := range all {
				fmt.Fprintln(cmd.OutOrStdout(), r.Summary())
			}
			return nil
		},
	}

	cmd.AddCommand(create, show, cancel, list)
	return cmd
}
