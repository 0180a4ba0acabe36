package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"hotel_booking/internal/domain"
)

func hotelCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{Use: "hotel", Short: "Manage hotels and their room counters"}

	var id, name, location string
	var rooms int
	create := &cobra.Command{
		Use:   "create",
		Short: "Register a hotel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := c.hotels.Create(cmd.Context(), id, name, location, rooms)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), h.Summary())
			return nil
		},
	}
	create.Flags().StringVar(&id, "id", "", "hotel id")
	create.Flags().StringVar(&name, "name", "", "hotel name")
	create.Flags().StringVar(&location, "location", "", "hotel location")
	create.Flags().IntVar(&rooms, "rooms", 0, "total rooms (> 0)")

	show := &cobra.Command{
		Use:   "show ID",
		Short: "Show one hotel",
		Args:  cobra.ExactArgs(1),
		RunE:  c.printHotel(c.hotelsFind),
	}

	var newName, newLocation string
	var newRooms int
	modify := &cobra.Command{
		Use:   "modify ID",
		Short: "Change a hotel's name, location or room total",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var upd domain.HotelUpdate
			if cmd.Flags().Changed("name") {
				upd.Name = &newName
			}
			if cmd.Flags().Changed("location") {
				upd.Location = &newLocation
			}
			if cmd.Flags().Changed("rooms") {
				upd.Rooms = &newRooms
			}
			h, err := c.hotels.Modify(cmd.Context(), args[0], upd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), h.Summary())
			return nil
		},
	}
	modify.Flags().StringVar(&newName, "name", "", "new name")
	modify.Flags().StringVar(&newLocation, "location", "", "new location")
	modify.Flags().IntVar(&newRooms, "rooms", 0, "new room total (> 0)")

	del := &cobra.Command{
		Use:   "delete ID",
		Short: "Remove a hotel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.hotels.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted hotel %s\n", args[0])
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all hotels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := c.hotels.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, h := range all {
				fmt.Fprintln(cmd.OutOrStdout(), h.Summary())
			}
			return nil
		},
	}

	reserve := &cobra.Command{
		Use:   "reserve ID",
		Short: "Take one room",
		Args:  cobra.ExactArgs(1),
		RunE:  c.printHotel(c.hotelsReserve),
	}
	release := &cobra.Command{
		Use:   "release ID",
		Short: "Give one room back",
		Args:  cobra.ExactArgs(1),
		RunE:  c.printHotel(c.hotelsRelease),
	}

	cmd.AddCommand(create, show, modify, del, list, reserve, release)
	return cmd
}

// c.hotels is only set in the root pre-run, so the commands bind through
// these methods instead of the interface value.
func (c *cli) hotelsFind(ctx context.Context, id string) (domain.Hotel, error) {
	return c.hotels.Find(ctx, id)
}

func (c *cli) hotelsReserve(ctx context.Context, id string) (domain.Hotel, error) {
	return c.hotels.Reserve(ctx, id)
}

func (c *cli) hotelsRelease(ctx context.Context, id string) (domain.Hotel, error) {
	return c.hotels.Release(ctx, id)
}

func (c *cli) printHotel(fn func(context.Context, string) (domain.Hotel, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		h, err := fn(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), h.Summary())
		return nil
	}
}
