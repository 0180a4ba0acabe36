package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hotel_booking/internal/adapters/apiclient"
	"hotel_booking/internal/adapters/observability"
	"hotel_booking/internal/app"
	"hotel_booking/internal/domain"
	"hotel_booking/internal/shared"
	"hotel_booking/internal/storage"
)

const appName = "hotelctl"

// cli holds what every subcommand needs once the root pre-run has resolved
// config and picked local stores or the remote API.
type cli struct {
	cfg     shared.Config
	server  string
	verbose bool

	customers    domain.Customers
	hotels       domain.Hotels
	reservations domain.Reservations
	closeFn      func() error
}

func newRootCmd(out, errOut io.Writer) (*cobra.Command, *cli) {
	c := &cli{}
	root := &cobra.Command{
		Use:           appName,
		Short:         "Manage customers, hotels and reservations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&c.server, "server", "", "API base URL; when set, commands go through the HTTP API")
	pf.String("backend", "", "document backend: file|redis|mysql|sqlite")
	pf.String("data-dir", "", "directory for JSON documents (file backend)")
	pf.String("customers-file", "", "customers document (default customers.json)")
	pf.String("hotels-file", "", "hotels document (default hotels.json)")
	pf.String("reservations-file", "", "reservations document (default reservations.json)")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(customerCmd(c), hotelCmd(c), reservationCmd(c))
	return root, c
}

// execute runs root and releases the backend whether or not the command
// failed; cobra skips post-run hooks after an error.
func execute(ctx context.Context, root *cobra.Command, c *cli) error {
	err := root.ExecuteContext(ctx)
	if cerr := c.close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func (c *cli) close() error {
	if c.closeFn == nil {
		return nil
	}
	fn := c.closeFn
	c.closeFn = nil
	return fn()
}

func (c *cli) setup(cmd *cobra.Command) error {
	c.cfg = shared.Load()

	level := zerolog.WarnLevel
	if c.verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = observability.NewLoggerTo(c.cfg.AppEnv, cmd.ErrOrStderr()).Level(level)

	overrides := map[string]*string{
		"backend":           &c.cfg.Backend,
		"data-dir":          &c.cfg.DataDir,
		"customers-file":    &c.cfg.CustomersFile,
		"hotels-file":       &c.cfg.HotelsFile,
		"reservations-file": &c.cfg.ReservationsFile,
	}
	for name, dst := range overrides {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			*dst = f.Value.String()
		}
	}

	if c.server != "" {
		cl, err := apiclient.New(c.server, c.cfg.APIRPS)
		if err != nil {
			return err
		}
		c.customers, c.hotels, c.reservations = cl.Customers, cl.Hotels, cl.Reservations
		log.Debug().Str("server", c.server).Msg("using remote API")
		return nil
	}

	docs, closeFn, err := storage.Open(cmd.Context(), c.cfg)
	if err != nil {
		return err
	}
	customers := app.NewCustomerStore(docs, c.cfg.CustomersFile)
	hotels := app.NewHotelStore(docs, c.cfg.HotelsFile)
	c.customers, c.hotels, c.closeFn = customers, hotels, closeFn
	c.reservations = app.NewReservationStore(docs, c.cfg.ReservationsFile, customers, hotels)
	log.Debug().Str("backend", c.cfg.Backend).Str("data_dir", c.cfg.DataDir).Msg("using local stores")
	return nil
}

func main() {
	root, c := newRootCmd(os.Stdout, os.Stderr)
	if err := execute(context.Background(), root, c); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
