package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/dinein/app/routes"
	"github.com/shashiranjanraj/dinein/config"
	"github.com/shashiranjanraj/dinein/internal/kernel"
	"github.com/shashiranjanraj/dinein/internal/server"
	"github.com/shashiranjanraj/dinein/pkg/logger"
)

var serveMemory bool

// dinein serve
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTPS server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var (
			a   *app
			err error
		)
		if serveMemory {
			logger.Warn("using in-memory storage; data is lost on exit")
			a, err = bootMemory(ctx)
		} else {
			a, err = bootMongo(ctx)
		}
		if err != nil {
			return err
		}
		defer a.close(context.Background())

		handler := kernel.NewHTTPKernel(a.deps, config.StaticDir())
		return server.Run(ctx, handler, server.FromConfig())
	},
}

// dinein route:list
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := kernel.NewRouter(routes.Deps{}, "")

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range r.Routes() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}

func init() {
	serveCmd.Flags().BoolVar(&serveMemory, "memory", false, "keep data in process memory instead of MongoDB")
}
