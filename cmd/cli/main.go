package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"stockdash/api"
	"stockdash/cmd"
	"stockdash/internal/app"
	"stockdash/internal/config"
	"stockdash/internal/logger"
	"stockdash/internal/util"

	"github.com/spf13/cobra"
)

type cliOptions struct {
	configPath string
}

func (o cliOptions) load() (*api.ApiHandler, *config.Config, error) {
	if o.configPath == "" {
		return cmd.InitializeDependencies()
	}
	cfg, err := config.LoadFile(o.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	handler, err := cmd.InitializeDependenciesFromConfig(*cfg)
	if err != nil {
		return nil, nil, err
	}
	return handler, cfg, nil
}

func newRootCommand(out io.Writer) *cobra.Command {
	opts := &cliOptions{}
	root := &cobra.Command{
		Use:           "stockdash",
		Short:         "Explore daily closing prices of a fixed set of equities",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a yaml config file")
	root.SetOut(out)

	root.AddCommand(
		newServeCommand(opts),
		newSymbolsCommand(opts, out),
		newRenderCommand(opts, out),
		newCorrelationCommand(opts, out),
	)
	return root
}

func newServeCommand(opts *cliOptions) *cobra.Command {
	var port int
	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard api",
		RunE: func(c *cobra.Command, args []string) error {
			handler, cfg, err := opts.load()
			if err != nil {
				return err
			}
			if port == 0 {
				port = cfg.Server.Port
			}
			handler.Logger.Infow("starting api", "port", port)
			return handler.StartApi(port)
		},
	}
	c.Flags().IntVar(&port, "port", 0, "port to listen on (defaults to server.port)")
	return c
}

func newSymbolsCommand(opts *cliOptions, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "symbols",
		Short: "List the loaded symbols",
		RunE: func(c *cobra.Command, args []string) error {
			handler, _, err := opts.load()
			if err != nil {
				return err
			}
			for _, s := range handler.DashboardApp.Symbols() {
				fmt.Fprintln(out, s)
			}
			return nil
		},
	}
}

func newRenderCommand(opts *cliOptions, out io.Writer) *cobra.Command {
	input := app.DashboardInput{}
	c := &cobra.Command{
		Use:   "render",
		Short: "Render every chart for one symbol as json",
		RunE: func(c *cobra.Command, args []string) error {
			handler, _, err := opts.load()
			if err != nil {
				return err
			}
			ctx := logger.WithLogger(context.Background(), handler.Logger)
			return util.Pprint(out, handler.DashboardApp.Render(ctx, input))
		},
	}
	c.Flags().StringVar(&input.Symbol, "symbol", "", "symbol to render (defaults to the first loaded)")
	c.Flags().StringVar(&input.Frequency, "frequency", "", "Monthly, Quarterly or Yearly")
	return c
}

func newCorrelationCommand(opts *cliOptions, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "correlation",
		Short: "Print the closing price correlation matrix",
		RunE: func(c *cobra.Command, args []string) error {
			handler, _, err := opts.load()
			if err != nil {
				return err
			}
			ctx := logger.WithLogger(context.Background(), handler.Logger)
			chart, err := handler.DashboardApp.Correlation(ctx)
			if err != nil {
				return err
			}
			return util.Pprint(out, chart)
		},
	}
}

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
