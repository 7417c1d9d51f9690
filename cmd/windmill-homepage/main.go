// Command windmill-homepage serves, exports and checks the Windmill homepage.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/windmill-labs/windmill-homepage/internal/config"
	"github.com/windmill-labs/windmill-homepage/pkg/logging"
)

var version = "dev"

// app holds what every subcommand needs once flags are parsed.
type app struct {
	cfg    config.Config
	logger logging.Logger

	// flag values, applied over the environment when set
	addr       string
	content    string
	static     string
	baseURL    string
	logLevel   string
	logBackend string
	logJSON    bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "windmill-homepage",
		Short:         "Render and serve the Windmill homepage",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.addr, "addr", "", "listen address (env WINDMILL_HOMEPAGE_ADDR)")
	flags.StringVar(&a.content, "content", "", "feature catalog file; built-in catalog when empty (env WINDMILL_HOMEPAGE_CONTENT_FILE)")
	flags.StringVar(&a.static, "static", "", "static assets directory (env WINDMILL_HOMEPAGE_STATIC_DIR)")
	flags.StringVar(&a.baseURL, "base-url", "", "canonical site URL (env WINDMILL_HOMEPAGE_BASE_URL)")
	flags.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (env WINDMILL_HOMEPAGE_LOG_LEVEL)")
	flags.StringVar(&a.logBackend, "log-backend", "", "slog or zap (env WINDMILL_HOMEPAGE_LOG_BACKEND)")
	flags.BoolVar(&a.logJSON, "log-json", false, "log as JSON (env WINDMILL_HOMEPAGE_LOG_JSON)")

	root.AddCommand(
		newServeCmd(a),
		newDevCmd(a),
		newRenderCmd(a),
		newValidateCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Addr = a.addr
	}
	if flags.Changed("content") {
		cfg.ContentFile = a.content
	}
	if flags.Changed("static") {
		cfg.StaticDir = a.static
	}
	if flags.Changed("base-url") {
		cfg.BaseURL = a.baseURL
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-backend") {
		cfg.LogBackend = a.logBackend
	}
	if flags.Changed("log-json") {
		cfg.LogJSON = a.logJSON
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := cfg.Logging()
	opts.Output = cmd.ErrOrStderr()
	logger, err := logging.New(opts)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger.With(logging.String("service", cfg.ServiceName))
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "windmill-homepage %s\n", version)
			return err
		},
	}
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
