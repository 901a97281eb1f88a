// Command apply fills in the Elite Media Buyer Network application from the
// terminal and posts it to the intake server.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"media-buyer-intake/pkg/catalog"
	"media-buyer-intake/pkg/clients/intake"
	"media-buyer-intake/pkg/config"
	"media-buyer-intake/pkg/form"
	"media-buyer-intake/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	var (
		endpoint string
		timeout  time.Duration
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:          "apply",
		Short:        "Apply to the Elite Media Buyer Network",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zap.NewNop()
			if verbose {
				l, err := logging.NewLogger("debug", true)
				if err != nil {
					return err
				}
				logger = l
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderHeader())

			renderer := newTerminalRenderer(out, logger)
			ctrl := form.NewController(intake.NewClient(endpoint, timeout), renderer.Render)

			a := &applicant{
				ask:  survey.AskOne,
				cat:  catalog.Default(),
				ctrl: ctrl,
			}
			return a.run(ctx)
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", cfg.IntakeEndpoint, "base URL of the intake server")
	cmd.Flags().DurationVar(&timeout, "timeout", cfg.IntakeTimeout, "HTTP timeout for the submission")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
	return cmd
}
