// Package cli implements the lensctl commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/authcorp/lenskit/config"
	"github.com/authcorp/lenskit/domain/user"
	apperrors "github.com/authcorp/lenskit/errors"
	"github.com/authcorp/lenskit/logging"
	"github.com/authcorp/lenskit/optics/path"
)

// Options wires the command tree to its surroundings.
type Options struct {
	Out    io.Writer
	ErrOut io.Writer
	// Environment replaces the process environment for config overrides
	// when non-nil.
	Environment map[string]string
}

type app struct {
	opts   Options
	cfg    config.Config
	logger *logging.Logger
	paths  *path.Table[user.User]
}

// Execute runs lensctl with os.Args and returns the process exit status.
func Execute() int {
	cmd := NewRootCmd(Options{Out: os.Stdout, ErrOut: os.Stderr})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if appErr, ok := apperrors.AsType[*apperrors.AppError](err); ok {
			return appErr.ExitCode()
		}
		return 1
	}
	return 0
}

// NewRootCmd builds the lensctl command tree.
func NewRootCmd(opts Options) *cobra.Command {
	a := &app{
		opts:   opts,
		logger: logging.Nop(),
		paths:  user.Paths(),
	}

	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:           "lensctl",
		Short:         "Read and update user documents through lenses",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Loader{Environment: opts.Environment}.Load(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			a.cfg = cfg
			a.logger = logging.New(logging.Config{
				ServiceName: cfg.Service.Name,
				MinLevel:    logging.ParseLevel(cfg.Log.Level),
				Output:      opts.ErrOut,
			})

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logging.WithCorrelationID(ctx, uuid.NewString()))
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.logger.Sync()
		},
	}

	cmd.SetOut(opts.Out)
	cmd.SetErr(opts.ErrOut)
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (YAML or JSON)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug|info|warn|error")

	cmd.AddCommand(
		a.getCmd(),
		a.setCmd(),
		a.pathsCmd(),
		a.duckCmd(),
	)
	return cmd
}
