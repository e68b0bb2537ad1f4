package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/authcorp/lenskit/codec"
	apperrors "github.com/authcorp/lenskit/errors"
	"github.com/authcorp/lenskit/logging"
)

func (a *app) getCmd() *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "get <path>",
		Short: "Print the value at a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := readUser(file)
			if err != nil {
				return err
			}
			value, err := a.paths.Get(u, args[0])
			if err != nil {
				return err
			}
			a.logger.Debug(cmd.Context(), "path read", logging.String("file", file), logging.String("path", args[0]))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "user document (YAML or JSON)")
	_ = c.MarkFlagRequired("file")
	return c
}

func (a *app) setCmd() *cobra.Command {
	var (
		file   string
		format string
		write  bool
	)

	c := &cobra.Command{
		Use:   "set <path> <value>",
		Short: "Print (or write back) the document with the value at path replaced",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			// A written document keeps the format its extension names.
			if write && format != "" {
				return apperrors.Validation("--format cannot be combined with --write").
					WithDetail("format", format)
			}
			u, err := readUser(file)
			if err != nil {
				return err
			}
			updated, err := a.paths.Set(u, args[0], args[1])
			if err != nil {
				return err
			}

			log := a.logger.With(logging.String("file", file), logging.String("path", args[0]))
			if write {
				if err := writeUser(file, updated); err != nil {
					return err
				}
				log.Info(ctx, "document updated")
				return nil
			}

			outFormat, err := a.outputFormat(format, file)
			if err != nil {
				return err
			}
			data, err := encodeUser(updated, outFormat)
			if err != nil {
				return err
			}
			log.Debug(ctx, "document rendered", logging.String("format", string(outFormat)))
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "user document (YAML or JSON)")
	c.Flags().StringVar(&format, "format", "", "output format: yaml|json (default: config, then file extension); not allowed with --write")
	c.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the file instead of printing it")
	_ = c.MarkFlagRequired("file")
	return c
}

// outputFormat picks the flag, then the configured format, then the input
// file's format.
func (a *app) outputFormat(flag, file string) (codec.Format, error) {
	for _, candidate := range []string{flag, a.cfg.Output.Format} {
		if candidate == "" {
			continue
		}
		f, err := codec.ParseFormat(candidate)
		if err != nil {
			return "", apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid output format")
		}
		return f, nil
	}
	return codec.FormatOf(file), nil
}

func (a *app) pathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "List the paths that get and set accept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(a.paths.Paths(), "\n"))
			return err
		},
	}
}
