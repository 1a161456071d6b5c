// Command gccfilter shortens the gatb-core template instantiations found in compiler and linker output.
//
//	make -j 4 2>&1 | gccfilter | less -R
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/askiada/gatb-devtools/internal/annotate"
	"github.com/askiada/gatb-devtools/internal/config"
	"github.com/askiada/gatb-devtools/internal/logging"
)

func newRootCmd(lookup func(string) (string, bool)) *cobra.Command {
	return &cobra.Command{
		Use:   "gccfilter [file|-]...",
		Short: "Colorize gatb-core build logs",
		Long: `gccfilter reads build logs from the given files, or from stdin when there is none or for "-",
and writes them to stdout with the gatb-core template instantiations replaced by short colorized aliases.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv(lookup)
			if err != nil {
				return err
			}
			logger := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
			defer func() { _ = logger.Sync() }()

			inputs, closeAll, err := annotate.OpenInputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer func() {
				if err := closeAll(); err != nil {
					logger.Warn("unable to close inputs", zap.Error(err))
				}
			}()

			ann := annotate.New(annotate.DefaultRules(),
				annotate.WithLogger(logger),
				annotate.WithPipelineOptions(cfg.PipelineOptions()...),
			)

			return errors.Wrap(ann.Run(cmd.Context(), cmd.OutOrStdout(), inputs...), "unable to annotate")
		},
	}
}

func main() {
	err := newRootCmd(os.LookupEnv).ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, "gccfilter:", err)
		os.Exit(1)
	}
}
