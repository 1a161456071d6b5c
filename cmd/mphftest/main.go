// Command mphftest builds and checks a minimal perfect hash function with every emphf construction program.
//
// Run it from the directory holding the emphf programs:
//
//	mphftest [wordlist]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/askiada/gatb-devtools/internal/config"
	"github.com/askiada/gatb-devtools/internal/logging"
	"github.com/askiada/gatb-devtools/internal/mphftest"
)

func newRootCmd(lookup func(string) (string, bool), opts ...mphftest.Option) *cobra.Command {
	return &cobra.Command{
		Use:   "mphftest [wordlist]",
		Short: "Build and check an MPHF with every emphf construction program",
		Long: `mphftest runs every emphf construction program on the word list, then checks the result with the
matching test program. The word list defaults to ` + mphftest.DefaultInput + `.
The first failing program stops the run and its exit status becomes the exit status of mphftest.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv(lookup)
			if err != nil {
				return err
			}
			logger := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
			defer func() { _ = logger.Sync() }()

			input, err := mphftest.Advise(cmd.ErrOrStderr(), cmd.CommandPath(), args)
			if err != nil {
				return err
			}

			driverOpts := []mphftest.Option{
				mphftest.WithRunner(mphftest.ExecRunner{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}),
				mphftest.WithDiagnostics(cmd.ErrOrStderr()),
				mphftest.WithLogger(logger),
				mphftest.WithPipelineOptions(cfg.PipelineOptions()...),
			}

			return mphftest.New(input, append(driverOpts, opts...)...).Run(cmd.Context())
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := newRootCmd(os.LookupEnv).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "mphftest:", err)
		os.Exit(mphftest.ExitCode(err))
	}
}
