// Package cli implements the vecmath command-line tool.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hupe1980/vecmath"
)

// Version is the application version.
// This value is intended to be set at build time using ldflags.
var Version = "dev"

type contextKey struct{}

// state is built once per invocation by the root command's PersistentPreRunE.
type state struct {
	cfg  Config
	opts []vecmath.Option
	log  *vecmath.Logger
}

func stateFrom(cmd *cobra.Command) *state {
	if s, ok := cmd.Context().Value(contextKey{}).(*state); ok {
		return s
	}
	return &state{log: vecmath.DefaultLogger()}
}

// NewRootCmd builds the command tree. Each call uses its own viper instance so
// tests can run commands independently.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	setDefaults(v)
	var cfgFile string

	root := &cobra.Command{
		Use:           "vecmath",
		Short:         "vecmath evaluates vector algebra from the command line.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v, cfgFile)
			if err != nil {
				return err
			}
			opts, err := cfg.Options()
			if err != nil {
				return err
			}
			logger, err := cfg.Log.Logger()
			if err != nil {
				return err
			}
			vecmath.SetLogger(logger)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, contextKey{}, &state{cfg: cfg, opts: opts, log: logger}))
			return nil
		},
	}
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	flags := root.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./vecmath.yaml)")
	flags.Float64("epsilon", vecmath.DefaultEpsilon, "tolerance for approximate predicates")
	flags.String("convention", vecmath.AntilinearFirst.String(), "complex inner product convention (antilinear-first|antilinear-second)")
	flags.String("log-level", "warn", "log level (debug|info|warn|error)")
	flags.String("log-format", "text", "log format (text|json)")

	_ = v.BindPFlag("epsilon", flags.Lookup("epsilon"))
	_ = v.BindPFlag("convention", flags.Lookup("convention"))
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("log.format", flags.Lookup("log-format"))

	root.AddCommand(
		newDotCmd(),
		newCrossCmd(),
		newTripleCmd(),
		newNormCmd(),
		newNormalizeCmd(),
		newAngleCmd(),
		newProjectCmd(),
		newPredicateCmd("parallel", "Report whether two vectors are parallel", 2, parallel),
		newPredicateCmd("perpendicular", "Report whether two vectors are perpendicular", 2, perpendicular),
		newPredicateCmd("coplanar", "Report whether three 3D vectors are coplanar", 3, coplanar),
		newDistanceCmd(),
		newCoordsCmd(),
		newRotateCmd(),
		newRandomCmd(),
		newEncodeCmd(),
		newDecodeCmd(),
		newSupportCmd(),
	)
	return root
}

// Execute runs the command tree with args and reports errors to errOut.
func Execute(ctx context.Context, args []string, out, errOut io.Writer) error {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(errOut, "Error:", err)
		return err
	}
	return nil
}

// run wraps a command body so that vector faults become command errors.
func run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		var err error
		if faultErr := vecmath.Catch(func() { err = fn(cmd, args) }); faultErr != nil {
			return faultErr
		}
		return err
	}
}
