package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/gookit/color"
	"github.com/pgavlin/jsmath"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var errorStyle = color.New(color.FgRed, color.Bold)

type options struct {
	LogLevel string
	NoColor  bool
}

func (o *options) flagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", 0)
	flags.StringVar(&o.LogLevel, "log-level", "error", "logging level: panic, fatal, error, warn, info, debug or trace")
	flags.BoolVar(&o.NoColor, "no-color", false, "disable colored output")
	return flags
}

func (o *options) apply() error {
	lvl, err := log.ParseLevel(o.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	log.SetLevel(lvl)

	if o.NoColor || os.Getenv("NO_COLOR") != "" {
		color.Disable()
	}
	return nil
}

// evalAll evaluates each expression read from r and writes its result to out,
// one per line.
func evalAll(env *jsmath.Env, name string, r io.Reader, out io.Writer) error {
	expressions, err := jsmath.ParseAll(r)
	if err != nil {
		return fmt.Errorf("parsing %v: %w", name, err)
	}
	log.Debugf("Parsed %d expressions from %v.", len(expressions), name)

	for _, x := range expressions {
		v, err := env.Run(x)
		if err != nil {
			return err
		}
		if err := jsmath.Encode(out, v); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}
	return nil
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmdRoot := &cobra.Command{
		Use:   "jsmath [file]",
		Short: "Evaluate JavaScript Math and Number builtins over s-expressions",
		Long: "jsmath reads s-expressions from a file (or standard input) and evaluates them\n" +
			"against the JavaScript Math and Number builtins, printing each result.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmdRoot.PersistentFlags().AddFlagSet(opts.flagSet())
	cmdRoot.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return opts.apply()
	}
	cmdRoot.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return evalAll(jsmath.NewEnv(), "<stdin>", cmd.InOrStdin(), stdout)
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		return evalAll(jsmath.NewEnv(), args[0], f, stdout)
	}

	cmdEval := &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate expressions given as arguments",
		Args:  cobra.MinimumNArgs(1),
	}
	cmdEval.RunE = func(cmd *cobra.Command, args []string) error {
		return evalAll(jsmath.NewEnv(), "<args>", strings.NewReader(strings.Join(args, "\n")), stdout)
	}

	cmdREPL := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive read-eval-print loop",
		Args:  cobra.NoArgs,
	}
	cmdREPL.RunE = func(cmd *cobra.Command, args []string) error {
		return runREPL(jsmath.NewEnv(), stdout, stderr)
	}

	vopts := &verifyOptions{}
	cmdVerify := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check Math.fround and Math.clz32 against the hardware",
		Long: "verify compares Math.fround with the float32 conversion and Math.clz32 with\n" +
			"math/bits over random samples, and fails if any result differs.",
		Args: cobra.NoArgs,
	}
	cmdVerify.Flags().AddFlagSet(vopts.flagSet())
	cmdVerify.RunE = func(cmd *cobra.Command, args []string) error {
		mismatches, err := verify(cmd.Context(), vopts)
		if err != nil {
			return err
		}
		for _, m := range mismatches {
			fmt.Fprintln(stdout, m)
		}
		if len(mismatches) != 0 {
			return fmt.Errorf("%d mismatches in %d samples", len(mismatches), vopts.Samples)
		}
		fmt.Fprintf(stdout, "ok: %d samples\n", vopts.Samples)
		return nil
	}

	cmdRoot.AddCommand(cmdEval, cmdREPL, cmdVerify)
	return cmdRoot
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCommand(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		log.Debugf("Command failed: %+v", err)
		fmt.Fprintln(os.Stderr, errorStyle.Sprintf("error: %v", err))
		stop()
		os.Exit(1)
	}
}
