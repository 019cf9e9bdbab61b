package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/symgolab/symdiff"
)

var (
	debugFlag  bool
	configPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "symdiff",
		Short:         "Symbolic expression trees: differentiate, simplify, evaluate",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if debugFlag {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+defaultConfigPath+" if present)")
	rootCmd.AddCommand(demoCmd(), dotCmd(), latexCmd(), versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "symdiff:", err)
		os.Exit(1)
	}
}

// demoExpression builds the walk-through expression
// sqrt(x^2 + sin(x)*2 + exp(x)*3).
func demoExpression() (symdiff.Node, *symdiff.Variable) {
	x := symdiff.Var("x")
	f := symdiff.Sqrt(symdiff.Add(
		symdiff.Add(symdiff.Pow(x, 2), symdiff.Mul(symdiff.Sin(x), 2)),
		symdiff.Mul(symdiff.Exp(x), 3),
	))
	return f, x
}

func demoCmd() *cobra.Command {
	var at float64
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk a sample expression through diff, simplify, eval and compile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("at") {
				cfg.At = at
			}
			f, x := demoExpression()
			slog.Debug("demo expression built", "render", f.Render())

			fmt.Println("f(x)  =", f.Render())

			d, err := f.Diff(x)
			if err != nil {
				return errors.Wrap(err, "differentiate")
			}
			simplified, err := symdiff.Simplify(d, symdiff.WithMaxSteps(cfg.MaxSteps))
			if err != nil {
				return errors.Wrap(err, "simplify derivative")
			}
			fmt.Println("f'(x) =", simplified.Render())

			binds := symdiff.Bindings{x.Name(): cfg.At}
			fv, err := f.Call(binds)
			if err != nil {
				return errors.Wrapf(err, "evaluate f at %v", cfg.At)
			}
			dv, err := simplified.Call(binds)
			if err != nil {
				return errors.Wrapf(err, "evaluate f' at %v", cfg.At)
			}
			fmt.Printf("f(%v)  = %v\n", cfg.At, fv)
			fmt.Printf("f'(%v) = %v\n", cfg.At, dv)

			prog, err := symdiff.Compile(f)
			if err != nil {
				return errors.Wrap(err, "compile")
			}
			cv, err := prog.Invoke(binds)
			if err != nil {
				return errors.Wrap(err, "invoke compiled evaluator")
			}
			fmt.Printf("compiled f(%v) = %v\n", cfg.At, cv)
			fmt.Println("source =", prog.Source())
			return nil
		},
	}
	cmd.Flags().Float64Var(&at, "at", 1.0, "evaluation point")
	return cmd
}

func dotCmd() *cobra.Command {
	var ofDerivative bool
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Emit the sample expression as a Graphviz digraph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := selectedExpression(ofDerivative)
			if err != nil {
				return err
			}
			return symdiff.WriteDOT(os.Stdout, n)
		},
	}
	cmd.Flags().BoolVar(&ofDerivative, "diff", false, "export the derivative instead")
	return cmd
}

func latexCmd() *cobra.Command {
	var ofDerivative bool
	cmd := &cobra.Command{
		Use:   "latex",
		Short: "Emit the sample expression as LaTeX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := selectedExpression(ofDerivative)
			if err != nil {
				return err
			}
			fmt.Println(n.LaTeX())
			return nil
		},
	}
	cmd.Flags().BoolVar(&ofDerivative, "diff", false, "export the derivative instead")
	return cmd
}

func selectedExpression(ofDerivative bool) (symdiff.Node, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	f, x := demoExpression()
	if !ofDerivative {
		return f, nil
	}
	d, err := f.Diff(x)
	if err != nil {
		return nil, errors.Wrap(err, "differentiate")
	}
	simplified, err := symdiff.Simplify(d, symdiff.WithMaxSteps(cfg.MaxSteps))
	if err != nil {
		return nil, errors.Wrap(err, "simplify derivative")
	}
	return simplified, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the symdiff version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(symdiff.Version())
		},
	}
}
