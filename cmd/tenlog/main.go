// Package main provides the Tenlog command line.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/tenlog-ml/tenlog/internal/demo"
)

const version = "v0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:   "tenlog",
	Short: "Named-index tensor contraction with semiring and hypercomplex backends",
	Long: `Tenlog contracts named-index tensors driven by einsum notation, with
pluggable semiring backends for logic and path problems and a Cayley-Dickson
hypercomplex tower for algebra beyond the reals.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Tenlog %s\n", version)
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo [name]",
	Short: "Run a worked example, or list them all",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			fmt.Fprintln(out, "Demos:")
			for _, d := range demo.Catalog {
				fmt.Fprintf(out, "  %-10s %s\n", d.Name, d.Summary)
			}
			return nil
		}
		d, ok := demo.Lookup(args[0])
		if !ok {
			return errors.Errorf("unknown demo %q; run \"tenlog demo\" to list them", args[0])
		}
		return d.Run(out)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd, demoCmd)
}

func main() {
	klog.InitFlags(nil)
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
