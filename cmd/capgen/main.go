// Command capgen writes Capability implementations for marker types.
//
// Usage with go:generate:
//
//	//go:generate go run github.com/reglet-dev/reglet-capability-sdk/cmd/capgen -p plugins -t SimpleCap=test.simple -o capabilities_gen.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		pkg    string
		types  []string
		output string
	)

	cmd := &cobra.Command{
		Use:   "capgen",
		Short: "Generate Capability implementations for marker types",
		Long: `capgen writes ID and Concrete methods for each Type=id pair so the
types satisfy capability.Capability without hand-written boilerplate.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pkg == "" {
				pkg = os.Getenv("GOPACKAGE")
			}
			if pkg == "" {
				return fmt.Errorf("--package is required outside go generate")
			}
			return run(cmd, pkg, types, output)
		},
	}

	cmd.Flags().StringVarP(&pkg, "package", "p", "", "package name of the generated file (defaults to $GOPACKAGE)")
	cmd.Flags().StringArrayVarP(&types, "type", "t", nil, "declaration in the form Type=capability.id (repeatable)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to stdout)")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
