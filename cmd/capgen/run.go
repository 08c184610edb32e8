package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/reglet-dev/reglet-capability-sdk/internal/capgen"
	"github.com/spf13/cobra"
)

func run(cmd *cobra.Command, pkg string, types []string, output string) error {
	decls := make([]capgen.Declaration, 0, len(types))
	for _, t := range types {
		d, err := capgen.ParseDeclaration(t)
		if err != nil {
			return err
		}
		decls = append(decls, d)
	}

	var buf bytes.Buffer
	if err := capgen.Generate(&buf, pkg, decls); err != nil {
		return fmt.Errorf("generating capabilities: %w", err)
	}

	if output == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	return nil
}
