/*
File    : quill/cmd/quill/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Command quill is the process entry point: it wires CLI flags to the
// REPL driver and starts it against standard output.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quill/repl"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		prompt  string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "quill",
		Short: "quill is an interactive driver for a small expression language",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := repl.New(prompt)
			r.NoColor = noColor
			r.Start(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVar(&prompt, "prompt", "quill>> ", "prompt string shown before each input line")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}
