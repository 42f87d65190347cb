// ==============================================================================================
// FILE: cmd/prose/main.go
// ==============================================================================================
// PACKAGE: main
// PURPOSE: The `prose` CLI: new/build/clean/rebuild/run/test, spf13/cobra
//          dispatch over the internal/pipeline and internal/project
//          packages, matching spec.md §6's exit-code semantics (0 on
//          success, non-zero with diagnostics on stderr otherwise).
// ==============================================================================================

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"eloquence/internal/diagnostics"
	"eloquence/internal/pipeline"
	"eloquence/internal/project"
)

var verbose bool

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "prose",
		Short: "prose is the build tool for the Prose language",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose pipeline logging")

	root.AddCommand(newCommand())
	root.AddCommand(buildCommand())
	root.AddCommand(cleanCommand())
	root.AddCommand(rebuildCommand())
	root.AddCommand(runCommand())
	root.AddCommand(testCommand())
	return root
}

func newCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "new <name>",
		Short: "create a new project skeleton",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := project.New(".", name); err != nil {
				return reportAndFail(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s/\n", name)
			return nil
		},
	}
}

func buildCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "run the pipeline through parsing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuildOnly(cmd, ".")
		},
	}
}

func cleanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "remove the intermediate cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := project.Clean("."); err != nil {
				return reportAndFail(cmd, err)
			}
			return nil
		},
	}
}

func rebuildCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rebuild",
		Short: "clean then build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := project.Clean("."); err != nil {
				return reportAndFail(cmd, err)
			}
			return runBuildOnly(cmd, ".")
		},
	}
}

func runCommand() *cobra.Command {
	return &cobra.Command{
		Use:    "run",
		Short:  "run the program (reserved)",
		Args:   cobra.NoArgs,
		Hidden: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "run: not yet implemented")
			return nil
		},
	}
}

func testCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "run tests (reserved)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "test: not yet implemented")
			return nil
		},
	}
}

// runBuildOnly drives the pipeline through Parse, per spec.md §6's "build
// — run pipeline through parsing" (evaluation is a `run`-time concern).
func runBuildOnly(cmd *cobra.Command, dir string) error {
	log := diagnostics.NewLogger(verbose)
	defer log.Sync()

	p := pipeline.New(dir, log)
	if _, err := p.Discover(); err != nil {
		return reportAndFail(cmd, err)
	}
	if _, err := p.Tokenize(); err != nil {
		return reportAndFail(cmd, err)
	}
	if _, err := p.Parse(); err != nil {
		return reportAndFail(cmd, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "build succeeded")
	return nil
}

func reportAndFail(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
