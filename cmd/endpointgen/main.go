package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"endpointgen/internal/config"
	"endpointgen/internal/generator"
	"endpointgen/internal/logging"
	"endpointgen/internal/options"
	"endpointgen/internal/parser"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var version = "dev"

var errNoCommand = errors.New("no command given")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// cobra reads os.Args for a nil slice
	if args == nil {
		args = []string{}
	}

	cmd := rootCmd(stdout, stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, color.New(color.FgRed).Sprintf("error: %v", err))
		return 1
	}
	return 0
}

func rootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "endpointgen <command> [--flag value | -f value]...",
		Short: "Scaffold FastEndpoints endpoints from project metadata",
		Long: `endpointgen renders FastEndpoints endpoint, request, response, validator
and mapper classes for an entity described by the project metadata.

Run "endpointgen commands" for every command keyword and its options.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Usage()
				return errNoCommand
			}
			return generate(args, stdout, stderr)
		},
	}

	root.AddCommand(commandsCmd(), versionCmd())
	return root
}

func generate(tokens []string, stdout, stderr io.Writer) error {
	if err := options.Validate(); err != nil {
		panic(err)
	}

	arg, err := parser.Parse(tokens)
	if err != nil {
		return err
	}

	settings, err := config.Load(config.Path())
	if err != nil {
		return err
	}

	logger := logging.New(stderr, logging.Enabled())
	logger.Debug("command parsed", "command", arg.Command, "name", arg.Name, "entity", arg.Entity)

	manager := generator.NewManager(settings, logger)
	path, err := manager.GenerateAndSave(arg, stdout)
	if err != nil {
		return err
	}

	if path != "" {
		fmt.Fprintln(stderr, color.New(color.FgGreen).Sprintf("✓ wrote %s", path))
	}
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "endpointgen %s\n", version)
		},
	}
}
