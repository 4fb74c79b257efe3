package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/midbel/wc"
)

const (
	exitOk = iota
	exitSource
	exitUsage
)

func main() {
	os.Exit(execute(newRootCmd(), os.Args[1:]))
}

// newRootCmd builds the wc command. Flag parsing is left to wc.Parse: the
// options are single letter clusters that stop at the first file name.
func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:                wc.Usage,
		Short:              "print line, word and byte counts of each file",
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		Args:               cobra.ArbitraryArgs,
		RunE:               runCount,
	}
}

func runCount(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "wc",
		Level:  log.WarnLevel,
	})
	c, err := wc.New(
		wc.WithStdin(cmd.InOrStdin()),
		wc.WithStdout(cmd.OutOrStdout()),
		wc.WithStderr(cmd.ErrOrStderr()),
		wc.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	return c.Run(args)
}

// execute runs cmd with args and returns the exit status. Errors returned by
// the counter have already been written to stderr.
func execute(cmd *cobra.Command, args []string) int {
	if args == nil {
		args = []string{}
	}
	var err error
	if isCompletion(args) {
		err = runCount(cmd, args)
	} else {
		cmd.SetArgs(args)
		err = cmd.Execute()
	}
	if err == nil {
		return exitOk
	}
	if errors.Is(err, wc.ErrUsage) {
		return exitUsage
	}
	return exitSource
}

// cobra hands these to its hidden completion command even when flag parsing
// is disabled. For wc they are file names.
func isCompletion(args []string) bool {
	if len(args) == 0 {
		return false
	}
	return args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd
}
