package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mikeschinkel/go-sqltemplater"
	"github.com/spf13/cobra"
)

func newREPLCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Template SQL interactively, one statement per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd, opts)
		},
	}
}

func runREPL(cmd *cobra.Command, opts *options) error {
	t, loaded, err := opts.newTemplater(cmd)
	if err != nil {
		return err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "\033[1;36msql>\033[0m ",
		HistoryFile:       filepath.Join(homeDir, ".sqltemplater_history"),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		Stdin:             io.NopCloser(cmd.InOrStdin()),
		Stdout:            cmd.OutOrStdout(),
		Stderr:            cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize readline: %w", err)
	}
	defer rl.Close()

	for n := 1; ; n++ {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "exit", "quit", `\q`:
			return nil
		}
		err = renderOne(rl.Stdout(), t, opts, sqltemplater.SQLQuery(line), fmt.Sprintf("<repl:%d>", n), loaded)
		if err != nil {
			fmt.Fprintf(rl.Stderr(), "Error: %v\n", err)
		}
	}
}
