package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/koxlang/kox/kox"
)

func main() {
	if err := runCLI(os.Args, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) >= 2 {
		switch args[1] {
		case "help", "-h", "--help":
			printUsage()
			return nil
		default:
			return runFile(args[1], stdout)
		}
	}

	// No script: evaluate piped input directly, or start the REPL on a
	// terminal.
	if f, ok := stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return runREPL()
	}
	input, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return runSource(string(input), stdout)
}

func runFile(path string, stdout io.Writer) error {
	input, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return runSource(string(input), stdout)
}

// runSource reports the first parse or runtime error; a non-interactive run
// stops there and the process exits non-zero.
func runSource(input string, stdout io.Writer) error {
	in := kox.NewInterpreter(kox.Config{Stdout: stdout})
	result, err := in.Run(input)
	if err != nil {
		return err
	}
	if !result.IsNil() {
		fmt.Fprintln(stdout, result.String())
	}
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: kox [script]")
	fmt.Fprintln(os.Stderr, "  with no script, reads stdin, or starts the REPL on a terminal")
}
