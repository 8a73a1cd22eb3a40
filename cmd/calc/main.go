// Package main provides calc, a small arithmetic CLI built on argue.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/toejough/argue"
	"github.com/toejough/argue/internal/config"
)

func main() {
	os.Exit(run(argue.OsEnv{}, os.LookupEnv))
}

// unexported constants.
const (
	configEnv = "CALC_CONFIG"
	version   = "0.1.0"
)

// unexported variables.
var (
	//nolint:gochecknoglobals // read-only declarations shared by every parse
	commandArg = argue.Positional{Name: "command", Desc: "operation to run"}
	//nolint:gochecknoglobals // subcommand words in help order
	commandNames = []string{"add", "sub", "mult", "echo"}
	errNoCommand = errors.New("no command given, try --help")
	//nolint:gochecknoglobals // read-only declarations shared by every parse
	lhsArg = argue.Positional{Name: "lhs", Desc: "left operand"}
	//nolint:gochecknoglobals // operator per binary subcommand
	operations = map[string]operation{
		"add":  {symbol: "+", apply: func(a, b int64) int64 { return a + b }},
		"sub":  {symbol: "-", apply: func(a, b int64) int64 { return a - b }},
		"mult": {symbol: "*", apply: func(a, b int64) int64 { return a * b }},
	}
	//nolint:gochecknoglobals // read-only declarations shared by every parse
	repeatOpt = argue.Optional{
		Flag:        argue.Flag{Long: "repeat", Short: 'n', Desc: "print the words this many times"},
		Placeholder: &argue.Placeholder{Name: "<count>", Format: "a positive integer"},
	}
	//nolint:gochecknoglobals // read-only declarations shared by every parse
	rhsArg = argue.Positional{Name: "rhs", Desc: "right operand"}
	//nolint:gochecknoglobals // read-only declarations shared by every parse
	upperFlag = argue.Flag{Long: "upper", Short: 'u', Desc: "print in upper case"}
	//nolint:gochecknoglobals // read-only declarations shared by every parse
	verboseFlag = argue.Flag{Long: "verbose", Short: 'v', Desc: "show the whole equation"}
	//nolint:gochecknoglobals // read-only declarations shared by every parse
	versionFlag = argue.Flag{Long: "version", Short: 'V', Desc: "print the version and exit"}
)

// binary is one of the two-operand subcommands.
type binary struct {
	op       operation
	lhs, rhs int64
	verbose  bool
}

func (b *binary) parse(c *argue.Cli, name string) error {
	b.op = operations[name]

	err := c.Help(argue.NewHelpBuilder("calc "+name).
		WithDescription(fmt.Sprintf("Compute <lhs> %s <rhs>.", b.op.symbol)).
		WithStyles(c.Styles()).
		WithHelpFlag(c.HelpFlag()).
		AddPositionals(lhsArg, rhsArg).
		AddFlags(verboseFlag).
		Help())
	if err != nil {
		return err
	}

	b.verbose, err = c.CheckFlag(verboseFlag)
	if err != nil {
		return err
	}

	b.lhs, err = argue.RequirePositional[int64](c, lhsArg)
	if err != nil {
		return err
	}

	b.rhs, err = argue.RequirePositional[int64](c, rhsArg)

	return err
}

func (b *binary) run(w io.Writer) error {
	result := b.op.apply(b.lhs, b.rhs)

	var err error
	if b.verbose {
		_, err = fmt.Fprintf(w, "%d %s %d = %d\n", b.lhs, b.op.symbol, b.rhs, result)
	} else {
		_, err = fmt.Fprintf(w, "%d\n", result)
	}

	return err
}

// calc is the top-level command.
type calc struct {
	out     io.Writer
	version bool
	command *command
}

func (c *calc) Exec(context.Context) error {
	if c.version {
		_, err := fmt.Fprintln(c.out, "calc", version)
		return err
	}

	if c.command == nil {
		return errNoCommand
	}

	return c.command.run(c.out)
}

func (c *calc) FromCli(cli *argue.Cli) error {
	err := cli.Help(argue.NewHelpBuilder("calc").
		WithDescription("Integer arithmetic from the command line.").
		WithStyles(cli.Styles()).
		WithHelpFlag(cli.HelpFlag()).
		AddFlags(versionFlag).
		AddSubcommands(
			argue.HelpSubcommand{Name: "add", Desc: "add two integers"},
			argue.HelpSubcommand{Name: "sub", Desc: "subtract two integers"},
			argue.HelpSubcommand{Name: "mult", Desc: "multiply two integers"},
			argue.HelpSubcommand{Name: "echo", Desc: "print the words after --"},
		).
		AddExamples(
			argue.HelpExample{Title: "Add", Code: "calc add 9 10"},
			argue.HelpExample{Title: "Echo options verbatim", Code: "calc echo -- --not-a-flag"},
		).
		Help())
	if err != nil {
		return err
	}

	c.version, err = cli.CheckFlag(versionFlag)
	if err != nil {
		return err
	}

	c.command, err = argue.CheckCommand[command](cli, commandArg)

	return err
}

// command holds whichever subcommand was selected.
type command struct {
	binary *binary
	echo   *echo
}

func (c *command) FromCli(cli *argue.Cli) error {
	name, err := cli.MatchCommand(commandNames)
	if err != nil {
		return err
	}

	if name == "echo" {
		c.echo = &echo{}
		return c.echo.FromCli(cli)
	}

	c.binary = &binary{}

	return c.binary.parse(cli, name)
}

func (c *command) run(w io.Writer) error {
	if c.echo != nil {
		return c.echo.run(w)
	}

	return c.binary.run(w)
}

// echo prints everything after the terminator.
type echo struct {
	upper  bool
	repeat int
	words  []string
}

func (e *echo) FromCli(c *argue.Cli) error {
	err := c.Help(argue.NewHelpBuilder("calc echo").
		WithDescription("Print the words after -- exactly as given.").
		WithUsage("calc echo [flags] -- <words>...").
		WithStyles(c.Styles()).
		WithHelpFlag(c.HelpFlag()).
		AddFlags(upperFlag).
		AddOptions(repeatOpt).
		Help())
	if err != nil {
		return err
	}

	e.upper, err = c.CheckFlag(upperFlag)
	if err != nil {
		return err
	}

	repeat, given, err := argue.CheckOption[int](c, repeatOpt)
	if err != nil {
		return err
	}

	e.repeat = 1
	if given {
		e.repeat = max(repeat, 1)
	}

	e.words, err = c.CheckRemainder()

	return err
}

func (e *echo) run(w io.Writer) error {
	line := strings.Join(e.words, " ")
	if e.upper {
		line = strings.ToUpper(line)
	}

	for range e.repeat {
		_, err := fmt.Fprintln(w, line)
		if err != nil {
			return err
		}
	}

	return nil
}

type operation struct {
	symbol string
	apply  func(a, b int64) int64
}

// configPath returns $CALC_CONFIG, or calc/config.toml under the user config
// directory.
func configPath(lookup func(string) (string, bool)) string {
	if path, ok := lookup(configEnv); ok && path != "" {
		return path
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "calc", "config.toml")
}

// run parses and executes one invocation, returning the exit code.
func run(env argue.RunEnv, lookup func(string) (string, bool)) int {
	cfg := config.Default()

	if path := configPath(lookup); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			fmt.Fprintln(env.Stderr(), "error:", err)
			return 1
		}

		cfg = loaded
	}

	cfg, err := cfg.ApplyEnv(lookup)
	if err != nil {
		fmt.Fprintln(env.Stderr(), "error:", err)
		return 1
	}

	err = argue.RunWithEnv(env, cfg.Options(env.Stderr()), &calc{out: env.Stdout()})
	if err == nil {
		return 0
	}

	var exitErr argue.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return 1
}
