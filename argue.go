package argue

import (
	"io"
	"os"

	"github.com/toejough/argue/internal/config"
	"github.com/toejough/argue/internal/core"
	"github.com/toejough/argue/internal/flags"
	"github.com/toejough/argue/internal/help"
	"github.com/toejough/argue/internal/suggest"
)

// Exported constants.
const (
	KindBadType           = core.KindBadType
	KindDuplicateOptions  = core.KindDuplicateOptions
	KindExceedingMaxCount = core.KindExceedingMaxCount
	KindExpectingValue    = core.KindExpectingValue
	KindHelp              = core.KindHelp
	KindMissingPositional = core.KindMissingPositional
	KindOutOfContextArg   = core.KindOutOfContextArg
	KindSuggestArg        = core.KindSuggestArg
	KindSuggestSubcommand = core.KindSuggestSubcommand
	KindUnexpectedArg     = core.KindUnexpectedArg
	KindUnexpectedValue   = core.KindUnexpectedValue
	KindUnknownSubcommand = core.KindUnknownSubcommand
)

// Exported variables.
var (
	ErrBadType           = core.ErrBadType
	ErrDuplicateOptions  = core.ErrDuplicateOptions
	ErrExceedingMaxCount = core.ErrExceedingMaxCount
	ErrExpectingValue    = core.ErrExpectingValue
	ErrHelp              = core.ErrHelp
	ErrInvalidConfig     = config.ErrInvalid
	ErrMissingPositional = core.ErrMissingPositional
	ErrOutOfContextArg   = core.ErrOutOfContextArg
	ErrSuggestArg        = core.ErrSuggestArg
	ErrSuggestSubcommand = core.ErrSuggestSubcommand
	ErrUnexpectedArg     = core.ErrUnexpectedArg
	ErrUnexpectedValue   = core.ErrUnexpectedValue
	ErrUnknownSubcommand = core.ErrUnknownSubcommand
	// HelpFlag is the default --help, -h flag.
	HelpFlag = flags.Help //nolint:gochecknoglobals // re-export
)

// Cli is the argument engine for one command line.
type Cli = core.Cli

// New lexes args, whose first element is the program name, into a fresh engine.
func New(args []string, opts Options) *Cli {
	return core.New(args, opts)
}

// Command is a FromCli that can also run.
type Command = core.Command

// Config is the resolved engine configuration.
type Config = config.Config

// Cost is an edit distance.
type Cost = suggest.Cost

// Error is the failure returned by every engine query.
type Error = core.Error

// ExecuteEnv is a RunEnv that captures output instead of writing it.
type ExecuteEnv = core.ExecuteEnv

// NewExecuteEnv returns an environment that captures output for args.
func NewExecuteEnv(args []string) *ExecuteEnv {
	return core.NewExecuteEnv(args)
}

// ExecuteResult contains the output captured by Execute.
type ExecuteResult = core.ExecuteResult

// ExitError is returned when a command should exit with a non-zero code.
type ExitError = core.ExitError

// Flag is a boolean argument such as --verbose, -v.
type Flag = flags.Flag

// FromCli is implemented by anything that populates itself from a Cli.
type FromCli = core.FromCli

// Help is the text shown for a help request.
type Help = help.Help

// NewHelp returns help showing text, raised by --help, -h.
func NewHelp(text string) Help {
	return help.New(text)
}

// HelpBuilder assembles styled help text.
type HelpBuilder = help.Builder

// NewHelpBuilder starts help content for the named command.
func NewHelpBuilder(name string) *HelpBuilder {
	return help.NewBuilder(name)
}

// HelpExample is a usage example in built help.
type HelpExample = help.Example

// HelpSubcommand is a subcommand row in built help.
type HelpSubcommand = help.Subcommand

// Kind identifies which failure an Error reports.
type Kind = core.Kind

// Optional is a value-bearing argument such as --rate <value>.
type Optional = flags.Optional

// Options tunes the engine: suggestion threshold, oracle and output styles.
type Options = core.Options

// OsEnv is the RunEnv of the running process.
type OsEnv = core.OsEnv

// Placeholder names the format of an option's value in help output.
type Placeholder = flags.Placeholder

// Positional is an argument identified by its place on the command line.
type Positional = flags.Positional

// RunEnv abstracts process arguments, output and exit for RunWithEnv.
type RunEnv = core.RunEnv

// Styles holds the styles used for help and error output.
type Styles = help.Styles

// SuggestFunc is the suggestion oracle.
type SuggestFunc = suggest.Func

// CheckCommand populates a T from the next subcommand word, if any.
func CheckCommand[T any, P interface {
	*T
	FromCli
}](c *Cli, p Positional,
) (*T, error) {
	return core.CheckCommand[T, P](c, p)
}

// CheckOption returns the single value of o, if given.
func CheckOption[T any](c *Cli, o Optional) (T, bool, error) {
	return core.CheckOption[T](c, o)
}

// CheckOptionAll returns every value of o in command-line order.
func CheckOptionAll[T any](c *Cli, o Optional) ([]T, error) {
	return core.CheckOptionAll[T](c, o)
}

// CheckOptionN returns every value of o, failing past n occurrences.
func CheckOptionN[T any](c *Cli, o Optional, n int) ([]T, error) {
	return core.CheckOptionN[T](c, o, n)
}

// CheckPositional returns the next positional word as a T, if any.
func CheckPositional[T any](c *Cli, p Positional) (T, bool, error) {
	return core.CheckPositional[T](c, p)
}

// Closest is the default suggestion oracle.
func Closest(target string, bank []string, maxCost Cost) (string, bool) {
	return suggest.Closest(target, bank, maxCost)
}

// DefaultConfig returns suggestions off, color on and the standard help flag.
func DefaultConfig() Config {
	return config.Default()
}

// Execute runs cmd over args and returns captured output instead of exiting.
// This is useful for testing. Args should include the program name as the
// first element.
func Execute(args []string, opts Options, cmd Command) (ExecuteResult, error) {
	return core.Execute(args, opts, cmd)
}

// LoadConfig reads the TOML file at path, which may be missing, then applies
// ARGUE_THRESHOLD and NO_COLOR from the process environment.
func LoadConfig(path string) (Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return Config{}, err
	}

	return cfg.ApplyEnv(os.LookupEnv)
}

// LoadOptions is LoadConfig followed by Config.Options for w.
func LoadOptions(path string, w io.Writer) (Options, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return Options{}, err
	}

	return cfg.Options(w), nil
}

// Parse builds an engine over args and populates a T, failing on leftovers.
func Parse[T any, P interface {
	*T
	FromCli
}](args []string, opts Options,
) (*T, error) {
	return core.Parse[T, P](args, opts)
}

// ParseValue converts text to a T the way option and positional values are.
func ParseValue[T any](text string) (T, error) {
	return core.ParseValue[T](text)
}

// RequirePositional is CheckPositional with a missing word treated as an error.
func RequirePositional[T any](c *Cli, p Positional) (T, error) {
	return core.RequirePositional[T](c, p)
}

// Run parses os.Args into cmd, runs it, and exits non-zero on failure.
func Run(opts Options, cmd Command) {
	core.Run(opts, cmd)
}

// RunWithEnv parses the environment's arguments into cmd and runs it.
func RunWithEnv(env RunEnv, opts Options, cmd Command) error {
	return core.RunWithEnv(env, opts, cmd)
}
