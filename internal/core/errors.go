package core

import (
	"errors"
	"fmt"

	"github.com/toejough/argue/internal/flags"
	"github.com/toejough/argue/internal/help"
)

// Kind identifies what went wrong.
type Kind int

// Kind values.
const (
	KindBadType Kind = iota + 1
	KindDuplicateOptions
	KindUnexpectedValue
	KindExpectingValue
	KindMissingPositional
	KindUnexpectedArg
	KindUnknownSubcommand
	KindSuggestSubcommand
	KindSuggestArg
	KindOutOfContextArg
	KindExceedingMaxCount
	KindHelp
)

// String returns the name of the kind.
func (k Kind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}

	return "unknown"
}

func (k Kind) sentinel() error {
	switch k {
	case KindBadType:
		return ErrBadType
	case KindDuplicateOptions:
		return ErrDuplicateOptions
	case KindUnexpectedValue:
		return ErrUnexpectedValue
	case KindExpectingValue:
		return ErrExpectingValue
	case KindMissingPositional:
		return ErrMissingPositional
	case KindUnexpectedArg:
		return ErrUnexpectedArg
	case KindUnknownSubcommand:
		return ErrUnknownSubcommand
	case KindSuggestSubcommand:
		return ErrSuggestSubcommand
	case KindSuggestArg:
		return ErrSuggestArg
	case KindOutOfContextArg:
		return ErrOutOfContextArg
	case KindExceedingMaxCount:
		return ErrExceedingMaxCount
	case KindHelp:
		return ErrHelp
	default:
		return nil
	}
}

// Exported variables.
var (
	ErrBadType           = errors.New("bad type")
	ErrDuplicateOptions  = errors.New("duplicate options")
	ErrExceedingMaxCount = errors.New("exceeding max count")
	ErrExpectingValue    = errors.New("expecting value")
	ErrHelp              = errors.New("help requested")
	ErrMissingPositional = errors.New("missing positional")
	ErrOutOfContextArg   = errors.New("out of context argument")
	ErrSuggestArg        = errors.New("suggested argument")
	ErrSuggestSubcommand = errors.New("suggested subcommand")
	ErrUnexpectedArg     = errors.New("unexpected argument")
	ErrUnexpectedValue   = errors.New("unexpected value")
	ErrUnknownSubcommand = errors.New("unknown subcommand")
)

// Error is returned by every engine query that fails. Which fields are set
// depends on Kind.
type Error struct {
	Kind       Kind
	Arg        flags.Arg  // declared argument at fault
	Value      string     // offending text from the command line
	Suggestion string     // closest known spelling, or the subcommand word for KindOutOfContextArg
	Max        int        // KindExceedingMaxCount only
	Got        int        // KindExceedingMaxCount only
	Cause      error      // KindBadType only
	Help       *help.Help // help installed when the error was raised
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindBadType:
		return fmt.Sprintf("invalid value %q for %s: %v", e.Value, e.Arg, e.Cause)
	case KindDuplicateOptions:
		return fmt.Sprintf("%s was given more than once", e.Arg)
	case KindUnexpectedValue:
		if f, ok := e.Arg.(flags.Flag); ok && f.Long == "" {
			return fmt.Sprintf("unexpected value %q after --", e.Value)
		}

		return fmt.Sprintf("%s does not take a value, got %q", e.Arg, e.Value)
	case KindExpectingValue:
		return fmt.Sprintf("%s expects a value", e.Arg)
	case KindMissingPositional:
		return fmt.Sprintf("missing required argument %s", e.Arg)
	case KindUnexpectedArg:
		return fmt.Sprintf("unexpected argument %q", e.Value)
	case KindUnknownSubcommand:
		return fmt.Sprintf("unknown subcommand %q", e.Value)
	case KindSuggestSubcommand:
		return fmt.Sprintf("unknown subcommand %q, did you mean %q?", e.Value, e.Suggestion)
	case KindSuggestArg:
		return fmt.Sprintf("unknown argument %q, did you mean %q?", e.Value, e.Suggestion)
	case KindOutOfContextArg:
		return fmt.Sprintf("argument %q is not known here; it may belong after subcommand %q", e.Value, e.Suggestion)
	case KindExceedingMaxCount:
		return fmt.Sprintf("%s was given %d times, at most %d allowed", e.Arg, e.Got, e.Max)
	case KindHelp:
		return ErrHelp.Error()
	default:
		return "unknown error"
	}
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// Unwrap returns the parse failure behind a KindBadType error.
func (e *Error) Unwrap() error {
	return e.Cause
}
