package core

import (
	"github.com/toejough/argue/internal/flags"
)

// CheckFlag reports whether f was raised. Raising it more than once fails with
// ErrDuplicateOptions.
func (c *Cli) CheckFlag(f flags.Flag) (bool, error) {
	count, err := c.CheckFlagAll(f)
	if err != nil {
		return false, err
	}

	if count > 1 {
		return false, c.fail(&Error{Kind: KindDuplicateOptions})
	}

	return count == 1, nil
}

// CheckFlagAll returns how many times f was raised, zero if never. A value
// attached to any occurrence fails with ErrUnexpectedValue. Raising the help
// flag makes every later error give way to the help outcome.
func (c *Cli) CheckFlagAll(f flags.Flag) (int, error) {
	locs := c.locations(f)
	c.declare(f)

	occurrences := c.pullFlag(locs, false)
	for _, o := range occurrences {
		if o.ok {
			return 0, c.fail(&Error{Kind: KindUnexpectedValue, Value: o.value})
		}
	}

	if len(occurrences) > 0 && c.help != nil && c.help.Flag().Long == f.Long {
		c.askingForHelp = true
	}

	return len(occurrences), nil
}

// CheckFlagN returns how many times f was raised, failing with
// ErrExceedingMaxCount past n.
func (c *Cli) CheckFlagN(f flags.Flag, n int) (int, error) {
	count, err := c.CheckFlagAll(f)
	if err != nil {
		return 0, err
	}

	if count > n {
		return 0, c.fail(&Error{Kind: KindExceedingMaxCount, Max: n, Got: count})
	}

	return count, nil
}

// pullOption declares o and claims its occurrences together with their values.
func (c *Cli) pullOption(o flags.Optional) []occurrence {
	locs := c.locations(o.Flag)
	c.declare(o)

	return c.pullFlag(locs, true)
}

// CheckOption returns the value given to o. The bool is false when o was not
// raised. Raising it more than once fails with ErrDuplicateOptions.
func CheckOption[T any](c *Cli, o flags.Optional) (T, bool, error) {
	var zero T

	occurrences := c.pullOption(o)

	switch len(occurrences) {
	case 0:
		return zero, false, nil
	case 1:
		values, err := convertAll[T](c, occurrences)
		if err != nil {
			return zero, false, err
		}

		return values[0], true, nil
	default:
		return zero, false, c.fail(&Error{Kind: KindDuplicateOptions})
	}
}

// CheckOptionAll returns every value given to o in command-line order, nil if
// it was never raised. A value may be attached ("--o=v") or follow as the next
// word ("--o v").
func CheckOptionAll[T any](c *Cli, o flags.Optional) ([]T, error) {
	occurrences := c.pullOption(o)
	if len(occurrences) == 0 {
		return nil, nil
	}

	return convertAll[T](c, occurrences)
}

// CheckOptionN is CheckOptionAll failing with ErrExceedingMaxCount when o was
// raised more than n times.
func CheckOptionN[T any](c *Cli, o flags.Optional, n int) ([]T, error) {
	values, err := CheckOptionAll[T](c, o)
	if err != nil {
		return nil, err
	}

	if len(values) > n {
		return nil, c.fail(&Error{Kind: KindExceedingMaxCount, Max: n, Got: len(values)})
	}

	return values, nil
}

// CheckPositional claims the next bare word as p. The bool is false when no
// words are left before the terminator.
func CheckPositional[T any](c *Cli, p flags.Positional) (T, bool, error) {
	var zero T

	c.declare(p)

	text, ok := c.nextUnattached()
	if !ok {
		return zero, false, nil
	}

	value, err := ParseValue[T](text)
	if err != nil {
		if herr := c.prioritizeHelp(); herr != nil {
			return zero, false, herr
		}

		// a flag misspelling usually explains why the word landed here
		if serr := c.prioritizeSuggestion(); serr != nil {
			return zero, false, serr
		}

		return zero, false, c.fail(&Error{Kind: KindBadType, Value: text, Cause: err})
	}

	return value, true, nil
}

// RequirePositional is CheckPositional failing with ErrMissingPositional when
// no word is left. Leftover options are reported first.
func RequirePositional[T any](c *Cli, p flags.Positional) (T, error) {
	value, ok, err := CheckPositional[T](c, p)
	if err != nil || ok {
		return value, err
	}

	err = c.prioritizeHelp()
	if err != nil {
		return value, err
	}

	err = c.IsEmpty()
	if err != nil {
		return value, err
	}

	return value, c.fail(&Error{Kind: KindMissingPositional})
}

func convertAll[T any](c *Cli, occurrences []occurrence) ([]T, error) {
	values := make([]T, 0, len(occurrences))

	for _, o := range occurrences {
		if !o.ok {
			return nil, c.fail(&Error{Kind: KindExpectingValue})
		}

		value, err := ParseValue[T](o.value)
		if err != nil {
			return nil, c.fail(&Error{Kind: KindBadType, Value: o.value, Cause: err})
		}

		values = append(values, value)
	}

	return values, nil
}
