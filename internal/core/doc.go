// Package core is the argument engine: it claims flags, options, positionals
// and subcommands from a lexed command line, one query at a time, and reports
// whatever is misspelled, misplaced or left over.
//
// A query declares the argument it asks about before claiming anything, so
// errors raised later can suggest spellings from the declared names. Once the
// help flag is seen, every error gives way to ErrHelp.
package core
