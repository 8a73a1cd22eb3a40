package lex

import (
	"cmp"
	"slices"
)

// TagKind distinguishes long options from switches.
type TagKind int

// TagKind values.
const (
	TagFlag TagKind = iota
	TagSwitch
)

// Entry is one tag together with the slots where it still occurs.
type Entry struct {
	Tag   Tag
	Slots []int
}

// Index maps each option tag to the ordered token slots where it occurs.
// Taking a tag removes it, so every occurrence is claimed at most once.
type Index map[Tag][]int

// Entries returns every remaining tag, ordered by its first occurrence.
func (x Index) Entries() []Entry {
	entries := make([]Entry, 0, len(x))
	for tag, slots := range x {
		entries = append(entries, Entry{Tag: tag, Slots: slots})
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.Slots[0], b.Slots[0])
	})

	return entries
}

// FirstBefore returns the tag whose first remaining occurrence is the earliest
// slot strictly less than breakpoint.
func (x Index) FirstBefore(breakpoint int) (Tag, int, bool) {
	var (
		found Tag
		slot  int
		ok    bool
	)

	for tag, slots := range x {
		first := slots[0]
		if first < breakpoint && (!ok || first < slot) {
			found, slot, ok = tag, first, true
		}
	}

	return found, slot, ok
}

// Take removes tag from the index and returns its slots. A tag that never
// occurred, or was already taken, yields nil.
func (x Index) Take(tag Tag) []int {
	slots := x[tag]
	delete(x, tag)

	return slots
}

// TakeFlag removes and returns the slots of the long option name.
func (x Index) TakeFlag(name string) []int {
	return x.Take(FlagTag(name))
}

// TakeSwitch removes and returns the slots of the short option c.
func (x Index) TakeSwitch(c rune) []int {
	return x.Take(SwitchTag(string(c)))
}

func (x Index) add(tag Tag, slot int) {
	x[tag] = append(x[tag], slot)
}

// Tag is the normalized identity of an option occurrence: a long name or a
// single switch character. The empty switch name stands for a bare "-".
type Tag struct {
	Kind TagKind
	Name string
}

// String renders the tag the way it was spelled on the command line.
func (t Tag) String() string {
	if t.Kind == TagFlag {
		return FlagPrefix + t.Name
	}

	return SwitchPrefix + t.Name
}

// FlagTag returns the tag of a long option.
func FlagTag(name string) Tag {
	return Tag{Kind: TagFlag, Name: name}
}

// SwitchTag returns the tag of a short option.
func SwitchTag(name string) Tag {
	return Tag{Kind: TagSwitch, Name: name}
}
