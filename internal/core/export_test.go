package core

// CaptureBadFlagForTest exposes captureBadFlag.
func (c *Cli) CaptureBadFlagForTest(breakpoint int) (string, bool, error) {
	return c.captureBadFlag(breakpoint)
}

// FirstFlagLeftForTest returns the name and slot of the earliest unclaimed
// option before breakpoint.
func (c *Cli) FirstFlagLeftForTest(breakpoint int) (string, int, bool) {
	tag, at, ok := c.index.FirstBefore(breakpoint)
	return tag.Name, at, ok
}

// LenForTest returns the number of token slots.
func (c *Cli) LenForTest() int {
	return len(c.slots)
}

// NextUnattachedForTest exposes nextUnattached.
func (c *Cli) NextUnattachedForTest() (string, bool) {
	return c.nextUnattached()
}

// PrioritizeSuggestionForTest exposes prioritizeSuggestion.
func (c *Cli) PrioritizeSuggestionForTest() error {
	return c.prioritizeSuggestion()
}

// PullLongForTest takes every occurrence of the long option name and pulls
// the values behind them.
func (c *Cli) PullLongForTest(name string, withBare bool) []PulledForTest {
	return pulledForTest(c.pullFlag(c.index.TakeFlag(name), withBare))
}

// PullSwitchForTest takes every occurrence of the switch r and pulls the
// values behind them.
func (c *Cli) PullSwitchForTest(r rune, withBare bool) []PulledForTest {
	return pulledForTest(c.pullFlag(c.index.TakeSwitch(r), withBare))
}

// TakenForTest reports whether slot i has been claimed.
func (c *Cli) TakenForTest(i int) bool {
	return c.slots[i].taken
}

// PulledForTest is one occurrence pulled by PullLongForTest or PullSwitchForTest.
type PulledForTest struct {
	Value string
	OK    bool
}

func pulledForTest(occurrences []occurrence) []PulledForTest {
	out := make([]PulledForTest, 0, len(occurrences))
	for _, o := range occurrences {
		out = append(out, PulledForTest{Value: o.value, OK: o.ok})
	}

	return out
}
