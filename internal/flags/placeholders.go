package flags

// Exported variables.
var (
	//nolint:gochecknoglobals // Read-only placeholders, initialized once.
	PlaceholderDuration = Placeholder{Name: "<duration>", Format: "time value like 30s, 5m, 1h"}
	PlaceholderFile     = Placeholder{Name: "<file>"}
	PlaceholderN        = Placeholder{Name: "<n>"}
	PlaceholderNumber   = Placeholder{Name: "<number>", Format: "integer or decimal like 4, -2, 0.5"}
	PlaceholderValue    = Placeholder{Name: "<value>"}
)

// Placeholder describes a value format for option arguments.
type Placeholder struct {
	Name   string // Display name in help, e.g., "<duration>"
	Format string // Format description, e.g., "30s, 5m, 1h"
}

// NeedsExplanation returns true if this placeholder has a non-obvious format.
func (p Placeholder) NeedsExplanation() bool {
	return p.Format != ""
}

// PlaceholdersUsedBy returns unique placeholders that need explanation
// from the given options.
func PlaceholdersUsedBy(opts []Optional) []Placeholder {
	seen := make(map[string]bool)

	var result []Placeholder

	for _, o := range opts {
		if o.Placeholder == nil || !o.Placeholder.NeedsExplanation() {
			continue
		}

		if seen[o.Placeholder.Name] {
			continue
		}

		seen[o.Placeholder.Name] = true
		result = append(result, *o.Placeholder)
	}

	return result
}
