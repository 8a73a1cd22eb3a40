//go:build dev

package dev

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akedrou/textdiff"
	. "github.com/onsi/gomega"
	"github.com/toejough/go-reorder"
)

// TestDeclarationOrder checks that every file already has its declarations
// in canonical section order.
func TestDeclarationOrder(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	repoRoot, err := findRepoRoot()
	g.Expect(err).NotTo(HaveOccurred(), "failed to find repo root")

	files, err := goSources(repoRoot)
	g.Expect(err).NotTo(HaveOccurred())

	var reports []string

	for _, file := range files {
		content, err := os.ReadFile(filepath.Join(repoRoot, file))
		g.Expect(err).NotTo(HaveOccurred())

		reordered, err := reorder.Source(string(content))
		g.Expect(err).NotTo(HaveOccurred(), file)

		if reordered == string(content) {
			continue
		}

		reports = append(reports, orderReport(file, string(content), reordered))
	}

	g.Expect(reports).To(BeEmpty(), "%d file(s) need reordering:\n%s",
		len(reports), strings.Join(reports, "\n"))
}

// orderReport lists the sections that are out of place, then the diff that
// would fix them.
func orderReport(file, content, reordered string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s:\n", file)

	order, err := reorder.AnalyzeSectionOrder(content)
	if err == nil {
		for i, section := range order.Sections {
			if section.Expected != i+1 {
				fmt.Fprintf(&b, "  %s (at #%d, should be #%d)\n", section.Name, i+1, section.Expected)
			}
		}
	}

	b.WriteString(textdiff.Unified(file+" (current)", file+" (reordered)", content, reordered))

	return b.String()
}
