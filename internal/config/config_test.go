package config_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	"github.com/toejough/argue/internal/config"
	"github.com/toejough/argue/internal/core"
	"github.com/toejough/argue/internal/flags"
	"github.com/toejough/argue/internal/help"
)

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	env := func(vars map[string]string) func(string) (string, bool) {
		return func(key string) (string, bool) {
			value, ok := vars[key]
			return value, ok
		}
	}

	t.Run("Overrides", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		cfg, err := config.Default().ApplyEnv(env(map[string]string{
			config.EnvThreshold: " 4 ",
			config.EnvNoColor:   "1",
		}))
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(cfg.Threshold).To(BeNumerically("==", 4))
		g.Expect(cfg.Color).To(BeFalse())
	})

	t.Run("EmptyNoColorIsIgnored", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		cfg, err := config.Default().ApplyEnv(env(map[string]string{config.EnvNoColor: ""}))
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(cfg.Color).To(BeTrue())
	})

	t.Run("BadThreshold", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		_, err := config.Default().ApplyEnv(env(map[string]string{config.EnvThreshold: "lots"}))
		g.Expect(err).To(MatchError(config.ErrInvalid))
		g.Expect(err.Error()).To(HavePrefix(config.EnvThreshold))
	})

	t.Run("AnyNonNegativeThreshold", func(t *testing.T) {
		t.Parallel()

		rapid.Check(t, func(rt *rapid.T) {
			g := NewWithT(rt)

			n := rapid.IntRange(0, 1<<20).Draw(rt, "n")

			cfg, err := config.Default().ApplyEnv(env(map[string]string{config.EnvThreshold: strconv.Itoa(n)}))
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(cfg.Threshold).To(BeNumerically("==", n))
		})
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("MissingFileGivesDefaults", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		g.Expect(config.Load(filepath.Join(t.TempDir(), "argue.toml"))).To(Equal(config.Default()))
	})

	t.Run("ReadsFile", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		path := filepath.Join(t.TempDir(), "argue.toml")
		g.Expect(os.WriteFile(path, []byte("threshold = 2\n"), 0o600)).To(Succeed())

		cfg, err := config.Load(path)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(cfg.Threshold).To(BeNumerically("==", 2))
	})

	t.Run("BadFileNamesPath", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		path := filepath.Join(t.TempDir(), "argue.toml")
		g.Expect(os.WriteFile(path, []byte("threshold = -4\n"), 0o600)).To(Succeed())

		_, err := config.Load(path)
		g.Expect(err).To(MatchError(config.ErrInvalid))
		g.Expect(err.Error()).To(ContainSubstring(path))
	})
}

func TestOptions(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	cfg := config.Config{Threshold: 2, Color: false, HelpFlag: flags.Flag{Long: "usage", Short: 'u'}}

	opts := cfg.Options(os.Stdout)
	g.Expect(opts.Threshold).To(BeNumerically("==", 2))
	g.Expect(opts.Styles).NotTo(BeNil())
	g.Expect(opts.Styles.Error.Render("error:")).To(Equal("error:"))

	c := core.New([]string{"prog", "-u"}, opts)
	g.Expect(c.HelpFlag()).To(Equal(cfg.HelpFlag))
	g.Expect(c.Help(help.New("usage text"))).To(Succeed())
	g.Expect(c.AskingForHelp()).To(BeTrue())
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("Empty", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		g.Expect(config.Parse("")).To(Equal(config.Default()))
	})

	t.Run("AllKeys", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		cfg, err := config.Parse("threshold = 3\ncolor = false\nhelp_flag = \"usage\"\nhelp_switch = \"u\"\n")
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(cfg).To(Equal(config.Config{
			Threshold: 3,
			Color:     false,
			HelpFlag:  flags.Flag{Long: "usage", Short: 'u', Desc: flags.Help.Desc},
		}))
	})

	t.Run("EmptySwitchDropsShortForm", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		cfg, err := config.Parse(`help_switch = ""`)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(cfg.HelpFlag.HasShort()).To(BeFalse())
	})

	for name, text := range map[string]string{
		"NegativeThreshold": "threshold = -1",
		"DashedHelpFlag":    `help_flag = "--help"`,
		"EmptyHelpFlag":     `help_flag = ""`,
		"LongSwitch":        `help_switch = "hh"`,
		"UnknownKey":        `colour = true`,
		"WrongType":         `threshold = "two"`,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			_, err := config.Parse(text)
			g.Expect(err).To(MatchError(config.ErrInvalid))
		})
	}
}
