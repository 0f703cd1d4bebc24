// Package main provides the CLI entrypoint for tapit.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/tapit/internal/clock"
	"github.com/verte-zerg/tapit/internal/config"
	"github.com/verte-zerg/tapit/internal/console"
	"github.com/verte-zerg/tapit/internal/game"
	"github.com/verte-zerg/tapit/internal/generator"
	"github.com/verte-zerg/tapit/internal/input"
	"github.com/verte-zerg/tapit/internal/model"
)

const (
	defaultInput   = string(model.InputLine)
	defaultColor   = true
	defaultSummary = false
	defaultSeed    = 0
)

var (
	playInput   string
	playColor   bool
	playSummary bool
	playSeed    int64
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tapit",
		Short:         "Tap the letter before the timer runs out",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playInput, "input", defaultInput, "input mode: line (type and press Enter) or key (single key press)")
	rootCmd.Flags().BoolVar(&playColor, "color", defaultColor, "colorize output")
	rootCmd.Flags().BoolVar(&playSummary, "summary", defaultSummary, "print a per-round table after the game")
	rootCmd.Flags().Int64Var(&playSeed, "seed", defaultSeed, "letter sequence seed (0 picks one from the clock)")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "input", &playInput, fileCfg.Input.Mode)
	applyBoolConfig(cmd, "color", &playColor, fileCfg.Display.Color)
	applyBoolConfig(cmd, "summary", &playSummary, fileCfg.Display.Summary)
	applyInt64Config(cmd, "seed", &playSeed, fileCfg.Game.Seed)

	cfg := model.Config{
		Input:   model.InputMode(strings.ToLower(strings.TrimSpace(playInput))),
		Color:   playColor,
		Summary: playSummary,
		Seed:    playSeed,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	provider, err := newProvider(cfg, cmd.InOrStdin(), out)
	if err != nil {
		return err
	}

	gen := generator.New()
	if cfg.Seed != 0 {
		gen = generator.NewSeeded(cfg.Seed)
	}

	session := game.NewSession(provider, console.NewPrinter(out, cfg.Color), gen, clock.System{})
	if _, err := session.Play(); err != nil {
		return fmt.Errorf("game aborted: %w", err)
	}

	if cfg.Summary {
		if _, err := fmt.Fprintln(out); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := session.Summary(out); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}
	return nil
}

func newProvider(cfg model.Config, in io.Reader, out io.Writer) (input.Provider, error) {
	switch cfg.Input {
	case model.InputKey:
		f, ok := in.(*os.File)
		if !ok {
			return nil, fmt.Errorf("--input key requires a terminal")
		}
		reader, err := input.NewKeyReader(f, out)
		if err != nil {
			return nil, fmt.Errorf("--input key: %w", err)
		}
		return reader, nil
	default:
		return input.NewLineReader(in), nil
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tapit configuration
# Uncomment a value to enable it. CLI flags override config values.

[display]
# color = %t              # Colorize output
# summary = %t            # Print a per-round table after the game

[input]
# mode = %q               # "line" (type and press Enter) or "key" (single key press)

[game]
# seed = %d                  # Letter sequence seed (0 picks one from the clock)
`,
		defaultColor,
		defaultSummary,
		defaultInput,
		defaultSeed,
	)
}

func validateConfig(cfg model.Config) error {
	switch cfg.Input {
	case model.InputLine, model.InputKey:
	default:
		return fmt.Errorf("--input must be %q or %q", model.InputLine, model.InputKey)
	}
	return nil
}
