// Package main provides the CLI entrypoint for wordladder.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordladder/internal/config"
	"github.com/verte-zerg/wordladder/internal/ladder"
	"github.com/verte-zerg/wordladder/internal/lexicon"
	"github.com/verte-zerg/wordladder/internal/model"
	"github.com/verte-zerg/wordladder/internal/report"
	"github.com/verte-zerg/wordladder/internal/tui"
)

const (
	defaultColor   = "auto"
	defaultWorkers = 4
)

var (
	flagColor       string
	flagLettersOnly bool
	flagASCIIOnly   bool
	flagVerbose     bool
	flagConfigPath  string

	countLength  int
	batchWorkers int
)

var errDictionary = errors.New("Dictionary file could not be opened!")

// dictionaryError prints as errDictionary and keeps the cause for errors.Is.
type dictionaryError struct {
	err error
}

func (e *dictionaryError) Error() string {
	return errDictionary.Error()
}

func (e *dictionaryError) Unwrap() []error {
	return []error{errDictionary, e.err}
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordladder <dictionary> <start> <end>",
		Short:         "Find a shortest word ladder between two words",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          exactArgs(3),
		RunE:          runLadderCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagColor, "color", defaultColor, "colorize output: auto, always or never")
	flags.BoolVar(&flagLettersOnly, "letters-only", false, "ignore dictionary tokens containing non-letters")
	flags.BoolVar(&flagASCIIOnly, "ascii-only", false, "ignore dictionary tokens containing anything but A-Z")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "log search diagnostics to stderr")
	flags.StringVar(&flagConfigPath, "config", "", "config file path (default: $XDG_CONFIG_HOME/wordladder/config.toml)")

	rootCmd.AddCommand(newCountCmd())
	rootCmd.AddCommand(newVerifyCmd())
	rootCmd.AddCommand(newBatchCmd())
	rootCmd.AddCommand(newExploreCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// exactArgs mirrors cobra.ExactArgs with the wording users of the tool expect.
func exactArgs(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("Must supply exactly %d arguments to the program! (%d were supplied)", n, len(args))
		}
		return nil
	}
}

func runLadderCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)

	start := lexicon.Normalize(args[1])
	end := lexicon.Normalize(args[2])
	n := utf8.RuneCountInString(start)
	if n != utf8.RuneCountInString(end) {
		return errors.New("The second and third arguments must be strings of equal length!")
	}
	if n == 0 {
		return errors.New("The second and third arguments must not be empty!")
	}

	engine, err := loadEngine(args[0], n, cfg, logger)
	if err != nil {
		return err
	}
	l, err := engine.MinLadder(cmd.Context(), start, end)
	if err != nil {
		return fmt.Errorf("search interrupted: %w", err)
	}
	color, err := useColor(cmd, cfg)
	if err != nil {
		return err
	}
	return report.Render(cmd.OutOrStdout(), l, color)
}

func newCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count <dictionary>",
		Short: "Print how many distinct words of a length the dictionary holds",
		Args:  cobra.ExactArgs(1),
		RunE:  runCountCmd,
	}
	cmd.Flags().IntVarP(&countLength, "length", "n", 0, "word length to count")
	return cmd
}

func runCountCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if countLength <= 0 {
		return fmt.Errorf("--length must be > 0")
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	engine, err := loadEngine(args[0], countLength, cfg, logger)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), engine.Lexicon().Size())
	return err
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <dictionary> <word>...",
		Short: "Check that a sequence of words is a valid ladder",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runVerifyCmd,
	}
}

func runVerifyCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)

	words := make(ladder.Ladder, 0, len(args)-1)
	for _, arg := range args[1:] {
		words = append(words, lexicon.Normalize(arg))
	}
	n := utf8.RuneCountInString(words[0])
	if n == 0 {
		return fmt.Errorf("words must not be empty")
	}
	engine, err := loadEngine(args[0], n, cfg, logger)
	if err != nil {
		return err
	}
	if err := ladder.Validate(words, engine.Lexicon()); err != nil {
		return fmt.Errorf("invalid ladder: %w", err)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Valid Word Ladder (%d steps): %s\n", words.Steps(), strings.Join(words, " "))
	return err
}

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <dictionary> <pairs-file>",
		Short: "Solve many start/end pairs, one pair per line ('-' reads stdin)",
		Args:  cobra.ExactArgs(2),
		RunE:  runBatchCmd,
	}
	cmd.Flags().IntVarP(&batchWorkers, "workers", "w", defaultWorkers, "concurrent searches")
	return cmd
}

func runBatchCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Workers <= 0 {
		return fmt.Errorf("--workers must be > 0")
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)

	pairs, err := readPairs(cmd, args[1])
	if err != nil {
		return err
	}
	engineFor := func(n int) (*ladder.Engine, error) {
		return loadEngine(args[0], n, cfg, logger)
	}
	results, err := ladder.SolveAll(cmd.Context(), pairs, engineFor, cfg.Workers)
	if err != nil {
		return err
	}
	return report.RenderBatch(cmd.OutOrStdout(), results)
}

func readPairs(cmd *cobra.Command, path string) ([]ladder.Pair, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open pairs file: %w", err)
		}
		defer func() {
			_ = file.Close()
		}()
		r = file
	}
	pairs, err := ladder.ParsePairs(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read pairs: %w", err)
	}
	return pairs, nil
}

func newExploreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explore <dictionary>",
		Short: "Search ladders interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  runExploreCmd,
	}
}

func runExploreCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	path := config.ResolveDictionary(args[0])
	if _, err := os.Stat(path); err != nil {
		return &dictionaryError{err: err}
	}
	// The TUI owns the terminal; diagnostics would corrupt the screen.
	logger := newLogger(io.Discard, false)
	engineFor := ladder.Cached(func(n int) (*ladder.Engine, error) {
		return loadEngine(path, n, cfg, logger)
	})

	m := tui.NewModel(path, engineFor)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
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
	path := configPath()
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

func loadEngine(path string, length int, cfg model.Config, logger *slog.Logger) (*ladder.Engine, error) {
	var opts []lexicon.Option
	if cfg.LettersOnly {
		opts = append(opts, lexicon.WithFilter(lexicon.LettersOnly))
	}
	if cfg.ASCIIOnly {
		opts = append(opts, lexicon.WithFilter(lexicon.ASCIIOnly))
	}
	path = config.ResolveDictionary(path)
	lex, err := lexicon.Load(path, length, opts...)
	if err != nil {
		logger.Debug("dictionary load failed", "path", path, "length", length, "err", err)
		return nil, &dictionaryError{err: err}
	}
	logger.Debug("dictionary loaded", "path", path, "length", length, "words", lex.Size())
	return ladder.New(lex, ladder.WithLogger(logger)), nil
}

func configPath() string {
	if flagConfigPath != "" {
		return flagConfigPath
	}
	return config.DefaultConfigPath()
}

func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(configPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "color", &flagColor, fileCfg.Ladder.Color)
	applyBoolConfig(cmd, "letters-only", &flagLettersOnly, fileCfg.Ladder.LettersOnly)
	applyBoolConfig(cmd, "ascii-only", &flagASCIIOnly, fileCfg.Ladder.ASCIIOnly)
	applyBoolConfig(cmd, "verbose", &flagVerbose, fileCfg.Ladder.Verbose)
	applyIntConfig(cmd, "workers", &batchWorkers, fileCfg.Ladder.Workers)

	cfg := model.Config{
		Color:       flagColor,
		LettersOnly: flagLettersOnly,
		ASCIIOnly:   flagASCIIOnly,
		Verbose:     flagVerbose,
		Workers:     batchWorkers,
	}
	if _, err := report.ParseColorMode(cfg.Color); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func useColor(cmd *cobra.Command, cfg model.Config) (bool, error) {
	mode, err := report.ParseColorMode(cfg.Color)
	if err != nil {
		return false, err
	}
	return report.ShouldUseColor(cmd.OutOrStdout(), mode), nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// applyStringConfig copies a config value into target unless the flag was
// set explicitly.
func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if flagChanged(cmd, name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if flagChanged(cmd, name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if flagChanged(cmd, name) {
		return
	}
	*target = *value
}

// flagChanged also covers persistent flags inherited from the root command.
func flagChanged(cmd *cobra.Command, name string) bool {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f.Changed
	}
	if f := cmd.InheritedFlags().Lookup(name); f != nil {
		return f.Changed
	}
	return false
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wordladder configuration
# Uncomment a value to enable it. CLI flags override config values.

[ladder]
# color = %q          # auto, always or never
# letters-only = false    # Ignore dictionary tokens containing non-letters
# ascii-only = false      # Ignore dictionary tokens containing anything but A-Z
# verbose = false         # Log search diagnostics to stderr
# workers = %d             # Concurrent searches for the batch command
`,
		defaultColor,
		defaultWorkers,
	)
}
