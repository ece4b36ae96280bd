// Package main implements the mtc CLI: an interactive agenda shell plus a
// non-interactive exec mode.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/mtc/internal/commands"
	applog "github.com/sandeepkv93/mtc/internal/log"
	"github.com/sandeepkv93/mtc/internal/model"
	"github.com/sandeepkv93/mtc/internal/session"
	"github.com/sandeepkv93/mtc/internal/update"
	"github.com/sandeepkv93/mtc/internal/views"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var errCommandsFailed = errors.New("one or more commands failed")

func main() {
	os.Exit(run())
}

func run() int {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mtc: %v\n", err)
		return 1
	}
	return 0
}

type rootOptions struct {
	configPath   string
	logLevel     string
	logFile      string
	today        string
	agendaDays   int
	previewCount int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "mtc",
		Short:         "Todos, tasks and events on a weekly agenda",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/.config/mtc/config.toml, or $MTC_CONFIG)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info or error")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	flags.StringVar(&opts.today, "today", "", "pretend today is this date (YYYY-MM-DD)")
	flags.IntVar(&opts.agendaDays, "agenda-days", 0, "days shown by agenda when days: is not given")
	flags.IntVar(&opts.previewCount, "preview-count", 0, "dates listed by next when count: is not given")

	rootCmd.AddCommand(newExecCmd(opts))
	return rootCmd
}

func newExecCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "exec [command...]",
		Short: "Run commands against a fresh session and print the results",
		Long: `Run commands against a fresh session and print the results.

Arguments are joined into one line; separate several commands with ";".
Without arguments, commands are read from stdin one per line. Blank lines
and lines starting with # are skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags(), opts)
			if err != nil {
				return err
			}
			closeLog, err := setupLogging(cfg, false)
			if err != nil {
				return err
			}
			defer closeLog()

			clock, err := clockFor(opts.today)
			if err != nil {
				return err
			}
			handlers := update.NewHandlers(session.New(), clock, cfg)

			var lines []string
			if len(args) > 0 {
				lines = strings.Split(strings.Join(args, " "), ";")
			} else {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					lines = append(lines, scanner.Text())
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("read commands: %w", err)
				}
			}
			return execLines(cmd.OutOrStdout(), cmd.ErrOrStderr(), handlers, lines)
		},
	}
}

func execLines(stdout, stderr io.Writer, handlers commands.Handlers, lines []string) error {
	failed := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parsed, err := commands.Parse(line)
		var res commands.Result
		if err == nil {
			res, err = commands.Execute(parsed, handlers)
		}
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			failed = true
			continue
		}
		fmt.Fprintln(stdout, views.RenderResult(update.ResultData("", res)))
	}
	if failed {
		return errCommandsFailed
	}
	return nil
}

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(cmd.Flags(), opts)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(cfg, true)
	if err != nil {
		return err
	}
	defer closeLog()

	clock, err := clockFor(opts.today)
	if err != nil {
		return err
	}
	applog.Info("starting mtc", "agenda_days", cfg.AgendaDays, "preview_count", cfg.PreviewCount)
	program := tea.NewProgram(update.NewModel(session.New(), cfg, clock), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// loadConfig layers defaults, the config file, MTC_* variables and flags.
func loadConfig(flags *pflag.FlagSet, opts *rootOptions) (update.RuntimeConfig, error) {
	cfg := update.DefaultRuntimeConfig()

	path := opts.configPath
	if path == "" {
		path = os.Getenv("MTC_CONFIG")
	}
	if path == "" {
		if p, err := update.DefaultConfigPath(); err == nil {
			path = p
		}
	}
	cfg, err := update.LoadRuntimeConfig(path, cfg)
	if err != nil {
		return cfg, err
	}
	cfg = update.RuntimeConfigFromEnv(cfg)

	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if flags.Changed("agenda-days") {
		if opts.agendaDays <= 0 {
			return cfg, fmt.Errorf("--agenda-days must be positive, got %d", opts.agendaDays)
		}
		cfg.AgendaDays = opts.agendaDays
	}
	if flags.Changed("preview-count") {
		if opts.previewCount <= 0 {
			return cfg, fmt.Errorf("--preview-count must be positive, got %d", opts.previewCount)
		}
		cfg.PreviewCount = opts.previewCount
	}
	return cfg, nil
}

// setupLogging applies the level and destination. In TUI mode logs never go
// to the terminal.
func setupLogging(cfg update.RuntimeConfig, tui bool) (func(), error) {
	level, err := applog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	applog.SetLevel(level)

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "mtc")
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		applog.SetOutput(f)
		return func() { _ = f.Close() }, nil
	}
	if tui {
		applog.SetOutput(io.Discard)
	}
	return func() {}, nil
}

func clockFor(today string) (func() time.Time, error) {
	if strings.TrimSpace(today) == "" {
		return time.Now, nil
	}
	d, err := model.ParseDate(today)
	if err != nil {
		return nil, fmt.Errorf("--today: %w", err)
	}
	fixed := d.Time(time.Local).Add(12 * time.Hour)
	return func() time.Time { return fixed }, nil
}
