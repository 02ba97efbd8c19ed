// Package main is the entry point for the clinespend TUI. It loads
// configuration, wires the scanner service, and runs the Bubble Tea program.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwaldt/clinespend/internal/aggregate"
	"github.com/mwaldt/clinespend/internal/app"
	"github.com/mwaldt/clinespend/internal/config"
	"github.com/mwaldt/clinespend/internal/logger"
	"github.com/mwaldt/clinespend/internal/report"
	"github.com/mwaldt/clinespend/internal/services"
	"github.com/mwaldt/clinespend/internal/ui/tabs/breakdown"
	"github.com/mwaldt/clinespend/internal/ui/tabs/daily"
	"github.com/mwaldt/clinespend/internal/ui/tabs/info"
	"github.com/mwaldt/clinespend/internal/ui/tabs/overview"
	"github.com/mwaldt/clinespend/internal/version"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version information")
		once        = flag.Bool("once", false, "scan once, print a plain-text report and exit")
		tasksPath   = flag.String("path", "", "override the Cline tasks directory")
	)
	flag.BoolVar(showVersion, "v", false, "show version information")
	flag.Usage = printUsage
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	if err := run(*once, *tasksPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run contains the main application logic, separated for cleaner error handling.
func run(once bool, tasksPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if tasksPath != "" {
		cfg.TasksPath = tasksPath
	}

	// Log to file so TUI output stays clean
	if cfg.LogFile != "" {
		closer, logErr := logger.ToFile(cfg.LogFile)
		if logErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", logErr)
		} else {
			defer closer.Close()
		}
	}

	if once {
		return runOnce(cfg)
	}
	return runTUI(cfg)
}

// runOnce scans the tasks directory a single time and prints the report.
func runOnce(cfg *config.Config) error {
	result, err := aggregate.Run(cfg.TasksPath, aggregate.Options{})
	report.Render(os.Stdout, result)
	return err
}

// runTUI starts the interactive terminal application.
func runTUI(cfg *config.Config) error {
	svcManager, err := services.NewManager(cfg, aggregate.Options{})
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	defer func() {
		if closeErr := svcManager.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: error closing services: %v\n", closeErr)
		}
	}()

	model := app.NewModel(svcManager)

	// Each tab reads the shared application state
	state := model.GetState()
	tabs := []app.Tab{
		overview.New(state),
		breakdown.New(state),
		daily.New(state),
		info.New(state, cfg),
	}
	model.SetTabs(tabs)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	go func() {
		<-sigChan
		p.Send(tea.Quit())
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// printUsage prints the command-line usage information.
func printUsage() {
	fmt.Println(`clinespend - Cline API usage and cost monitor

Usage:
  clinespend [flags]

Flags:
  -h, --help      Show this help message
  -v, --version   Show version information
  --once          Scan once, print a plain-text report and exit
  --path <dir>    Override the Cline tasks directory

Keyboard Shortcuts:
  1-4             Switch between tabs (Overview, Models, Daily, Info)
  Tab/Shift+Tab   Navigate between tabs
  j/k, Up/Down    Navigate lists
  t               Toggle daily time range
  r               Rescan tasks
  ?               Toggle help
  q, Ctrl+C       Quit

Environment Variables:
  CLINE_TASKS_PATH           Cline tasks directory
  CLINESPEND_LOG_FILE        Log file path (empty disables logging)
  CLINESPEND_MONTHLY_BUDGET  Monthly budget in dollars for alerts
  CLINESPEND_REFRESH_DEBOUNCE  Delay before rescanning after file changes (default: 500ms)

Configuration:
  The application looks for .env files in the following locations:
  - Current directory
  - ~/.config/clinespend/.env
  - ~/.clinespend/.env`)
}
