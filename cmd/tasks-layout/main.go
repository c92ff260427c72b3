// Package main is the entry point for the tasks-layout command.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tasks-layout/internal/config"
	"github.com/hy4ri/tasks-layout/internal/layout"
	"github.com/hy4ri/tasks-layout/internal/preview"
	"github.com/hy4ri/tasks-layout/internal/render"
	"github.com/hy4ri/tasks-layout/internal/task"
)

const version = "0.1.0"

const helpText = `tasks-layout - Render task lists with selectively hidden fields

USAGE:
    tasks-layout [OPTIONS] --tasks FILE

OPTIONS:
    -h, --help          Show this help message
    -v, --version       Show version information
    --init              Create a template config file
    --config FILE       Use FILE instead of the default config
    --tasks FILE        YAML task list to render
    --hide FIELD        Hide a field (repeatable), e.g. --hide "due date"
    --show FIELD        Show a field hidden by the config (repeatable)
    --short             Render in short mode
    --classes           Print the hidden-class tokens and exit
    --explain           Print the computed layout before the tasks
    --preview           Open the interactive layout preview
    --debug             Append layout details to debug.log

FIELDS:
    priority, recurrence rule, created date, start date, scheduled date,
    due date, cancelled date, done date, tags, urgency, backlinks,
    edit button, postpone button

CONFIGURATION:
    Config file: ~/.config/tasks-layout/config.yaml
`

const configTemplate = `# tasks-layout configuration
# Location: ~/.config/tasks-layout/config.yaml

layout:
  # Fields to hide by name
  hide: []
  #  - priority
  #  - due date
  #  - tags

  query:
    hide_urgency: false
    hide_backlinks: false
    hide_edit_button: false
    hide_postpone_button: false
    short_mode: false

ui:
  # Print the computed layout before rendering
  explain: false
  # Truncate descriptions to this many cells (0 = no limit)
  width: 0
  plain: false
`

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		configPath  string
		tasksPath   string
		hide        stringList
		show        stringList
		short       bool
		classesOnly bool
		explain     bool
		runPreview  bool
		debug       bool
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.StringVar(&configPath, "config", "", "Config file")
	flag.StringVar(&tasksPath, "tasks", "", "YAML task list")
	flag.Var(&hide, "hide", "Hide a field")
	flag.Var(&show, "show", "Show a field")
	flag.BoolVar(&short, "short", false, "Short mode")
	flag.BoolVar(&classesOnly, "classes", false, "Print hidden classes")
	flag.BoolVar(&explain, "explain", false, "Print the computed layout")
	flag.BoolVar(&runPreview, "preview", false, "Interactive preview")
	flag.BoolVar(&debug, "debug", false, "Write debug.log")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("tasks-layout version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	instructions := make([]string, 0, len(hide)+len(show)+1)
	for _, f := range hide {
		instructions = append(instructions, "hide "+f)
	}
	for _, f := range show {
		instructions = append(instructions, "show "+f)
	}
	if short {
		instructions = append(instructions, "short mode")
	}

	l, err := cfg.BuildLayout(instructions...)
	if err != nil {
		return fmt.Errorf("invalid layout: %w", err)
	}

	if debug {
		if err := writeDebugLog(l); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	if classesOnly {
		printClasses(os.Stdout, l)
		return nil
	}

	if explain || cfg.UI.Explain {
		explainLayout(os.Stdout, l)
	}

	var tasks []task.Task
	if tasksPath != "" {
		tasks, err = task.LoadFile(tasksPath)
		if err != nil {
			return err
		}
	} else if !runPreview {
		return fmt.Errorf("no task file given, use --tasks FILE")
	}

	if runPreview {
		m := preview.New(tasks, l)
		m.SetPlain(cfg.UI.Plain)
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to run preview: %w", err)
		}
		return nil
	}

	r := render.New(l)
	r.Width = cfg.UI.Width
	r.Plain = cfg.UI.Plain
	fmt.Println(r.List(tasks))
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// printClasses prints one hidden class per line, nothing if none.
func printClasses(w io.Writer, l *layout.Layout) {
	for _, class := range l.HiddenClasses() {
		fmt.Fprintln(w, class)
	}
}

// explainLayout prints the shown and hidden components and the classes.
func explainLayout(w io.Writer, l *layout.Layout) {
	names := func(cs []layout.Component) string {
		if len(cs) == 0 {
			return "(none)"
		}
		s := make([]string, len(cs))
		for i, c := range cs {
			s[i] = c.String()
		}
		return strings.Join(s, ", ")
	}

	fmt.Fprintf(w, "Shown:   %s\n", names(l.Shown()))
	fmt.Fprintf(w, "Hidden:  %s\n", names(l.Hidden()))
	fmt.Fprintf(w, "Classes: %s\n\n", strings.Join(render.ListClasses(l), " "))
}

// writeDebugLog appends the derived layout to debug.log.
func writeDebugLog(l *layout.Layout) error {
	f, err := os.OpenFile("debug.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}
	defer f.Close()

	debugLog := log.New(f, "LAYOUT: ", log.Ltime|log.Lshortfile)
	debugLog.Printf("shown=%v hidden=%v", l.Shown(), l.Hidden())
	debugLog.Printf("classes=%v", l.HiddenClasses())
	return nil
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}
