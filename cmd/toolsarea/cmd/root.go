// Package cmd implements the toolsarea CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (replay, check, watch).
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/go-drift/toolsarea/pkg/config"
	"github.com/go-drift/toolsarea/pkg/errors"
	"github.com/go-drift/toolsarea/pkg/theme"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "toolsarea",
	Short: "toolsarea - merged window header tooling",
	Long: `toolsarea drives the tools area manager outside a real toolkit.

It replays scripted host activity against the manager, validates
configuration and color scheme files, and previews scheme changes live.

Use "toolsarea <command> --help" for more information about a command.`,
	Usage: "toolsarea [--config FILE] [--theme FILE] [--verbose] <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// globals holds the flags accepted before the command name.
var globals struct {
	configPath string
	themePath  string
	verbose    bool
	stdout     io.Writer
	stderr     io.Writer
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return execute(os.Args[1:], os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) error {
	globals.configPath = ""
	globals.themePath = ""
	globals.verbose = false
	globals.stdout = stdout
	globals.stderr = stderr

	if len(args) == 0 {
		printHelp(stdout, rootCmd)
		return nil
	}

	// Handle global flags
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(stdout, rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Fprintf(stdout, "toolsarea version %s (built %s)\n", displayVersion(Version), BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			globals.verbose = true
		case "--config", "--theme":
			if i+1 >= len(args) {
				return fmt.Errorf("%s requires a file path", arg)
			}
			if arg == "--config" {
				globals.configPath = args[i+1]
			} else {
				globals.themePath = args[i+1]
			}
			i++
		default:
			if v, ok := strings.CutPrefix(arg, "--config="); ok {
				globals.configPath = v
				continue
			}
			if v, ok := strings.CutPrefix(arg, "--theme="); ok {
				globals.themePath = v
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(stdout, rootCmd)
		return nil
	}

	errors.SetHandler(&errors.LogHandler{Logger: newLogger(), Verbose: globals.verbose})

	// Find and execute the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(stderr, rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(stdout, cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

// displayVersion prefixes release versions with "v" and leaves development
// builds as they are.
func displayVersion(v string) string {
	if !strings.HasPrefix(v, "v") && semver.IsValid("v"+v) && semver.Prerelease("v"+v) != "-dev" {
		return "v" + v
	}
	return v
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if globals.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(globals.stderr, &slog.HandlerOptions{Level: level}))
}

// loadConfig resolves the --config file, falling back to defaults.
func loadConfig() (config.Resolved, error) {
	if globals.configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(globals.configPath)
	if err != nil {
		return config.Resolved{}, &errors.ToolsAreaError{Op: "config.Load", Kind: errors.KindConfig, Err: err}
	}
	return cfg, nil
}

// loadPalette resolves the --theme file, falling back to the light palette.
func loadPalette() (theme.Palette, error) {
	if globals.themePath == "" {
		return theme.DefaultLightPalette(), nil
	}
	p, err := theme.LoadScheme(globals.themePath)
	if err != nil {
		return theme.Palette{}, &errors.ToolsAreaError{Op: "theme.LoadScheme", Kind: errors.KindTheme, Err: err}
	}
	return p, nil
}

func printHelp(w io.Writer, cmd *Command) {
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(w, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h, --help           Show help for a command")
	fmt.Fprintln(w, "  -v, --version        Show version information")
	fmt.Fprintln(w, "  --config FILE        Tools area configuration (YAML)")
	fmt.Fprintln(w, "  --theme FILE         Color scheme (YAML)")
	fmt.Fprintln(w, "  --verbose            Debug logging and stack traces")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  toolsarea replay focus.yaml           Replay a scenario")
	fmt.Fprintln(w, "  toolsarea --theme dark.yaml check     Validate a color scheme")
	fmt.Fprintln(w, "  toolsarea --theme dark.yaml watch     Print the palette on every change")
}

func printCommandHelp(w io.Writer, cmd *Command) {
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
}
