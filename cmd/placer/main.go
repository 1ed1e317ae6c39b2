package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yourusername/placer-cli/internal/client"
	placerConfig "github.com/yourusername/placer-cli/internal/config"
	placerFocus "github.com/yourusername/placer-cli/internal/focus"
	"github.com/yourusername/placer-cli/internal/geometry"
	placerLayout "github.com/yourusername/placer-cli/internal/layout"
	"github.com/yourusername/placer-cli/internal/logging"
	placerMax "github.com/yourusername/placer-cli/internal/maximize"
	"github.com/yourusername/placer-cli/internal/mouse"
	"github.com/yourusername/placer-cli/internal/output"
	placerRules "github.com/yourusername/placer-cli/internal/rules"
	placerServer "github.com/yourusername/placer-cli/internal/server"
)

var (
	socketPath string
	timeout    time.Duration
	configPath string
	jsonOutput bool
	noColor    bool
	debugMode  bool
	dryRun     bool
	warpMouse  bool

	// Color functions
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "placer",
	Short: "Rule-driven window placement client",
	Long: `Placer is a command-line client for a window-manager backend.

Each verb takes one snapshot of the current windows, computes target
geometries from the configured rule and tiling tables, and issues
move/resize/focus commands back to the backend.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			color.NoColor = true
		}
		return logging.Init(debugMode)
	},
}

// layoutCmd applies the programmed (rule-table) layout
var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Apply the programmed layout to all visible windows",
	Long: `Places every visible window on its rule-declared slot. Two or more
terminal windows tile onto the screen quarters instead of stacking on
the single terminal slot. Windows with no matching rule are left alone.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.close()

		placements := env.engine.LayoutAll(env.snap.Windows, env.snap.Display)
		return finishPlacements(env, placements)
	},
}

// tileCmd applies the equal-share grid layout
var tileCmd = &cobra.Command{
	Use:   "tile",
	Short: "Tile all visible windows on an equal-share grid",
	Long: `Places every visible window on a grid sized from the tile-count
table. Terminals fill first, emacs windows last; the last window's cell
is stretched so no column has a gap.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.close()

		placements := env.tiler.TileAll(env.snap.Windows, env.snap.Display)
		return finishPlacements(env, placements)
	},
}

// focusNextCmd cycles focus in reading order
var focusNextCmd = &cobra.Command{
	Use:   "focus-next",
	Short: "Focus the next window in reading order",
	Long: `Cycles focus left-to-right, top-to-bottom over the visible windows.
When no window has focus, the first window in reading order is chosen.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.close()

		next, ok := placerFocus.Next(env.snap.FocusedID, env.snap.Windows)
		if !ok {
			infoColor.Println("No visible windows")
			return nil
		}

		ctx := context.Background()
		if err := env.client.Focus(ctx, next); err != nil {
			printError(fmt.Sprintf("Focus failed: %v", err))
			return err
		}
		if warpMouse {
			if err := mouse.WarpToWindow(ctx, env.client, next); err != nil {
				logging.Warn().Uint32("window", next).Err(err).Msg("mouse warp failed")
			}
		}

		successColor.Printf("✓ Focused window %d\n", next)
		return nil
	},
}

// maximizeCmd toggles full maximize for the focused window
var maximizeCmd = &cobra.Command{
	Use:   "maximize",
	Short: "Toggle horizontal+vertical maximize for the focused window",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMaximize(true)
	},
}

// vmaximizeCmd toggles vertical-only maximize
var vmaximizeCmd = &cobra.Command{
	Use:   "vmaximize",
	Short: "Toggle vertical-only maximize for the focused window",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMaximize(false)
	},
}

// windowsCmd lists the current snapshot
var windowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List windows from the current snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.close()

		if jsonOutput {
			return printJSON(env.snap.Windows)
		}
		output.PrintWindowsTable(env.snap.Windows)
		return nil
	},
}

// viewCmd renders the snapshot as ASCII boxes
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Visualize the current window arrangement in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.close()

		opts := output.DefaultVisualizationOptions()
		fmt.Print(output.VisualizeScreen(env.snap.Display, env.snap.Windows, opts))
		return nil
	},
}

// pingCmd tests backend connectivity
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Test connection to the window-manager backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.NewClient(socketPath, timeout)
		defer c.Close()

		start := time.Now()
		result, err := c.Ping(context.Background())
		elapsed := time.Since(start)

		if err != nil {
			printError(fmt.Sprintf("Ping failed: %v", err))
			return err
		}

		if jsonOutput {
			return printJSON(result)
		}

		successColor.Println("✓ Pong received")
		fmt.Printf("Response time: %v\n", elapsed)
		return nil
	},
}

// configCmd groups configuration subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and validate configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := placerConfig.LoadConfig(configPath)
		if err != nil {
			printError(fmt.Sprintf("Failed to load config: %v", err))
			return err
		}

		if jsonOutput {
			return printJSON(cfg)
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		os.Stdout.Write(data)
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if len(args) > 0 {
			path = args[0]
		}
		if path == "" {
			path = placerConfig.GetConfigPath()
		}

		if _, err := placerConfig.LoadConfig(path); err != nil {
			printError(fmt.Sprintf("Invalid: %v", err))
			return err
		}

		successColor.Printf("✓ %s is valid\n", path)
		return nil
	},
}

// env bundles everything a policy verb needs for one invocation.
type env struct {
	client  *client.Client
	cfg     *placerConfig.Config
	conv    geometry.Converter
	matcher *placerRules.Matcher
	engine  *placerLayout.Engine
	tiler   *placerLayout.TileEngine
	snap    *placerServer.Snapshot
}

func (e *env) close() {
	e.client.Close()
}

// setup loads config, connects, and takes the invocation's snapshot.
func setup() (*env, error) {
	cfg, err := placerConfig.LoadConfig(configPath)
	if err != nil {
		printError(fmt.Sprintf("Failed to load config: %v", err))
		return nil, err
	}

	ruleTable, err := cfg.RuleTable()
	if err != nil {
		printError(fmt.Sprintf("Failed to compile rules: %v", err))
		return nil, err
	}
	terminal, err := cfg.TerminalPattern()
	if err != nil {
		printError(fmt.Sprintf("Bad terminal pattern: %v", err))
		return nil, err
	}
	emacs, err := cfg.EmacsPattern()
	if err != nil {
		printError(fmt.Sprintf("Bad emacs pattern: %v", err))
		return nil, err
	}

	c := client.NewClient(socketPath, timeout)
	snap, err := placerServer.Fetch(context.Background(), c)
	if err != nil {
		c.Close()
		printError(fmt.Sprintf("Failed to fetch snapshot: %v", err))
		return nil, err
	}

	conv := cfg.Converter()
	matcher := placerRules.NewMatcher(ruleTable)

	return &env{
		client:  c,
		cfg:     cfg,
		conv:    conv,
		matcher: matcher,
		engine: &placerLayout.Engine{
			Matcher:   matcher,
			Quadrants: cfg.QuadrantTable(),
			Terminal:  terminal,
			Conv:      conv,
		},
		tiler: &placerLayout.TileEngine{
			Counts:   cfg.TileTable(),
			Terminal: terminal,
			Emacs:    emacs,
			Conv:     conv,
		},
		snap: snap,
	}, nil
}

// finishPlacements either prints or applies the computed placements.
func finishPlacements(e *env, placements []placerLayout.Placement) error {
	if len(placements) == 0 {
		infoColor.Println("Nothing to place")
		return nil
	}

	if dryRun {
		if jsonOutput {
			return printJSON(placements)
		}
		output.PrintPlacementsTable(placements, e.snap.Windows)
		return nil
	}

	if err := placerLayout.Apply(context.Background(), e.client, placements); err != nil {
		printError(fmt.Sprintf("Failed to apply placements: %v", err))
		return err
	}

	successColor.Printf("✓ Placed %d windows\n", len(placements))
	return nil
}

// runMaximize toggles maximize for the focused window.
func runMaximize(horizontal bool) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	if e.snap.FocusedID == 0 {
		infoColor.Println("No focused window")
		return nil
	}
	w := e.snap.FindWindow(e.snap.FocusedID)
	if w == nil {
		return fmt.Errorf("focused window %d missing from snapshot", e.snap.FocusedID)
	}

	toggler := &placerMax.Toggler{Matcher: e.matcher, Conv: e.conv}
	usable := e.conv.Usable(e.snap.Display)

	target, action, ok := toggler.Toggle(*w, usable, horizontal)
	if !ok {
		infoColor.Printf("Nothing to do (%s)\n", action)
		return nil
	}

	placements := []placerLayout.Placement{{WindowID: w.ID, Frame: target}}
	if dryRun {
		output.PrintPlacementsTable(placements, e.snap.Windows)
		return nil
	}

	if err := placerLayout.Apply(context.Background(), e.client, placements); err != nil {
		printError(fmt.Sprintf("Failed to %s: %v", action, err))
		return err
	}

	successColor.Printf("✓ %s window %d\n", action, w.ID)
	return nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&socketPath, "socket", client.DefaultSocketPath, "Unix socket path")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", client.DefaultTimeout, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	layoutCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print placements instead of applying them")
	tileCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print placements instead of applying them")
	maximizeCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print placements instead of applying them")
	vmaximizeCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print placements instead of applying them")
	focusNextCmd.Flags().BoolVar(&warpMouse, "warp", false, "Warp the mouse cursor to the focused window")

	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(tileCmd)
	rootCmd.AddCommand(focusNextCmd)
	rootCmd.AddCommand(maximizeCmd)
	rootCmd.AddCommand(vmaximizeCmd)
	rootCmd.AddCommand(windowsCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(pingCmd)

	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
}

func main() {
	defer logging.Close()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Helper functions

func printJSON(data interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func printError(msg string) {
	if noColor {
		fmt.Fprintln(os.Stderr, "Error:", msg)
	} else {
		errorColor.Fprint(os.Stderr, "✗ Error: ")
		fmt.Fprintln(os.Stderr, msg)
	}
}
