// Package main provides the CLI entrypoint for tuitap.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/tuitap/internal/bridge"
	"github.com/verte-zerg/tuitap/internal/config"
	"github.com/verte-zerg/tuitap/internal/cue"
	"github.com/verte-zerg/tuitap/internal/locale"
	"github.com/verte-zerg/tuitap/internal/model"
	"github.com/verte-zerg/tuitap/internal/practice"
	"github.com/verte-zerg/tuitap/internal/session"
	"github.com/verte-zerg/tuitap/internal/tui"
)

const (
	defaultCellWidth  = 8.0
	defaultCellHeight = 16.0
)

var (
	practiceLang    string
	practiceShuffle bool

	soundMute     bool
	soundBell     bool
	soundPlayer   string
	soundAssetDir string

	displayCellWidth  float64
	displayCellHeight float64

	bridgeAddr string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuitap",
		Short:         "TUI tap practice",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceLang, "lang", "", "message language (default: from LANG)")
	rootCmd.Flags().BoolVar(&practiceShuffle, "shuffle", false, "move the target to a random spot for every tap")
	rootCmd.Flags().BoolVar(&soundMute, "mute", false, "disable all cues")
	rootCmd.Flags().BoolVar(&soundBell, "bell", true, "ring the terminal bell on cues")
	rootCmd.Flags().StringVar(&soundPlayer, "player", "", "audio program used to play cue files (e.g. paplay)")
	rootCmd.Flags().StringVar(&soundAssetDir, "asset-dir", config.DefaultAssetDir(), "directory holding cue sound files")
	rootCmd.Flags().Float64Var(&displayCellWidth, "cell-width", defaultCellWidth, "terminal cell width in pixels")
	rootCmd.Flags().Float64Var(&displayCellHeight, "cell-height", defaultCellHeight, "terminal cell height in pixels")
	rootCmd.Flags().StringVar(&bridgeAddr, "bridge", "", "listen address for the host bridge websocket (e.g. 127.0.0.1:7777)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &practiceLang, fileCfg.Practice.Lang)
	applyBoolConfig(cmd, "shuffle", &practiceShuffle, fileCfg.Practice.Shuffle)
	applyBoolConfig(cmd, "mute", &soundMute, fileCfg.Sound.Mute)
	applyBoolConfig(cmd, "bell", &soundBell, fileCfg.Sound.Bell)
	applyStringConfig(cmd, "player", &soundPlayer, fileCfg.Sound.Player)
	applyStringConfig(cmd, "asset-dir", &soundAssetDir, fileCfg.Sound.AssetDir)
	applyFloatConfig(cmd, "cell-width", &displayCellWidth, fileCfg.Display.CellWidth)
	applyFloatConfig(cmd, "cell-height", &displayCellHeight, fileCfg.Display.CellHeight)
	applyStringConfig(cmd, "bridge", &bridgeAddr, fileCfg.Bridge.Addr)

	cfg := model.Config{
		Lang:           practiceLang,
		Shuffle:        practiceShuffle,
		Mute:           soundMute,
		Bell:           soundBell,
		Player:         soundPlayer,
		AssetDir:       soundAssetDir,
		CellWidth:      displayCellWidth,
		CellHeight:     displayCellHeight,
		BridgeAddr:     bridgeAddr,
		AllowedOrigins: fileCfg.Bridge.AllowedOrigins,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tuitap needs an interactive terminal")
	}

	logFile, err := openLog(config.DefaultLogPath())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := logFile.Close(); cerr != nil {
			logErrf("failed to close log: %v\n", cerr)
		}
	}()

	player, err := buildPlayer(cfg)
	if err != nil {
		return err
	}
	trainer := practice.New(session.MaxTaps, practice.CueListener(player))

	if cfg.BridgeAddr != "" {
		b := bridge.NewBroadcaster(session.MaxTaps, cfg.AllowedOrigins)
		trainer.Subscribe(b)
		stop, err := serveBridge(cfg.BridgeAddr, b)
		if err != nil {
			return err
		}
		defer stop()
	}

	msgs := locale.Select(cfg.Lang)
	m := tui.NewModel(cfg, trainer, msgs)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func buildPlayer(cfg model.Config) (cue.Player, error) {
	if cfg.Mute {
		return cue.Nop{}, nil
	}
	var players cue.Multi
	if cfg.Bell {
		players = append(players, cue.Bell{W: os.Stderr})
	}
	if cfg.Player != "" {
		c, err := cue.NewCommand(cfg.Player, cfg.AssetDir)
		if err != nil {
			return nil, fmt.Errorf("invalid sound player: %w", err)
		}
		players = append(players, c)
	}
	if len(players) == 0 {
		return cue.Nop{}, nil
	}
	return players, nil
}

// serveBridge starts the host bridge and returns a function that stops it.
func serveBridge(addr string, b *bridge.Broadcaster) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	srv := &http.Server{
		Handler:           b.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("bridge server error: %v", err)
		}
	}()
	log.Printf("bridge listening on %s", ln.Addr())
	return func() {
		b.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("bridge shutdown: %v", err)
		}
	}, nil
}

// openLog routes the standard logger to path while the TUI owns the screen.
func openLog(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := tea.LogToFile(path, "tuitap")
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	return f, nil
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

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List message languages",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	for _, lang := range locale.Supported() {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), lang); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
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

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
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
	return fmt.Sprintf(`# tuitap configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# lang = "ja"             # Message language (default: from LANG)
# shuffle = false         # Move the target for every tap

[sound]
# mute = false            # Disable all cues
# bell = true             # Ring the terminal bell on cues
# player = "paplay"       # Audio program for cue files
# asset-dir = %q

[display]
# cell-width = %.1f       # Terminal cell width in pixels
# cell-height = %.1f      # Terminal cell height in pixels

[bridge]
# addr = "127.0.0.1:7777" # Host bridge websocket listener
# allowed-origins = []    # Extra origins allowed to connect
`,
		config.DefaultAssetDir(),
		defaultCellWidth,
		defaultCellHeight,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.CellWidth <= 0 {
		return fmt.Errorf("--cell-width must be > 0")
	}
	if cfg.CellHeight <= 0 {
		return fmt.Errorf("--cell-height must be > 0")
	}
	if cfg.Player != "" && strings.TrimSpace(cfg.AssetDir) == "" {
		return fmt.Errorf("--asset-dir must not be empty when --player is set")
	}
	if cfg.BridgeAddr != "" {
		if _, _, err := net.SplitHostPort(cfg.BridgeAddr); err != nil {
			return fmt.Errorf("invalid --bridge address: %w", err)
		}
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
