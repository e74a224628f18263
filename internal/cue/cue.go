// Package cue plays the audio cues that accompany practice events.
package cue

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os/exec"
	"path/filepath"
	"strings"
)

// Kind identifies a cue.
type Kind int

const (
	Start Kind = iota
	Success
	OffTarget
	ExcessiveMovement
	ExcessiveDuration
)

func (k Kind) String() string {
	switch k {
	case Start:
		return "start"
	case Success:
		return "success"
	case OffTarget:
		return "off_target"
	case ExcessiveMovement:
		return "excessive_movement"
	case ExcessiveDuration:
		return "excessive_duration"
	default:
		return "unknown"
	}
}

// FileName returns the asset name for the cue.
func (k Kind) FileName() string {
	switch k {
	case Start:
		return "start.mp3"
	case Success:
		return "success.mp3"
	case OffTarget:
		return "outside.mp3"
	case ExcessiveMovement:
		return "shaking.mp3"
	case ExcessiveDuration:
		return "too-long.mp3"
	default:
		return ""
	}
}

// Player renders a cue. Implementations must not block the caller for the
// length of the sound.
type Player interface {
	Play(Kind) error
}

// Play plays k on p and logs any failure. Sound is best-effort.
func Play(p Player, k Kind) {
	if p == nil {
		return
	}
	if err := p.Play(k); err != nil {
		log.Printf("failed to play %s cue: %v", k, err)
	}
}

// Nop discards every cue.
type Nop struct{}

// Play implements Player.
func (Nop) Play(Kind) error { return nil }

// Bell rings the terminal bell.
type Bell struct {
	W io.Writer
}

// Play implements Player.
func (b Bell) Play(Kind) error {
	if b.W == nil {
		return errors.New("bell writer is nil")
	}
	_, err := io.WriteString(b.W, "\a")
	return err
}

// Multi plays each cue on every player and joins the failures.
type Multi []Player

// Play implements Player.
func (m Multi) Play(k Kind) error {
	var errs []error
	for _, p := range m {
		if err := p.Play(k); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Command plays asset files with an external audio program such as
// paplay or afplay.
type Command struct {
	Program  string
	AssetDir string

	start func(*exec.Cmd) error
}

// NewCommand parses program, which may carry arguments ("mpv --really-quiet").
func NewCommand(program, assetDir string) (*Command, error) {
	if strings.TrimSpace(program) == "" {
		return nil, fmt.Errorf("player command is empty")
	}
	if assetDir == "" {
		return nil, fmt.Errorf("asset directory is empty")
	}
	return &Command{Program: program, AssetDir: assetDir}, nil
}

// Path returns the asset path for k.
func (c *Command) Path(k Kind) string {
	return filepath.Join(c.AssetDir, k.FileName())
}

// Play implements Player. The program runs in the background and its exit
// status is logged.
func (c *Command) Play(k Kind) error {
	name := k.FileName()
	if name == "" {
		return fmt.Errorf("no asset for cue %d", int(k))
	}
	parts := strings.Fields(c.Program)
	if len(parts) == 0 {
		return fmt.Errorf("player command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], c.Path(k))...)
	start := c.start
	if start == nil {
		start = startAndReap
	}
	if err := start(cmd); err != nil {
		return fmt.Errorf("failed to start player: %w", err)
	}
	return nil
}

func startAndReap(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Printf("player exited: %v", err)
		}
	}()
	return nil
}
