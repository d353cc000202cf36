// Package player launches external media players (mpv, VLC, IINA)
// against listing URLs.
package player

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"go.trai.ch/webls/internal/core/domain"
	"go.trai.ch/webls/internal/core/ports"
	"go.trai.ch/zerr"
)

// preferred is the player preference order. The first installed one wins.
var preferred = []string{"mpv", "vlc", "iina"}

// Launcher implements ports.Player.
type Launcher struct {
	logger   ports.Logger
	lookPath func(name string) (string, error)
	run      func(ctx context.Context, name string, args ...string) error
}

// NewLauncher creates a media player launcher.
func NewLauncher(logger ports.Logger) *Launcher {
	return &Launcher{
		logger:   logger,
		lookPath: exec.LookPath,
		run:      runCommand,
	}
}

func runCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.Run()
}

// Available returns the names of installed players, in preference order.
func (l *Launcher) Available() []string {
	var found []string
	for _, name := range preferred {
		if _, err := l.lookPath(name); err == nil {
			found = append(found, name)
		}
	}
	return found
}

// Play plays a single media file with the first available player.
// Images are looped in mpv so they stay on screen until closed.
func (l *Launcher) Play(ctx context.Context, file domain.FileRef) error {
	player, err := l.pick()
	if err != nil {
		return err
	}

	args := []string{file.URL}
	if player == "mpv" && domain.IsImage(file.Name) {
		args = []string{"--loop-file=inf", file.URL}
	}

	l.logger.Info(fmt.Sprintf("playing %s with %s", file.Name, player))
	if err := l.run(ctx, player, args...); err != nil {
		return zerr.With(errors.Join(domain.ErrPlaybackFailed, err), "file", file.Name)
	}
	return nil
}

// PlayAll queues every video in files into one player session. For mpv
// the videos go through a temporary m3u playlist; VLC and IINA take the
// URLs directly on the command line.
func (l *Launcher) PlayAll(ctx context.Context, files []domain.FileRef) error {
	var videos []domain.FileRef
	for _, f := range files {
		if domain.IsVideo(f.Name) {
			videos = append(videos, f)
		}
	}
	if len(videos) == 0 {
		return domain.ErrNothingToPlay
	}

	player, err := l.pick()
	if err != nil {
		return err
	}

	l.logger.Info(fmt.Sprintf("playing %d videos with %s", len(videos), player))

	var args []string
	if player == "mpv" {
		playlist, cleanup, err := writePlaylist(videos)
		if err != nil {
			return zerr.Wrap(err, domain.ErrPlaybackFailed.Error())
		}
		defer cleanup()
		args = []string{"--playlist=" + playlist}
	} else {
		for _, v := range videos {
			args = append(args, v.URL)
		}
	}

	if err := l.run(ctx, player, args...); err != nil {
		return zerr.With(errors.Join(domain.ErrPlaybackFailed, err), "player", player)
	}
	return nil
}

// pick returns the first installed player.
func (l *Launcher) pick() (string, error) {
	available := l.Available()
	if len(available) == 0 {
		return "", domain.ErrNoPlayerFound
	}
	return available[0], nil
}

// writePlaylist writes the video URLs to a temporary m3u file and
// returns its path with a cleanup function.
func writePlaylist(videos []domain.FileRef) (string, func(), error) {
	f, err := os.CreateTemp("", "webls-*.m3u")
	if err != nil {
		return "", nil, err
	}
	name := f.Name()

	for _, v := range videos {
		if _, err := fmt.Fprintln(f, v.URL); err != nil {
			_ = f.Close()
			_ = os.Remove(name)
			return "", nil, err
		}
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(name)
		return "", nil, err
	}

	return name, func() { _ = os.Remove(filepath.Clean(name)) }, nil
}

var _ ports.Player = (*Launcher)(nil)
