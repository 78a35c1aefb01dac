package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"literarylens/internal/audio"
	"literarylens/internal/config"
	"literarylens/web"
)

// loadConfig reads the config file named by --config
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfigService(cfgFile).Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// siteFS returns the site tree and its directory on disk. An empty root
// selects the embedded site, which has no directory.
func siteFS(root string) (fs.FS, string, error) {
	if root == "" {
		return web.Site(), "", nil
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, "", fmt.Errorf("resolving site root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, "", fmt.Errorf("site root: %w", err)
	}
	if !info.IsDir() {
		return nil, "", fmt.Errorf("site root %s is not a directory", abs)
	}
	return os.DirFS(abs), abs, nil
}

// newPlayer builds the audio backend. Without a decoder the returned player
// is nil and the session runs silently. With RequireInteraction the player
// is wrapped in a gate that the first key press unlocks.
func newPlayer(cfg config.AudioConfig, baseDir string) (audio.Player, *audio.Gate) {
	if !cfg.Enabled {
		return nil, nil
	}

	var player audio.Player
	execPlayer, err := audio.NewExecPlayer(cfg.Command, baseDir)
	switch {
	case err == nil:
		player = execPlayer
	case errors.Is(err, audio.ErrNoPlayer):
		log.Printf("Audio disabled: %v", err)
	default:
		log.Printf("Audio player error: %v", err)
	}

	if !cfg.RequireInteraction {
		return player, nil
	}
	gate := audio.NewGate(player)
	return gate, gate
}
