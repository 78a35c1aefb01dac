package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"literarylens/internal/eventbus"
	"literarylens/internal/site"
	"literarylens/internal/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog in the terminal",
	Long: `Opens the site in a terminal UI: the catalog list, the search overlay
(press /), book details and the ambient soundtrack (press m to mute).`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().String("root", "", "site directory (defaults to the embedded site)")
	browseCmd.Flags().Bool("no-audio", false, "start without the ambient soundtrack")
	browseCmd.Flags().String("log", "literarylens.log", "log file")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	// Set up logging
	logPath, _ := cmd.Flags().GetString("log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("root") {
		cfg.Site.Root, _ = cmd.Flags().GetString("root")
	}
	if noAudio, _ := cmd.Flags().GetBool("no-audio"); noAudio {
		cfg.Audio.Enabled = false
	}

	settle, err := cfg.Overlay.Settle()
	if err != nil {
		return err
	}
	fade, err := cfg.Overlay.Fade()
	if err != nil {
		return err
	}

	fsys, baseDir, err := siteFS(cfg.Site.Root)
	if err != nil {
		return err
	}

	// Create context for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	player, gate := newPlayer(cfg.Audio, baseDir)
	s, err := site.Open(fsys, site.Options{
		Index:       cfg.Site.Index,
		CatalogFile: cfg.Catalog.File,
		Audio: site.AudioOptions{
			Enabled: cfg.Audio.Enabled,
			Source:  cfg.Audio.Source,
			Volume:  cfg.Audio.Volume,
			Player:  player,
			Notify:  bus.Publish,
		},
	})
	if err != nil {
		return fmt.Errorf("opening site: %w", err)
	}
	if session := s.Audio(); session != nil {
		defer session.Stop()
	}

	model := ui.NewModel(bus, s, ui.Options{
		SettleDelay: settle,
		FadeDelay:   fade,
		Gate:        gate,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventNavigationRequested,
		eventbus.EventAudioFailed,
		eventbus.EventError,
	} {
		unsubscribe := bus.Subscribe(t, forward)
		defer unsubscribe()
	}

	// Start forwarding events to UI in background
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-done:
				return
			}
		}
	}()

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
