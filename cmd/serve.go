package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"literarylens/internal/server"
	"literarylens/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site over HTTP",
	Long: `Serves the site tree with client-side route fallback, plus a JSON search
API backed by the page's catalog. The port comes from PORT, then
LITERARYLENS_SERVER_PORT, then the config file, default 3000.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "listen port (overrides config and environment)")
	serveCmd.Flags().String("root", "", "site directory (defaults to the embedded site)")
	serveCmd.Flags().Bool("allow-all-origins", false, "allow CORS requests from any origin")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("port") {
		cfg.Server.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("root") {
		cfg.Site.Root, _ = cmd.Flags().GetString("root")
	}
	if allow, _ := cmd.Flags().GetBool("allow-all-origins"); allow {
		cfg.Server.AllowAllOrigins = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	fsys, _, err := siteFS(cfg.Site.Root)
	if err != nil {
		return err
	}

	s, err := site.Open(fsys, site.Options{
		Index:       cfg.Site.Index,
		CatalogFile: cfg.Catalog.File,
	})
	if err != nil {
		return fmt.Errorf("opening site: %w", err)
	}

	srv := server.New(server.Config{
		Port:     cfg.Server.Port,
		Index:    cfg.Site.Index,
		AllowAll: cfg.Server.AllowAllOrigins,
	}, s, fsys)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving LiteraryLens at http://localhost:%d (%d books), press Ctrl+C to stop\n",
		cfg.Server.Port, len(s.Entries()))
	return srv.Run(ctx, 10*time.Second)
}
