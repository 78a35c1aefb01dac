package cmd

import (
	"github.com/spf13/cobra"

	"literarylens/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "literarylens",
	Short: "Book catalog site with live search and ambient audio",
	Long: `LiteraryLens serves a book catalog site with a live search overlay and an
ambient soundtrack. Run "serve" to host the site over HTTP or "browse" to
explore the same catalog in the terminal.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
}
