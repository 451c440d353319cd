package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "goldsuite",
	Short: "Kirby Gold Suite trading dashboard",
	Long: `Gold Suite serves the Kirby Gold precious-metals trading dashboard:
a login gate, ten dashboard pages with their selectors, the marketplace
upload wizard and a live quote stream, all backed by fixture data.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".goldsuite.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
