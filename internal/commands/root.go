package commands

import (
	"internal-tools-api/internal/config"
	"internal-tools-api/internal/logging"

	"github.com/spf13/cobra"
)

var (
	configPath string
	version    = "dev"
	commit     = "none"
	date       = "unknown"

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "toolsapi",
	Short: "toolsapi: internal SaaS tools catalog and cost analytics API",
	Long: `toolsapi serves the internal tools catalog over HTTP and reports how
the company spends on SaaS subscriptions by department, category and vendor.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		logging.Init(cfg.Logging)
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with injected build info.
func Execute(v, c, d string) error {
	version = v
	commit = c
	date = d
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file (defaults to $CONFIG_FILE)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)
}
