package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/golasco/golasco/internal/config"
	"github.com/golasco/golasco/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "golasco",
	Short: "Role-based property marketplace client",
	Long: `golasco is the terminal client for the Golasco property marketplace.
Browse listings anonymously, sign in as a customer, agent, or franchise
owner, follow your role's dashboard, and book properties with an online
payment.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if apiURL != "" {
			cfg.APIURL = apiURL
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}

		log.SetDefaultLogger(log.New(log.Config{
			Level:       log.ParseLevel(cfg.LogLevel),
			Format:      log.ParseFormat(cfg.LogFormat),
			Output:      log.OutputStderr(),
			ServiceName: "golasco",
		}))

		loadedConfig = cfg
		return nil
	},
}

var (
	apiURL       string
	logLevel     string
	outputFormat string

	loadedConfig config.Config
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "backend URL (default from ~/.golasco/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "output format: text, json, yaml")
}
