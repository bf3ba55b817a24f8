package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/quatton/scitech/pkg/scsdk"
	"github.com/spf13/cobra"
)

type contextKey string

const configContextKey contextKey = "scitechconfig"

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "scitechctl",
		Short: "Operator CLI for the SciTech machine dashboard",
		Long: `scitechctl talks to a running dashboard server. Log in once to store a
token in the OS keyring, then list and update machines, follow live
temperature updates, or print a machine's temperature chart.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := scsdk.LoadConfig(cfgFile)
			if err != nil {
				return err
			}

			if f := cmd.Flags().Lookup("base-url"); f != nil && f.Changed {
				cfg.Viper().Set(scsdk.BaseUrlKey, f.Value.String())
			}

			ctx := context.WithValue(cmd.Context(), configContextKey, cfg)
			cmd.SetContext(ctx)

			return nil
		},
	}
)

// GetConfig retrieves the Config from the command context
func GetConfig(cmd *cobra.Command) (*scsdk.Config, error) {
	cfg, ok := cmd.Context().Value(configContextKey).(*scsdk.Config)
	if !ok {
		return nil, errors.New("no config in context")
	}
	return cfg, nil
}

// newSdk builds an SDK client from the command's config.
func newSdk(cmd *cobra.Command) (*scsdk.Sdk, error) {
	cfg, err := GetConfig(cmd)
	if err != nil {
		return nil, err
	}
	return scsdk.NewSdk(cfg)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitIfSdkError(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML). Searches: scitech.yaml, .scitech/config.yaml")
	rootCmd.PersistentFlags().String("base-url", "", "Base URL of the dashboard server (overrides config)")
}
