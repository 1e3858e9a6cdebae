package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/securecheck/sslcheck-cli/internal/analyzer"
)

var cfgFile string
var logger *zap.SugaredLogger

var rootCmd = &cobra.Command{
	Use:   "sslcheck",
	Short: "Assess the TLS posture and security headers of public web endpoints",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// init config
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath("$HOME")
			viper.SetConfigName(".sslcheck")
			viper.SetConfigType("yaml")
		}

		viper.SetDefault("port_timeout_secs", 5)
		viper.SetDefault("handshake_timeout_secs", 10)
		viper.SetDefault("header_timeout_secs", 10)
		viper.SetDefault("max_redirects", 5)

		_ = viper.ReadInConfig()

		// init logger
		l, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		logger = l.Sugar()

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// engineConfig builds the engine configuration: the immutable rule tables
// plus any probe tunables overridden in the config file.
func engineConfig() *analyzer.Config {
	cfg := analyzer.DefaultConfig()
	cfg.PortTimeout = time.Duration(viper.GetInt("port_timeout_secs")) * time.Second
	cfg.HandshakeTimeout = time.Duration(viper.GetInt("handshake_timeout_secs")) * time.Second
	cfg.HeaderTimeout = time.Duration(viper.GetInt("header_timeout_secs")) * time.Second
	cfg.MaxRedirects = viper.GetInt("max_redirects")
	return cfg
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sslcheck.yaml)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)
}
