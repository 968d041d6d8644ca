package main

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/halli/sqlkit"
)

var config *sqlkit.Config

var rootCmd = &cobra.Command{
	Use:   "sqlkit",
	Short: "sqlkit SQL statement helper",
	Long:  "sqlkit builds and executes basic SQL statements against a relational database",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	rootCmd.PersistentFlags().String("config", "sqlkit.yaml", "config file")
}

func checkConfig(config *sqlkit.Config) error {
	if config == nil {
		return errNoConfig
	}

	return nil
}

func openDB() (*sqlkit.DB, error) {
	if err := checkConfig(config); err != nil {
		return nil, err
	}

	return sqlkit.OpenWithConfig(config)
}

func main() {
	viper.SetEnvPrefix("SQLKIT_")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	// Once the flags are defined, we can bind config keys with flags.
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags. please check the flag settings.")
	}

	if err := viper.BindPFlags(rootCmd.Flags()); err != nil {
		log.WithError(err).Errorf("failed to bind local flags. please check the flag settings.")
	}

	log.SetFormatter(&prefixed.TextFormatter{})

	if viper.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}

	configFile := viper.GetString("config")
	if _, err := os.Stat(configFile); err == nil {
		c, err := sqlkit.LoadConfig(configFile)
		if err != nil {
			log.Fatal(err)
		}

		config = c
	}

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
