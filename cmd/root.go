package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/runn3rman/runn3rman.github.io/internal/config"
	"github.com/runn3rman/runn3rman.github.io/internal/logging"
)

var cfgFile string
var appConfig config.Config
var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Generates portfolio project pages from data-analysis output folders",
	Long: `portfolio turns a completed analysis project into a static HTML page:
it discovers the project's charts and dashboard, resolves its metadata
(project_config.json, analysis_summary.json or built-in defaults), and fills
the fixed page template into website/<slug>-project.html.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := initializeConfig(); err != nil {
			return err
		}
		var err error
		logger, err = logging.New(appConfig.Verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

func initializeConfig() error {
	v := viper.New()

	v.SetDefault("templatePath", "tools/project-template.html")
	v.SetDefault("outputDir", "website")
	v.SetDefault("imagePrefix", "../")
	v.SetDefault("verbose", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PORTFOLIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFile != "" {
				return fmt.Errorf("config file %s not found: %w", cfgFile, err)
			}
			// No config file is fine; defaults and env cover everything.
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		return fmt.Errorf("failed to bind verbose flag: %w", err)
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	return nil
}
