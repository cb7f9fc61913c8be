package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/probelab/logitscope/internal/logging"
)

var (
	cfgFile    string
	appVersion = "dev"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "logitscope",
	Short: "logitscope — interactive histogram reports for model logits distributions",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}

		for _, name := range []string{"theme", "out", "engine", "logFile"} {
			if !cmd.Flags().Changed(name) && viper.IsSet(name) {
				_ = cmd.Flags().Set(name, viper.GetString(name))
			}
		}

		if err := logging.Init(viper.GetString("logFile")); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	rootCmd.Version = appVersion
	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default logitscope.yaml in the working directory)")
	rootCmd.PersistentFlags().String("theme", "dark", "report theme: dark or light")
	rootCmd.PersistentFlags().String("out", "", "output path (report) or directory (export)")
	rootCmd.PersistentFlags().String("engine", "plotly", "HTML chart engine: plotly or echarts")
	rootCmd.PersistentFlags().String("logFile", "", "append diagnostic log lines to this file")

	_ = viper.BindPFlag("theme", rootCmd.PersistentFlags().Lookup("theme"))
	_ = viper.BindPFlag("out", rootCmd.PersistentFlags().Lookup("out"))
	_ = viper.BindPFlag("engine", rootCmd.PersistentFlags().Lookup("engine"))
	_ = viper.BindPFlag("logFile", rootCmd.PersistentFlags().Lookup("logFile"))
}

func loadConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("logitscope")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is only an error when one was named explicitly.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && (errors.As(err, &notFound) || os.IsNotExist(err)) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}
