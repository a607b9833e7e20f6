package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "succbench",
	Short: "Benchmark integer successor-delete structures",
	Long: "succbench replays recorded delete/successor workloads against every\n" +
		"registered structure, validates the answers against a reference, and\n" +
		"appends best-of-N timings to a CSV file.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .succbench.yaml)")
	rootCmd.PersistentFlags().String("out", "data.csv", "CSV file results are appended to")
	_ = viper.BindPFlag("out", rootCmd.PersistentFlags().Lookup("out"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".succbench")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("SUCCBENCH")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
