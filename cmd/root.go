package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "averse",
	Short: "A meal planner",
	Long: `Averse stores recipes, plans meals for a date range, and compiles the
plan's ingredients into a single grocery list.

Recipes live as markdown files with TOML frontmatter in the recipe
directory; plans persist as TOML files in the plan directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .averse.yaml)")
	rootCmd.PersistentFlags().StringP("recipe-dir", "r", "./recipes", "recipe directory")
	rootCmd.PersistentFlags().StringP("plan-dir", "p", "./plans", "plan directory")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable ANSI colors in output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("recipe_dir", rootCmd.PersistentFlags().Lookup("recipe-dir"))
	_ = viper.BindPFlag("plan_dir", rootCmd.PersistentFlags().Lookup("plan-dir"))
	_ = viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".averse")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("AVERSE")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
