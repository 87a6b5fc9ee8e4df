package cli

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:          "roadmap",
	Short:        "Personalized learning roadmap service",
	Long:         `Generates week-by-week learning roadmaps, tracks learner progress and renders visual timelines.`,
	Version:      "3.0",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadEnv(envFile)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading configuration (ignored when missing)")
	rootCmd.AddCommand(serveCmd, generateCmd, catalogCmd, eventsCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadEnv loads path into the process environment without overriding
// variables that are already set. A missing default file is not an error.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if path == ".env" {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
	}
	return godotenv.Load(path)
}
