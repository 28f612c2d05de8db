package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/brk3/weekly-habits/internal/apiclient"
	"github.com/brk3/weekly-habits/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	apiURL  string
)

var rootCmd = &cobra.Command{
	Use:   "habits",
	Short: "Track weekly habits grouped into sections",
	Long: `
	Habits tracks recurring habits against a weekly goal. Habits live in sections,
	completions are ticked per day of the current Sunday-to-Saturday week, and the
	summary shows how far along the week you are.`,
	SilenceUsage: true,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HABITS_CONFIG or config.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "API base URL, overrides api_base_url")
}

// loadConfig reads the config file. Without an explicit --config a missing
// file falls back to defaults so client commands work out of the box.
func loadConfig() (*config.Config, error) {
	path := config.Path()
	if cfgFile != "" {
		path = cfgFile
	}

	c, err := config.LoadFile(path)
	if err != nil {
		if cfgFile != "" || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		c = config.Default()
	}

	if v := os.Getenv("HABITS_API_BASE"); v != "" {
		c.APIBaseURL = v
	}
	if apiURL != "" {
		c.APIBaseURL = apiURL
	}
	return c, nil
}

func newClient() (*apiclient.Client, error) {
	c, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return apiclient.New(c.APIBaseURL), nil
}
