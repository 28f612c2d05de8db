package cmd

import (
	"fmt"
	"os"

	"github.com/brk3/weekly-habits/internal/apiclient"
	"github.com/brk3/weekly-habits/internal/logger"
	"github.com/brk3/weekly-habits/internal/nudge"
	"github.com/brk3/weekly-habits/internal/nudge/resend"
	"github.com/spf13/cobra"
)

var nudgeCmd = &cobra.Command{
	Use:   "nudge",
	Short: "E-mail a reminder for habits falling behind their weekly goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		apiKey := os.Getenv("HABITS_RESEND_API_KEY")
		if apiKey == "" {
			return fmt.Errorf("HABITS_RESEND_API_KEY environment variable is not set")
		}

		c, err := loadConfig()
		if err != nil {
			return fmt.Errorf("error loading config file: %w", err)
		}
		if err := logger.Setup(c.Log.Level, c.Log.Format); err != nil {
			return err
		}
		if c.Nudge.Email == "" {
			return fmt.Errorf("nudge.email is not set in the config file")
		}

		n := &resend.ResendNotifier{
			ApiKey: apiKey,
			From:   c.Nudge.From,
			Email:  c.Nudge.Email,
		}
		return nudge.Nudge(cmd.Context(), apiclient.New(c.APIBaseURL), n, c.Nudge.Slack)
	},
}

func init() {
	rootCmd.AddCommand(nudgeCmd)
}
