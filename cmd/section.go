package cmd

import (
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Manage the sections habits are grouped into",
}

var sectionAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a section",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		s, err := client.CreateSection(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		cmd.Printf("Created section %s (%s)\n", s.Name, s.ID)
		return nil
	},
}

var sectionRenameCmd = &cobra.Command{
	Use:   "rename <section-id> <name>",
	Short: "Rename a section",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		s, err := client.RenameSection(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		cmd.Printf("Renamed section %s to %s\n", s.ID, s.Name)
		return nil
	},
}

var sectionRmCmd = &cobra.Command{
	Use:     "rm <section-id>",
	Aliases: []string{"delete"},
	Short:   "Delete an empty section",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.DeleteSection(cmd.Context(), args[0]); err != nil {
			return err
		}
		cmd.Printf("Deleted section %s\n", args[0])
		return nil
	},
}

var sectionLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List sections",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		sections, err := client.ListSections(cmd.Context())
		if err != nil {
			return err
		}

		table := uitable.New()
		table.AddRow("ID", "NAME")
		for _, s := range sections {
			table.AddRow(s.ID, s.Name)
		}
		cmd.Println(table)
		return nil
	},
}

func init() {
	sectionCmd.AddCommand(sectionAddCmd, sectionRenameCmd, sectionRmCmd, sectionLsCmd)
	rootCmd.AddCommand(sectionCmd)
}
