package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect the content catalog",
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a content catalog (the built-in one when no file is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		catalog, err := loadCatalog(path)
		if err != nil {
			return err
		}
		name := path
		if name == "" {
			name = "built-in catalog"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (version %s, %d lessons)\n", name, catalog.Version, len(catalog.Lessons))
		return nil
	},
}

var contentShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List the catalog's lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("content")
		catalog, err := loadCatalog(path)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-6s  %-28s  %-8s  %5s  %s\n", "Key", "Title", "Time", "Steps", "Progress")
		fmt.Fprintln(out, strings.Repeat("─", 64))
		for _, l := range catalog.Lessons {
			fmt.Fprintf(out, "%-6s  %-28s  %-8s  %5d  %d%%\n", l.Key, l.Title, l.Time, len(l.Steps), l.Progress)
		}
		fmt.Fprintf(out, "\n%d lessons, %d mentors, %d projects\n",
			len(catalog.Lessons), len(catalog.Mentors), len(catalog.Projects))
		return nil
	},
}

func init() {
	contentCmd.AddCommand(contentValidateCmd)
	contentCmd.AddCommand(contentShowCmd)
}
