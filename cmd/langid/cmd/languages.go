package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MeKo-Tech/langid/lang"
)

// languagesCmd lists the language catalog.
var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the supported languages",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-14s %-5s %s\n", "LANGUAGE", "CODE", "SCRIPTS")
		for _, l := range lang.All() {
			scripts := l.Scripts()
			names := make([]string, len(scripts))
			for i, s := range scripts {
				names[i] = s.String()
			}
			fmt.Fprintf(out, "%-14s %-5s %s\n", l, l.Code(), strings.Join(names, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
