package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MeKo-Tech/langid/detect"
)

// detectCmd identifies the language of text given as arguments or on stdin.
var detectCmd = &cobra.Command{
	Use:   "detect [text...]",
	Short: "Identify the language of a text snippet",
	Long: `Identify the most likely language of the given text. Text is taken from the
command-line arguments, or from standard input when no arguments are given.

Examples:
  langid detect "languages are awesome"
  echo "bonjour tout le monde" | langid detect
  langid detect --languages en,fr,de --format json "ein kurzer Satz"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		if text == "" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			text = string(data)
		}

		cfg := GetConfig()
		detectorConfig, err := cfg.BuildDetectorConfig()
		if err != nil {
			return err
		}
		detector, err := detect.New(detectorConfig)
		if err != nil {
			return err
		}

		detected := detector.Detect(text)
		values := detector.ConfidenceValues(text)

		format := cfg.Output.Format
		if cmd.Flags().Changed("format") {
			format, _ = cmd.Flags().GetString("format")
		}

		out := cmd.OutOrStdout()
		switch format {
		case "json":
			result := struct {
				Language    string                   `json:"language"`
				Code        string                   `json:"code,omitempty"`
				Confidences []detect.ConfidenceValue `json:"confidences"`
			}{detected.String(), detected.Code(), values}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		case "text":
			fmt.Fprintln(out, detected)
			for _, v := range values {
				fmt.Fprintf(out, "  %-14s %.*f\n", v.Language, cfg.Output.ConfidencePrecision, v.Value)
			}
			return nil
		default:
			return fmt.Errorf("unsupported output format: %s", format)
		}
	},
}

func init() {
	detectCmd.Flags().StringP("format", "f", "text", "output format (text, json)")
	rootCmd.AddCommand(detectCmd)
}
