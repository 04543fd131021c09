package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MeKo-Tech/langid/detect"
	"github.com/MeKo-Tech/langid/internal/batch"
)

// batchCmd detects the language of many files concurrently.
var batchCmd = &cobra.Command{
	Use:   "batch [files or directories...]",
	Short: "Detect the language of multiple text files",
	Long: `Detect the language of every given file, expanding directories through the
include/exclude filters. Files are processed concurrently.

Examples:
  langid batch notes.txt letters/
  langid batch corpus/ --recursive --include '*.txt' --format csv
  langid batch docs/ --workers 8 --format json --output results.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		detectorConfig, err := cfg.BuildDetectorConfig()
		if err != nil {
			return err
		}
		detector, err := detect.New(detectorConfig)
		if err != nil {
			return err
		}

		workers := cfg.Batch.Workers
		if cmd.Flags().Changed("workers") {
			workers, _ = cmd.Flags().GetInt("workers")
		}
		recursive, _ := cmd.Flags().GetBool("recursive")
		include, _ := cmd.Flags().GetStringSlice("include")
		exclude, _ := cmd.Flags().GetStringSlice("exclude")

		result, err := batch.Process(cmd.Context(), detector, args, batch.Config{
			Workers:         workers,
			Recursive:       recursive,
			IncludePatterns: include,
			ExcludePatterns: exclude,
		})
		if err != nil {
			return err
		}

		format := cfg.Output.Format
		if cmd.Flags().Changed("format") {
			format, _ = cmd.Flags().GetString("format")
		}
		rendered, err := result.FormatResults(format, cfg.Output.ConfidencePrecision)
		if err != nil {
			return err
		}

		if outputFile, _ := cmd.Flags().GetString("output"); outputFile != "" {
			return os.WriteFile(outputFile, []byte(rendered), 0o644)
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

func init() {
	batchCmd.Flags().StringP("format", "f", "text", "output format (text, json, csv)")
	batchCmd.Flags().StringP("output", "o", "", "write results to file instead of stdout")
	batchCmd.Flags().IntP("workers", "w", 0, "concurrent workers (0 = number of CPUs)")
	batchCmd.Flags().BoolP("recursive", "r", false, "descend into directories")
	batchCmd.Flags().StringSlice("include", nil, "include only files matching these glob patterns")
	batchCmd.Flags().StringSlice("exclude", nil, "exclude files matching these glob patterns")
	rootCmd.AddCommand(batchCmd)
}
