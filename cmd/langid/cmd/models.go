package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MeKo-Tech/langid/internal/model"
)

// modelsCmd groups model management subcommands.
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Manage language model files",
}

// modelsVerifyCmd checks that model documents exist for the configured languages.
var modelsVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify that model files exist for the configured languages",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		languages, err := cfg.DetectorLanguages()
		if err != nil {
			return err
		}

		var missing int
		for _, l := range languages {
			for order := 1; order <= 5; order++ {
				if err := model.ValidateModelExists(cfg.ModelsDir, l.Code(), order); err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "missing: %s order %d: %v\n", l, order, err)
					missing++
				}
			}
		}
		if missing > 0 {
			return fmt.Errorf("%d model files missing", missing)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "all model files present")
		return nil
	},
}

// modelsCompileCmd converts JSON model documents into the compiled msgpack form.
var modelsCompileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile JSON model files into the faster msgpack form",
	Long: `Compile the JSON model documents under the models directory into msgpack
files written next to the originals. The detector prefers compiled files when
present, which cuts model materialization time considerably.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		languages, err := cfg.DetectorLanguages()
		if err != nil {
			return err
		}

		results, err := model.CompileDir(cfg.ModelsDir, languages)
		for _, r := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "compiled %s (%d ngrams) -> %s\n", r.Language, r.Ngrams, r.Path)
		}
		if err != nil {
			return err
		}
		if len(results) == 0 {
			return fmt.Errorf("no model files found under %s", model.GetModelsDir(cfg.ModelsDir))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "compiled %d model files\n", len(results))
		return nil
	},
}

func init() {
	modelsCmd.AddCommand(modelsVerifyCmd)
	modelsCmd.AddCommand(modelsCompileCmd)
	rootCmd.AddCommand(modelsCmd)
}
