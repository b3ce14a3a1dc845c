package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/janssenandrew/silksong-save-analyzer/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Decode a save and print the progress report",
	Long: `Decodes the given save file, or the newest slot found in the save
directory when no file is given, and prints the derived progress model.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, ok := resolveSavePath(args)
		if !ok {
			return errors.New("no save file given and no slots found; pass a path or set --save-dir")
		}

		res := newSession().AnalyzeFile(path)
		act := actFilter()

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			out, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}
		if missing, _ := cmd.Flags().GetBool("missing"); missing {
			fmt.Fprint(cmd.OutOrStdout(), report.RenderMissing(res, act))
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), report.Render(res, act))
		return nil
	},
}

func init() {
	analyzeCmd.Flags().Bool("json", false, "emit the full derived model as JSON")
	analyzeCmd.Flags().Bool("missing", false, "list only missing items, with wiki links")
	rootCmd.AddCommand(analyzeCmd)
}
