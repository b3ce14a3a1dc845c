package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/janssenandrew/silksong-save-analyzer/internal/catalog"
	"github.com/janssenandrew/silksong-save-analyzer/internal/search"
	"github.com/janssenandrew/silksong-save-analyzer/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse save slots and progress in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		index := search.NewIndex(catalog.Categories(), catalog.Journal())
		app := tui.NewApp(newSession(), index, viper.GetString("save_dir"))
		return app.Run()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
