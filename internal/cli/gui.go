package cli

import (
	"github.com/spf13/cobra"

	"github.com/janssenandrew/silksong-save-analyzer/internal/gui"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open the drag-and-drop desktop viewer",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := gui.NewApp(gui.AppConfig{
			Version: version,
			Session: newSession(),
		})
		return app.Run()
	},
}

func init() {
	rootCmd.AddCommand(guiCmd)
}
