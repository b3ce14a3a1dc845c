package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/janssenandrew/silksong-save-analyzer/internal/update"
)

const releaseRepo = "janssenandrew/silksong-save-analyzer"

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check for a newer release and optionally install it",
	RunE: func(cmd *cobra.Command, args []string) error {
		u := update.New(releaseRepo, "silksong-save-analyzer", version, newLogger())
		apply, _ := cmd.Flags().GetBool("apply")

		var (
			msg string
			err error
		)
		if apply {
			msg, err = u.Apply(cmd.Context())
		} else {
			msg, err = u.Check(cmd.Context())
		}
		if err != nil {
			return err
		}
		if msg != "" {
			fmt.Fprintln(cmd.OutOrStdout(), msg)
		}
		return nil
	},
}

func init() {
	updateCmd.Flags().Bool("apply", false, "download and install the update")
	rootCmd.AddCommand(updateCmd)
}
