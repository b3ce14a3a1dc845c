package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/janssenandrew/silksong-save-analyzer/internal/analyzer"
	"github.com/janssenandrew/silksong-save-analyzer/internal/catalog"
	"github.com/janssenandrew/silksong-save-analyzer/internal/search"
)

var findCmd = &cobra.Command{
	Use:   "find <name>",
	Short: "Look up an item or enemy by (approximate) name",
	Long: `Fuzzy-matches the name against every tracked collectible and journal
enemy. When a save can be located it also reports whether you have it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		index := search.NewIndex(catalog.Categories(), catalog.Journal())
		matches := index.Lookup(query, 5)
		if len(matches) == 0 {
			return errors.New("nothing matches " + fmt.Sprintf("%q", query))
		}

		var res *analyzer.Result
		if path, ok := resolveSavePath(nil); ok {
			if r := newSession().AnalyzeFile(path); !r.Failed {
				res = r
			}
		}

		out := cmd.OutOrStdout()
		for _, m := range matches {
			status := ""
			if res != nil {
				status = "  " + obtainedLabel(res, m)
			}
			if m.Enemy {
				fmt.Fprintf(out, "%-28s journal%s\n", m.Name, status)
				continue
			}
			fmt.Fprintf(out, "%-28s %-10s%s\n  %s\n", m.Name, m.Category, status, m.Link)
		}
		return nil
	},
}

func obtainedLabel(res *analyzer.Result, m search.Match) string {
	if m.Enemy {
		for _, e := range res.Journal {
			if e.Name == m.Name {
				if e.Complete() {
					return fmt.Sprintf("complete (%d/%d)", e.Kills, e.Target)
				}
				return fmt.Sprintf("%d/%d kills", e.Kills, e.Target)
			}
		}
		return ""
	}
	for _, cat := range res.Categories {
		if cat.ID != m.Category {
			continue
		}
		for _, r := range cat.Rows {
			if r.Name == m.Name {
				if r.Obtained {
					return "obtained"
				}
				return "missing"
			}
		}
	}
	return ""
}

func init() {
	rootCmd.AddCommand(findCmd)
}
