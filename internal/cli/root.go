// Package cli wires the cobra command surface around the analyzer.
package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/janssenandrew/silksong-save-analyzer/internal/analyzer"
	"github.com/janssenandrew/silksong-save-analyzer/internal/savefile"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "silksong-save-analyzer",
	Short: "Decode a Hollow Knight: Silksong save and report collection progress",
	Long: `Reads a Silksong save file (userN.dat), decodes it, and reports which
collectibles, upgrades, and Hunter's Journal entries the save has, with
per-act filtering. The save file is never modified.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the CLI. Build metadata comes from main via ldflags.
func Execute(v, c, d string) error {
	version, commit, buildDate = v, c, d
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("save-dir", "", "directory to scan for save slots")
	rootCmd.PersistentFlags().IntP("act", "a", 0, "act filter (0 = all acts)")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("save_dir", rootCmd.PersistentFlags().Lookup("save-dir"))
	_ = viper.BindPFlag("act", rootCmd.PersistentFlags().Lookup("act"))
}

func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "silksong-save-analyzer"))
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("SILKSONG")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.ReadInConfig() // a missing config file is fine
}

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func newSession() *analyzer.Session {
	return analyzer.NewSession(analyzer.New(analyzer.Config{Logger: newLogger()}))
}

// resolveSavePath picks the save to analyze: an explicit argument wins,
// otherwise the newest slot in the configured or default directories.
func resolveSavePath(args []string) (string, bool) {
	if len(args) > 0 {
		return args[0], true
	}
	var dirs []string
	if dir := viper.GetString("save_dir"); dir != "" {
		dirs = append(dirs, dir)
	}
	slots := savefile.FindSaveSlots(dirs...)
	if len(slots) == 0 {
		return "", false
	}
	return slots[0].Path, true
}

func actFilter() int {
	act := viper.GetInt("act")
	if act < 0 || act > 3 {
		return 0
	}
	return act
}
