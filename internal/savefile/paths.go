package savefile

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"time"
)

// SaveSlot is one userN.dat file found on disk.
type SaveSlot struct {
	Path    string
	Slot    int
	ModTime time.Time
}

var slotNameRE = regexp.MustCompile(`^user([0-9]+)\.dat$`)

// DefaultSaveDirs returns the locations the game writes saves to on the
// current platform. Steam keeps per-account subdirectories under these.
func DefaultSaveDirs() []string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return nil
	}
	switch runtime.GOOS {
	case "windows":
		return []string{filepath.Join(home, "AppData", "LocalLow", "Team Cherry", "Hollow Knight Silksong")}
	case "darwin":
		return []string{filepath.Join(home, "Library", "Application Support", "unity.Team-Cherry.Silksong")}
	default:
		return []string{filepath.Join(home, ".config", "unity3d", "Team Cherry", "Hollow Knight Silksong")}
	}
}

// FindSaveSlots scans dirs (or the platform defaults when none are
// given) one level deep for save slots, newest first.
func FindSaveSlots(dirs ...string) []SaveSlot {
	if len(dirs) == 0 {
		dirs = DefaultSaveDirs()
	}
	var slots []SaveSlot
	for _, dir := range dirs {
		slots = append(slots, scanDir(dir)...)
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				slots = append(slots, scanDir(filepath.Join(dir, e.Name()))...)
			}
		}
	}
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].ModTime.After(slots[j].ModTime)
	})
	return slots
}

func scanDir(dir string) []SaveSlot {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var slots []SaveSlot
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := slotNameRE.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		slot := 0
		for _, c := range m[1] {
			slot = slot*10 + int(c-'0')
		}
		slots = append(slots, SaveSlot{
			Path:    filepath.Join(dir, e.Name()),
			Slot:    slot,
			ModTime: info.ModTime(),
		})
	}
	return slots
}
