package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActFilter(t *testing.T) {
	defer viper.Set("act", 0)

	tests := []struct {
		set  int
		want int
	}{
		{set: 0, want: 0},
		{set: 2, want: 2},
		{set: 3, want: 3},
		{set: -1, want: 0},
		{set: 7, want: 0},
	}
	for _, tt := range tests {
		viper.Set("act", tt.set)
		assert.Equal(t, tt.want, actFilter(), "act %d", tt.set)
	}
}

func TestResolveSavePath(t *testing.T) {
	path, ok := resolveSavePath([]string{"/tmp/user1.dat"})
	require.True(t, ok)
	assert.Equal(t, "/tmp/user1.dat", path, "explicit argument wins")

	dir := t.TempDir()
	older := filepath.Join(dir, "user1.dat")
	newer := filepath.Join(dir, "user2.dat")
	require.NoError(t, os.WriteFile(older, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(newer, []byte("x"), 0o644))
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(older, past, past))

	viper.Set("save_dir", dir)
	defer viper.Set("save_dir", "")

	path, ok = resolveSavePath(nil)
	require.True(t, ok)
	assert.Equal(t, newer, path, "newest slot wins")

	viper.Set("save_dir", filepath.Join(dir, "nowhere"))
	_, ok = resolveSavePath(nil)
	assert.False(t, ok)
}
