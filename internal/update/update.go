// Package update checks GitHub releases for a newer build and can
// replace the running executable in place. Downloads are pinned to
// https GitHub hosts, verified against the release's checksums.txt and
// size-capped before anything touches the current binary.
package update

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
)

const (
	githubAPI = "https://api.github.com"

	maxArchiveBytes   = 100 << 20
	maxChecksumsBytes = 1 << 20
)

var (
	allowedAssetHosts = map[string]struct{}{
		"api.github.com":                        {},
		"github.com":                            {},
		"objects.githubusercontent.com":         {},
		"github-releases.githubusercontent.com": {},
	}
	repoPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)
)

// Updater resolves releases for one repo and one binary name.
type Updater struct {
	Repo    string // owner/name
	Binary  string // asset binary name inside release archives
	Version string // currently running version
	Log     zerolog.Logger

	client *http.Client
}

func New(repo, binary, version string, log zerolog.Logger) *Updater {
	return &Updater{
		Repo:    repo,
		Binary:  binary,
		Version: version,
		Log:     log,
		client:  &http.Client{Timeout: 20 * time.Second},
	}
}

// Check reports whether a newer release exists, without downloading.
func (u *Updater) Check(ctx context.Context) (string, error) {
	rel, err := u.latestRelease(ctx)
	if err != nil {
		return "", err
	}
	latest := strings.TrimPrefix(rel.TagName, "v")
	current := strings.TrimPrefix(u.Version, "v")

	switch {
	case latest == current:
		return fmt.Sprintf("up to date (v%s)", latest), nil
	case current == "" || current == "dev":
		return fmt.Sprintf("latest release is v%s", latest), nil
	default:
		return fmt.Sprintf("update available: v%s -> v%s", current, latest), nil
	}
}

// Apply downloads the latest release, verifies it and swaps the running
// executable, then restarts with the original arguments. It returns
// only on failure or when already up to date.
func (u *Updater) Apply(ctx context.Context) (string, error) {
	rel, err := u.latestRelease(ctx)
	if err != nil {
		return "", err
	}
	latest := strings.TrimPrefix(rel.TagName, "v")
	if latest == strings.TrimPrefix(u.Version, "v") {
		return fmt.Sprintf("up to date (v%s)", latest), nil
	}

	assetName := archiveName(u.Binary, rel.TagName, runtime.GOOS, runtime.GOARCH)
	archiveURL, err := findAsset(rel, assetName)
	if err != nil {
		return "", err
	}
	checksumsURL, err := findAsset(rel, "checksums.txt")
	if err != nil {
		return "", err
	}

	wantSHA, err := u.fetchChecksum(ctx, checksumsURL, assetName)
	if err != nil {
		return "", err
	}

	tmpDir, err := os.MkdirTemp("", u.Binary+"-update-*")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(tmpDir)

	archivePath := filepath.Join(tmpDir, assetName)
	if err := u.download(ctx, archiveURL, archivePath); err != nil {
		return "", err
	}

	gotSHA, err := sha256File(archivePath)
	if err != nil {
		return "", err
	}
	if !strings.EqualFold(gotSHA, wantSHA) {
		return "", fmt.Errorf("checksum mismatch for %s: got %s want %s", assetName, gotSHA, wantSHA)
	}

	newBin, err := u.extract(tmpDir, archivePath)
	if err != nil {
		return "", err
	}
	if err := replaceSelf(newBin, u.Binary); err != nil {
		return "", err
	}

	u.Log.Info().Str("version", latest).Msg("updated, restarting")
	return "", restart()
}

type githubRelease struct {
	TagName string        `json:"tag_name"`
	Assets  []githubAsset `json:"assets"`
}

type githubAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

func validateRepo(repo string) error {
	if !repoPattern.MatchString(repo) {
		return fmt.Errorf("invalid repository format: %q", repo)
	}
	return nil
}

func validateHTTPSURL(raw string, allowedHosts map[string]struct{}) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if !strings.EqualFold(parsed.Scheme, "https") {
		return fmt.Errorf("unsupported URL scheme: %s", parsed.Scheme)
	}
	if _, ok := allowedHosts[strings.ToLower(parsed.Hostname())]; !ok {
		return fmt.Errorf("unsupported URL host: %s", parsed.Hostname())
	}
	return nil
}

func (u *Updater) latestRelease(ctx context.Context) (*githubRelease, error) {
	if err := validateRepo(u.Repo); err != nil {
		return nil, err
	}
	endpoint := fmt.Sprintf("%s/repos/%s/releases/latest", githubAPI, u.Repo)
	if err := validateHTTPSURL(endpoint, map[string]struct{}{"api.github.com": {}}); err != nil {
		return nil, err
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("github latest release: %s: %s", resp.Status, strings.TrimSpace(string(b)))
	}

	var rel githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, err
	}
	if rel.TagName == "" {
		return nil, errors.New("latest release has no tag_name")
	}
	for _, asset := range rel.Assets {
		if err := validateHTTPSURL(asset.BrowserDownloadURL, allowedAssetHosts); err != nil {
			return nil, fmt.Errorf("invalid asset URL for %s: %w", asset.Name, err)
		}
	}
	return &rel, nil
}

func findAsset(rel *githubRelease, name string) (string, error) {
	for _, a := range rel.Assets {
		if a.Name == name {
			return a.BrowserDownloadURL, nil
		}
	}
	return "", fmt.Errorf("release asset not found: %s", name)
}

// archiveName matches the goreleaser naming scheme.
func archiveName(project, tag, goos, goarch string) string {
	ext := "tar.gz"
	if goos == "windows" {
		ext = "zip"
	}
	return fmt.Sprintf("%s_%s_%s_%s.%s", project, strings.TrimPrefix(tag, "v"), goos, goarch, ext)
}

func (u *Updater) download(ctx context.Context, rawURL, dest string) error {
	if err := validateHTTPSURL(rawURL, allowedAssetHosts); err != nil {
		return err
	}
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	resp, err := u.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("download %s: %s", rawURL, resp.Status)
	}

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := io.Copy(f, io.LimitReader(resp.Body, maxArchiveBytes+1))
	if err != nil {
		return err
	}
	if n > maxArchiveBytes {
		return fmt.Errorf("download exceeded max size (%d bytes)", maxArchiveBytes)
	}
	return nil
}

func (u *Updater) fetchChecksum(ctx context.Context, checksumsURL, assetName string) (string, error) {
	if err := validateHTTPSURL(checksumsURL, allowedAssetHosts); err != nil {
		return "", err
	}
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, checksumsURL, nil)
	resp, err := u.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return "", fmt.Errorf("download checksums: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxChecksumsBytes+1))
	if err != nil {
		return "", err
	}
	if len(data) > maxChecksumsBytes {
		return "", fmt.Errorf("checksums file exceeded max size (%d bytes)", maxChecksumsBytes)
	}
	return findChecksum(string(data), assetName)
}

// findChecksum scans checksums.txt lines of "<sha256>  <filename>".
func findChecksum(data, assetName string) (string, error) {
	for _, line := range strings.Split(data, "\n") {
		parts := strings.Fields(strings.TrimSpace(line))
		if len(parts) < 2 {
			continue
		}
		if parts[len(parts)-1] == assetName {
			return parts[0], nil
		}
	}
	return "", fmt.Errorf("checksum not found for %s", assetName)
}

func sha256File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func (u *Updater) extract(tmpDir, archivePath string) (string, error) {
	if runtime.GOOS == "windows" {
		return extractZip(tmpDir, archivePath, u.Binary)
	}
	return extractTarGz(tmpDir, archivePath, u.Binary)
}

func extractTarGz(tmpDir, archivePath, binary string) (string, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	gzr, err := gzip.NewReader(f)
	if err != nil {
		return "", err
	}
	defer gzr.Close()

	tr := tar.NewReader(gzr)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if filepath.Base(hdr.Name) != binary {
			continue
		}
		if hdr.Size < 0 || hdr.Size > maxArchiveBytes {
			return "", fmt.Errorf("archive binary size out of bounds: %d", hdr.Size)
		}
		return writeBinary(filepath.Join(tmpDir, binary+".new"), tr)
	}
	return "", errors.New("binary not found in tar.gz")
}

func extractZip(tmpDir, archivePath, binary string) (string, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return "", err
	}
	defer zr.Close()

	for _, f := range zr.File {
		base := filepath.Base(f.Name)
		if base != binary && base != binary+".exe" {
			continue
		}
		if f.UncompressedSize64 > maxArchiveBytes {
			return "", fmt.Errorf("zip binary size out of bounds: %d", f.UncompressedSize64)
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		out, err := writeBinary(filepath.Join(tmpDir, binary+".new.exe"), rc)
		cerr := rc.Close()
		if err != nil {
			return "", err
		}
		if cerr != nil {
			return "", cerr
		}
		return out, nil
	}
	return "", errors.New("binary not found in zip")
}

func writeBinary(dest string, r io.Reader) (string, error) {
	of, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o755)
	if err != nil {
		return "", err
	}
	written, err := io.Copy(of, io.LimitReader(r, maxArchiveBytes+1))
	if err != nil {
		_ = of.Close()
		return "", err
	}
	if written > maxArchiveBytes {
		_ = of.Close()
		return "", fmt.Errorf("extracted binary exceeded max size (%d bytes)", maxArchiveBytes)
	}
	if err := of.Close(); err != nil {
		return "", err
	}
	return dest, nil
}

func replaceSelf(newBinPath, binary string) error {
	current, err := os.Executable()
	if err != nil {
		return err
	}
	current, err = filepath.EvalSymlinks(current)
	if err != nil {
		return err
	}

	dir := filepath.Dir(current)
	tmp := filepath.Join(dir, "."+binary+".tmp")
	if err := copyFile(newBinPath, tmp, 0o755); err != nil {
		return err
	}

	backup := current + ".bak"
	_ = os.Remove(backup)
	if err := os.Rename(current, backup); err != nil {
		return fmt.Errorf("backup current: %w", err)
	}
	if err := os.Rename(tmp, current); err != nil {
		_ = os.Rename(backup, current)
		return fmt.Errorf("replace current: %w", err)
	}
	_ = os.Remove(backup)
	return nil
}

func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func restart() error {
	exe, err := os.Executable()
	if err != nil {
		return err
	}
	if runtime.GOOS == "windows" {
		cmd := exec.Command(exe, os.Args[1:]...)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		cmd.Stdin = os.Stdin
		if err := cmd.Start(); err != nil {
			return err
		}
		os.Exit(0)
		return nil
	}
	return syscall.Exec(exe, os.Args, os.Environ())
}
