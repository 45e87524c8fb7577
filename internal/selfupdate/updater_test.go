package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{goos: "darwin", goarch: "amd64", want: "lexi_Darwin_all.tar.gz"},
		{goos: "darwin", goarch: "arm64", want: "lexi_Darwin_all.tar.gz"},
		{goos: "linux", goarch: "amd64", want: "lexi_Linux_x86_64.tar.gz"},
		{goos: "linux", goarch: "arm64", want: "lexi_Linux_arm64.tar.gz"},
		{goos: "linux", goarch: "386", want: "lexi_Linux_i386.tar.gz"},
		{goos: "windows", goarch: "amd64", want: "lexi_Windows_x86_64.zip"},
		{goos: "windows", goarch: "arm64", want: "lexi_Windows_arm64.zip"},
		{goos: "freebsd", goarch: "amd64", wantErr: true},
		{goos: "linux", goarch: "mips", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksums(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]string
	}{
		{
			name:  "two assets",
			input: "1a2b  lexi_Darwin_all.tar.gz\n3c4d  lexi_Linux_x86_64.tar.gz\n",
			want: map[string]string{
				"lexi_Darwin_all.tar.gz":   "1a2b",
				"lexi_Linux_x86_64.tar.gz": "3c4d",
			},
		},
		{name: "empty file", input: "", want: map[string]string{}},
		{
			name:  "malformed lines skipped",
			input: "1a2b  good.tar.gz\nnonsense\n  \na b c\n3c4d  also-good.tar.gz\n",
			want: map[string]string{
				"good.tar.gz":      "1a2b",
				"also-good.tar.gz": "3c4d",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseChecksums([]byte(tt.input)))
		})
	}
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("release bytes")
	sum := sha256.Sum256(data)

	assert.NoError(t, verifyChecksum(data, hex.EncodeToString(sum[:])))

	err := verifyChecksum(data, "0000000000000000000000000000000000000000000000000000000000000000")
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestExtractBinary(t *testing.T) {
	content := []byte("#!/bin/sh\necho lexi")

	t.Run("tar.gz", func(t *testing.T) {
		got, err := extractBinary(buildTarGz(t, "lexi", content), "lexi_Darwin_all.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("binary missing from archive", func(t *testing.T) {
		_, err := extractBinary(buildTarGz(t, "README.md", content), "lexi_Darwin_all.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestApplyUpdate(t *testing.T) {
	target := filepath.Join(t.TempDir(), "lexi")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	replacement := []byte("new-binary-content")
	sum := sha256.Sum256(replacement)
	require.NoError(t, applyUpdate(replacement, target, sum[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm(), "permission bits carry over")
}

// releaseServer fakes the two GitHub endpoints an update touches: the
// latest-release lookup and the asset downloads for tag v2.0.0.
func releaseServer(t *testing.T, archive []byte, checksums string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/tanvi/lexi/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
	})
	if archive != nil {
		mux.HandleFunc("/tanvi/lexi/releases/download/v2.0.0/"+runtimeAssetName(t), func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(archive)
		})
		mux.HandleFunc("/tanvi/lexi/releases/download/v2.0.0/checksums.txt", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(checksums))
		})
	}
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// runtimeAssetName is the release asset Update will request on the
// platform the tests are running on.
func runtimeAssetName(t *testing.T) string {
	t.Helper()
	name, err := assetNameFor(runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err)
	return name
}

func TestUpdate(t *testing.T) {
	content := []byte("new-lexi-binary")
	archive := buildTarGz(t, "lexi", content)
	archiveSum := sha256.Sum256(archive)
	goodChecksums := hex.EncodeToString(archiveSum[:]) + "  " + runtimeAssetName(t) + "\n"

	t.Run("happy path", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "lexi")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		server := releaseServer(t, archive, goodChecksums)
		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, content, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("dev build refuses", func(t *testing.T) {
		err := NewChecker().Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v1.0.0","html_url":"https://example.com/v1.0.0"}`))
		}))
		t.Cleanup(server.Close)

		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch aborts", func(t *testing.T) {
		badChecksums := "0000000000000000000000000000000000000000000000000000000000000000  " + runtimeAssetName(t) + "\n"
		server := releaseServer(t, archive, badChecksums)

		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("missing asset", func(t *testing.T) {
		server := releaseServer(t, nil, "")

		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// buildTarGz creates a tar.gz archive holding a single file.
func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
