// Package audio fetches voice attachments and converts them to a format the
// transcription service accepts.
package audio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"voice-relay/contract"

	"github.com/google/uuid"
)

var _ contract.IAudioPipeline = (*Pipeline)(nil)

const (
	sourceExt = ".ogg"
	outputExt = ".mp3"
)

var unsafeOwnerChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// FileLocator resolves an attachment reference into a download URL.
type FileLocator interface {
	FileURL(ctx context.Context, fileRef string) (string, error)
}

type Pipeline struct {
	log        *slog.Logger
	locator    FileLocator
	client     *http.Client
	ffmpegPath string
	workDir    string
}

func NewPipeline(log *slog.Logger, locator FileLocator, client *http.Client, ffmpegPath, workDir string) *Pipeline {
	return &Pipeline{
		log:        log,
		locator:    locator,
		client:     client,
		ffmpegPath: ffmpegPath,
		workDir:    workDir,
	}
}

// FetchAndTranscode downloads the attachment and converts it to mono 16 kHz mp3.
// File names are unique per call and prefixed with the owner key, so concurrent
// turns never share a file. Artifacts lists every file created, also on error,
// and the caller is responsible for removing them.
func (p *Pipeline) FetchAndTranscode(ctx context.Context, fileRef, ownerKey string) (contract.Artifacts, error) {
	var artifacts contract.Artifacts
	if err := os.MkdirAll(p.workDir, 0o700); err != nil {
		return artifacts, fmt.Errorf("create work dir: %w", err)
	}

	url, err := p.locator.FileURL(ctx, fileRef)
	if err != nil {
		return artifacts, err
	}

	base := filepath.Join(p.workDir, fmt.Sprintf("%s-%s", unsafeOwnerChars.ReplaceAllString(ownerKey, "_"), uuid.NewString()))
	source := base + sourceExt
	artifacts.Files = append(artifacts.Files, source)
	if err = p.download(ctx, url, source); err != nil {
		return artifacts, err
	}

	output := base + outputExt
	artifacts.Files = append(artifacts.Files, output)
	if err = p.transcode(ctx, source, output, ownerKey); err != nil {
		return artifacts, err
	}
	artifacts.Output = output
	return artifacts, nil
}

func (p *Pipeline) download(ctx context.Context, url, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build download request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("download attachment: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download attachment: unexpected status %s", resp.Status)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	written, err := io.Copy(file, resp.Body)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	p.log.Debug("Attachment downloaded", "path", path, "bytes", written)
	return nil
}

func (p *Pipeline) transcode(ctx context.Context, source, output, owner string) error {
	cmd := exec.CommandContext(ctx, p.ffmpegPath,
		"-y",
		"-loglevel", "error",
		"-i", source,
		"-vn",
		"-ac", "1",
		"-ar", "16000",
		output,
	)
	setPlatformSpecificAttrs(cmd)
	var stderr bytes.Buffer
	cmd.Stderr = io.MultiWriter(&stderr, &ffmpegLogWriter{logger: p.log, owner: owner})

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("transcode: %w", ctx.Err())
		}
		return fmt.Errorf("transcode: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return nil
}
