package runtime

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"strings"
	"voice-relay/contract"
	"voice-relay/domain"
	"voice-relay/errors"

	"github.com/samber/lo"
)

// transcribe turns a voice attachment into text.
// Every file created on the way is removed before it returns, whatever the outcome,
// so the completion call never starts while temporary audio is still on disk.
func (o *Orchestrator) transcribe(ctx context.Context, in domain.Inbound, fileRef string) (string, error) {
	transcodeCtx, cancel := context.WithTimeout(ctx, o.timeouts.Transcode)
	defer cancel()
	artifacts, err := o.audio.FetchAndTranscode(transcodeCtx, fileRef, ownerKey(in))
	defer o.release(artifacts)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errors.ErrTranscode, err)
	}

	transcribeCtx, cancelTranscription := context.WithTimeout(ctx, o.timeouts.Transcription)
	defer cancelTranscription()
	text, err := o.transcriber.Transcribe(transcribeCtx, artifacts.Output)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errors.ErrTranscription, err)
	}
	return strings.TrimSpace(text), nil
}

func (o *Orchestrator) release(artifacts contract.Artifacts) {
	paths := lo.Compact(lo.Uniq(append(artifacts.Files, artifacts.Output)))
	for _, path := range paths {
		if err := o.removeFile(path); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
			o.log.Warn("Temporary audio file not removed", "path", path, "error", err)
		}
	}
}

func ownerKey(in domain.Inbound) string {
	if in.Caller.ExternalID != "" {
		return in.Caller.ExternalID
	}
	return fmt.Sprintf("chat%d", in.ChatID)
}
