package mimetypes

import "mime"

type MIME string

const (
	Unknown   MIME = "unknown"
	AudioMPEG MIME = "audio/mpeg"
	AudioOGG  MIME = "audio/ogg"
	AudioWAV  MIME = "audio/wav"
	AudioWebM MIME = "audio/webm"
	AudioMP4  MIME = "audio/mp4"
	AudioFLAC MIME = "audio/flac"
	AudioAAC  MIME = "audio/aac"
)

// Transcribable lists the audio types accepted by the transcription service.
var Transcribable = []MIME{AudioMPEG, AudioOGG, AudioWAV, AudioWebM, AudioMP4, AudioFLAC, AudioAAC}

func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

// MatchesAny returns the first expected type matching detected.
func MatchesAny(detected string, expected ...MIME) (MIME, bool) {
	for _, e := range expected {
		if m, ok := Matches(detected, e); ok {
			return m, true
		}
	}
	return Unknown, false
}
