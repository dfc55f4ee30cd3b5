package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"quickestimate/internal/domain/entities"
	"quickestimate/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var (
	ErrUnsupportedAudioType = errors.New("unsupported audio content type")
	ErrEmptyAudio           = errors.New("empty audio upload")
	ErrAudioStoreFailed     = errors.New("could not store audio upload")
	ErrTranscriptionFailed  = errors.New("transcription failed")
	ErrExtractionFailed     = errors.New("extraction failed")
)

// AudioUpload is a recording received from a client.
type AudioUpload struct {
	Body        io.Reader
	Filename    string
	ContentType string
}

// IVoiceEstimateUseCase runs the audio -> transcript -> estimate pipeline.
//
// The content type is checked before anything is stored or sent out, and the
// stored recording is deleted before TranscribeAndParse returns.
type IVoiceEstimateUseCase interface {
	TranscribeAndParse(ctx context.Context, upload AudioUpload) (entities.Extraction, error)
}

type VoiceEstimateUseCase struct {
	store       interfaces.IAudioStore
	transcriber interfaces.ITranscriber
	extractor   interfaces.IEstimateExtractor
}

var _ IVoiceEstimateUseCase = (*VoiceEstimateUseCase)(nil)

func NewVoiceEstimateUseCase(store interfaces.IAudioStore, transcriber interfaces.ITranscriber, extractor interfaces.IEstimateExtractor) *VoiceEstimateUseCase {
	return &VoiceEstimateUseCase{store: store, transcriber: transcriber, extractor: extractor}
}

func (u *VoiceEstimateUseCase) TranscribeAndParse(ctx context.Context, upload AudioUpload) (entities.Extraction, error) {
	logger := log.Ctx(ctx).With().Str("component", "voice.usecase").Logger()
	logger.Info().Str("filename", upload.Filename).Str("content_type", upload.ContentType).Msg("transcribe-and-parse start")

	mediaType, ok := AudioMediaType(upload.ContentType)
	if !ok {
		logger.Warn().Str("content_type", upload.ContentType).Msg("rejected non-audio upload")
		return entities.Extraction{}, ErrUnsupportedAudioType
	}
	if upload.Body == nil {
		return entities.Extraction{}, ErrEmptyAudio
	}

	path, release, err := u.store.Acquire(upload.Body, AudioExtension(upload.Filename, mediaType))
	if errors.Is(err, interfaces.ErrEmptyAudio) {
		return entities.Extraction{}, ErrEmptyAudio
	}
	if err != nil {
		logger.Error().Err(err).Msg("audio store failed")
		return entities.Extraction{}, fmt.Errorf("%w: %w", ErrAudioStoreFailed, err)
	}
	defer release()

	transcript, err := u.transcriber.Transcribe(ctx, path)
	if err != nil {
		logger.Error().Err(err).Msg("transcription failed")
		return entities.Extraction{}, fmt.Errorf("%w: %w", ErrTranscriptionFailed, err)
	}
	logger.Debug().Int("transcript_len", len(transcript)).Msg("transcription done")

	raw, err := u.extractor.Extract(ctx, transcript)
	if err != nil {
		logger.Error().Err(err).Msg("extraction failed")
		return entities.Extraction{}, fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	out := entities.Extraction{Transcript: transcript, Raw: raw}
	if obj, ok := entities.ParseModelJSON(raw); ok {
		out.Structured = obj
	} else {
		logger.Warn().Int("raw_len", len(raw)).Msg("model output is not a json object; returning raw text")
	}

	logger.Info().Bool("structured", out.IsStructured()).Msg("transcribe-and-parse success")
	return out, nil
}

// AudioMediaType reports whether contentType names an audio/* media type and
// returns it without parameters (audio/webm;codecs=opus -> audio/webm).
func AudioMediaType(contentType string) (string, bool) {
	mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(contentType))
	if err != nil {
		return "", false
	}
	if !strings.HasPrefix(mediaType, "audio/") || mediaType == "audio/" {
		return "", false
	}
	return mediaType, true
}

var audioExtensions = map[string]string{
	"audio/webm":   ".webm",
	"audio/ogg":    ".ogg",
	"audio/mpeg":   ".mp3",
	"audio/mp3":    ".mp3",
	"audio/mp4":    ".m4a",
	"audio/x-m4a":  ".m4a",
	"audio/m4a":    ".m4a",
	"audio/wav":    ".wav",
	"audio/x-wav":  ".wav",
	"audio/wave":   ".wav",
	"audio/flac":   ".flac",
	"audio/x-flac": ".flac",
}

// AudioExtension picks the temp file extension. Speech-to-text providers
// detect the container from it, so the upload's own extension wins.
func AudioExtension(filename, mediaType string) string {
	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" && len(ext) <= 6 {
		return ext
	}
	if ext, ok := audioExtensions[mediaType]; ok {
		return ext
	}
	return ".webm"
}
