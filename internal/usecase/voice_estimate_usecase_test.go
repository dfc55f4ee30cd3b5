package usecase

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"quickestimate/internal/infrastructure/storage"
	"quickestimate/internal/usecase/interfaces"
	mock_interfaces "quickestimate/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const sampleModelJSON = `{"Client Name":"Jane Doe","Job Type":"Painting","Items":[{"Description":"Paint wall","Quantity":2,"Unit Price":50}]}`

func webmUpload(body string) AudioUpload {
	return AudioUpload{Body: strings.NewReader(body), Filename: "note.webm", ContentType: "audio/webm;codecs=opus"}
}

func TestVoiceEstimateUseCase_TranscribeAndParse(t *testing.T) {
	t.Run("non audio upload is rejected before any call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIAudioStore(ctrl)
		tr := mock_interfaces.NewMockITranscriber(ctrl)
		ex := mock_interfaces.NewMockIEstimateExtractor(ctrl)
		uc := NewVoiceEstimateUseCase(store, tr, ex)

		_, err := uc.TranscribeAndParse(context.Background(), AudioUpload{Body: strings.NewReader("hello"), Filename: "a.txt", ContentType: "text/plain"})
		if !errors.Is(err, ErrUnsupportedAudioType) {
			t.Fatalf("expected ErrUnsupportedAudioType, got %v", err)
		}
	})

	t.Run("empty audio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIAudioStore(ctrl)
		uc := NewVoiceEstimateUseCase(store, mock_interfaces.NewMockITranscriber(ctrl), mock_interfaces.NewMockIEstimateExtractor(ctrl))

		store.EXPECT().Acquire(gomock.Any(), ".webm").Return("", nil, interfaces.ErrEmptyAudio)

		if _, err := uc.TranscribeAndParse(context.Background(), webmUpload("")); !errors.Is(err, ErrEmptyAudio) {
			t.Fatalf("expected ErrEmptyAudio, got %v", err)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIAudioStore(ctrl)
		uc := NewVoiceEstimateUseCase(store, mock_interfaces.NewMockITranscriber(ctrl), mock_interfaces.NewMockIEstimateExtractor(ctrl))

		store.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return("", nil, errors.New("disk full"))

		if _, err := uc.TranscribeAndParse(context.Background(), webmUpload("abc")); !errors.Is(err, ErrAudioStoreFailed) {
			t.Fatalf("expected ErrAudioStoreFailed, got %v", err)
		}
	})

	t.Run("success removes temp file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tr := mock_interfaces.NewMockITranscriber(ctrl)
		ex := mock_interfaces.NewMockIEstimateExtractor(ctrl)
		uc := NewVoiceEstimateUseCase(storage.NewTempAudioStore(t.TempDir()), tr, ex)

		var seen string
		tr.EXPECT().Transcribe(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, path string) (string, error) {
			seen = path
			b, err := os.ReadFile(path)
			if err != nil || string(b) != "OggS-audio" {
				t.Fatalf("temp file not readable during transcription: %q %v", b, err)
			}
			return "Jane Doe, paint wall, two at fifty", nil
		})
		ex.EXPECT().Extract(gomock.Any(), "Jane Doe, paint wall, two at fifty").Return(sampleModelJSON, nil)

		out, err := uc.TranscribeAndParse(context.Background(), webmUpload("OggS-audio"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.IsStructured() || string(out.Structured) != sampleModelJSON {
			t.Fatalf("unexpected structured output: %s", out.Structured)
		}
		if out.Transcript != "Jane Doe, paint wall, two at fifty" {
			t.Fatalf("unexpected transcript %q", out.Transcript)
		}
		if _, err := os.Stat(seen); !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("expected temp file %s to be removed, stat err=%v", seen, err)
		}
	})

	t.Run("transcriber failure removes temp file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tr := mock_interfaces.NewMockITranscriber(ctrl)
		ex := mock_interfaces.NewMockIEstimateExtractor(ctrl)
		uc := NewVoiceEstimateUseCase(storage.NewTempAudioStore(t.TempDir()), tr, ex)

		var seen string
		cause := errors.New("provider down")
		tr.EXPECT().Transcribe(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, path string) (string, error) {
			seen = path
			return "", cause
		})

		_, err := uc.TranscribeAndParse(context.Background(), webmUpload("OggS-audio"))
		if !errors.Is(err, ErrTranscriptionFailed) || !errors.Is(err, cause) {
			t.Fatalf("expected wrapped transcription error, got %v", err)
		}
		if _, err := os.Stat(seen); !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("expected temp file %s to be removed, stat err=%v", seen, err)
		}
	})

	t.Run("extractor failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tr := mock_interfaces.NewMockITranscriber(ctrl)
		ex := mock_interfaces.NewMockIEstimateExtractor(ctrl)
		uc := NewVoiceEstimateUseCase(storage.NewTempAudioStore(t.TempDir()), tr, ex)

		tr.EXPECT().Transcribe(gomock.Any(), gomock.Any()).Return("hello", nil)
		ex.EXPECT().Extract(gomock.Any(), "hello").Return("", context.DeadlineExceeded)

		_, err := uc.TranscribeAndParse(context.Background(), webmUpload("x"))
		if !errors.Is(err, ErrExtractionFailed) || !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected wrapped extraction error, got %v", err)
		}
	})

	t.Run("non json model output is returned raw", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tr := mock_interfaces.NewMockITranscriber(ctrl)
		ex := mock_interfaces.NewMockIEstimateExtractor(ctrl)
		uc := NewVoiceEstimateUseCase(storage.NewTempAudioStore(t.TempDir()), tr, ex)

		raw := "Sorry, I could not find an estimate in that.\n"
		tr.EXPECT().Transcribe(gomock.Any(), gomock.Any()).Return("mumble", nil)
		ex.EXPECT().Extract(gomock.Any(), "mumble").Return(raw, nil)

		out, err := uc.TranscribeAndParse(context.Background(), webmUpload("x"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.IsStructured() || out.Raw != raw {
			t.Fatalf("expected raw passthrough, got %+v", out)
		}
	})

	t.Run("fenced json is parsed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tr := mock_interfaces.NewMockITranscriber(ctrl)
		ex := mock_interfaces.NewMockIEstimateExtractor(ctrl)
		uc := NewVoiceEstimateUseCase(storage.NewTempAudioStore(t.TempDir()), tr, ex)

		tr.EXPECT().Transcribe(gomock.Any(), gomock.Any()).Return("", nil)
		ex.EXPECT().Extract(gomock.Any(), "").Return("```json\n{\"Client Name\": \"Bob\"}\n```", nil)

		out, err := uc.TranscribeAndParse(context.Background(), webmUpload("x"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(out.Structured) != `{"Client Name":"Bob"}` {
			t.Fatalf("unexpected structured output: %s", out.Structured)
		}
	})
}

func TestAudioMediaType(t *testing.T) {
	cases := map[string]struct {
		in   string
		want string
		ok   bool
	}{
		"webm with codec": {in: "audio/webm;codecs=opus", want: "audio/webm", ok: true},
		"mpeg":            {in: "audio/mpeg", want: "audio/mpeg", ok: true},
		"text":            {in: "text/plain", ok: false},
		"empty":           {in: "", ok: false},
		"video":           {in: "video/webm", ok: false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, ok := AudioMediaType(tc.in)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("AudioMediaType(%q) = %q, %v", tc.in, got, ok)
			}
		})
	}
}

func TestAudioExtension(t *testing.T) {
	if got := AudioExtension("memo.M4A", "audio/mp4"); got != ".m4a" {
		t.Fatalf("expected upload extension, got %s", got)
	}
	if got := AudioExtension("blob", "audio/mpeg"); got != ".mp3" {
		t.Fatalf("expected media type extension, got %s", got)
	}
	if got := AudioExtension("", "audio/unknown"); got != ".webm" {
		t.Fatalf("expected default extension, got %s", got)
	}
}
