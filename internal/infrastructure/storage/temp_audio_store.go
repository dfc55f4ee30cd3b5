package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"quickestimate/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// TempAudioStore keeps uploaded recordings on local disk for a single
// request. Files live in dir (os.TempDir when empty) and are removed by the
// release function returned from Acquire.
type TempAudioStore struct {
	dir string
}

var _ interfaces.IAudioStore = (*TempAudioStore)(nil)

func NewTempAudioStore(dir string) *TempAudioStore {
	return &TempAudioStore{dir: dir}
}

// Acquire copies r into a new temp file named with ext. On error nothing is
// left behind on disk.
func (s *TempAudioStore) Acquire(r io.Reader, ext string) (string, func(), error) {
	f, err := os.CreateTemp(s.dir, "estimate-audio-*"+ext)
	if err != nil {
		return "", nil, fmt.Errorf("create temp audio file: %w", err)
	}
	path := f.Name()

	n, copyErr := io.Copy(f, r)
	closeErr := f.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		removeQuietly(path)
		return "", nil, fmt.Errorf("write temp audio file: %w", err)
	}
	if n == 0 {
		removeQuietly(path)
		return "", nil, interfaces.ErrEmptyAudio
	}

	var once sync.Once
	release := func() {
		once.Do(func() { removeQuietly(path) })
	}
	return path, release, nil
}

func removeQuietly(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Str("component", "storage.temp_audio").Str("path", path).Msg("failed to remove temp audio file")
	}
}
