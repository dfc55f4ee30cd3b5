package interfaces

import (
	"errors"
	"io"
)

// ErrEmptyAudio is returned by IAudioStore.Acquire when the reader yields no bytes.
var ErrEmptyAudio = errors.New("audio upload is empty")

// IAudioStore holds an uploaded recording for the duration of one request.
//
// release deletes the stored file and is safe to call more than once.
type IAudioStore interface {
	Acquire(r io.Reader, ext string) (path string, release func(), err error)
}
