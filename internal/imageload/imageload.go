// Package imageload decodes the globe texture off the render thread and hands
// the result over exactly once.
package imageload

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"sync"

	"globe/internal/graphics"

	"github.com/h2non/filetype"
	"github.com/mitchellh/go-homedir"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrNotImage is returned for files whose content is not a known image format.
var ErrNotImage = errors.New("not an image")

// Loader decodes one image in the background. Poll returns it at most once.
type Loader struct {
	maxSize int

	ready chan *image.RGBA
	done  chan struct{}

	mu  sync.Mutex
	err error
}

// NewLoader creates a loader that scales images down to maxSize on their
// longest side (0 keeps the original size).
func NewLoader(maxSize int) *Loader {
	return &Loader{
		maxSize: maxSize,
		ready:   make(chan *image.RGBA, 1),
		done:    make(chan struct{}),
	}
}

// Load starts decoding path on a new goroutine. It must be called once.
func (l *Loader) Load(path string) {
	go func() {
		defer close(l.done)
		img, err := Decode(path, l.maxSize)
		if err != nil {
			l.mu.Lock()
			l.err = err
			l.mu.Unlock()
			log.Printf("texture %s: %v", path, err)
			return
		}
		l.ready <- img
	}()
}

// Poll returns the decoded image if it is ready. It never blocks.
func (l *Loader) Poll() (*image.RGBA, bool) {
	select {
	case img := <-l.ready:
		return img, true
	default:
		return nil, false
	}
}

// Wait blocks until decoding has finished and reports its error.
func (l *Loader) Wait() error {
	<-l.done
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Decode reads path (with ~ expanded), checks the content is an image and
// converts it to RGBA.
func Decode(path string, maxSize int) (*image.RGBA, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand path: %w", err)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %w", err)
	}

	if !filetype.IsImage(data) {
		return nil, ErrNotImage
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	rgba := graphics.ToRGBA(img, maxSize)
	log.Printf("decoded %s texture %s (%dx%d)", format, expanded, rgba.Rect.Dx(), rgba.Rect.Dy())
	return rgba, nil
}
