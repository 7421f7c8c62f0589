package event

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/viant/afs"
)

// Transcript accumulates command events as JSON lines and stores them at an
// afs URL (local file, mem://, gs://, s3://).
type Transcript struct {
	fs     afs.Service
	URL    string
	mux    sync.Mutex
	buffer bytes.Buffer
	count  int
}

// Append adds an event to the transcript
func (t *Transcript) Append(event *Command) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	t.mux.Lock()
	defer t.mux.Unlock()
	t.buffer.Write(data)
	t.buffer.WriteByte('\n')
	t.count++
}

// Len returns number of recorded events
func (t *Transcript) Len() int {
	t.mux.Lock()
	defer t.mux.Unlock()
	return t.count
}

// Flush uploads the transcript
func (t *Transcript) Flush(ctx context.Context) error {
	t.mux.Lock()
	data := append([]byte(nil), t.buffer.Bytes()...)
	t.mux.Unlock()
	if err := t.fs.Upload(ctx, t.URL, 0o644, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to upload transcript %v: %w", t.URL, err)
	}
	return nil
}

// NewTranscript creates a transcript stored at URL
func NewTranscript(URL string) *Transcript {
	return &Transcript{fs: afs.New(), URL: URL}
}
