package breeze

import (
	"errors"
	"io"

	"github.com/mattn/go-localereader"
	"github.com/muesli/cancelreader"
)

// inputSource reads raw terminal bytes and normalises them into messages,
// delivered strictly FIFO onto a bounded channel. It is the runtime's C3
// component: the only thing it owns is the read loop and its own
// cancellable reader; terminal mode changes are the renderer's job.
type inputSource struct {
	reader cancelreader.CancelReader
	out    chan<- Msg
	done   chan struct{}
	trace  bool
}

// newInputSource wraps r (typically stdin) in a locale-aware, cancellable
// reader and prepares to decode it into messages delivered on out.
func newInputSource(r io.Reader, out chan<- Msg) (*inputSource, error) {
	localeAware := localereader.NewReader(r)
	cr, err := cancelreader.NewReader(localeAware)
	if err != nil {
		return nil, err
	}
	return &inputSource{
		reader: cr,
		out:    out,
		done:   make(chan struct{}),
	}, nil
}

// run reads and decodes input until the reader is cancelled or returns a
// permanent error. It blocks the caller; run it in its own goroutine.
// run never drops a decoded message: if the consumer can't keep up, the
// producer blocks on the channel send rather than discarding input.
func (s *inputSource) run() error {
	defer close(s.done)

	var buf [256]byte
	var pending []byte
	var pasting bool
	var pasteBuf []rune

	for {
		n, err := s.reader.Read(buf[:])
		if n > 0 {
			pending = append(pending, buf[:n]...)
		}
		if err != nil {
			if errors.Is(err, cancelreader.ErrCanceled) {
				return nil
			}
			return err
		}

		for len(pending) > 0 {
			consumed, msg := decodeSequence(pending)
			if consumed == 0 {
				break
			}
			pending = pending[consumed:]

			if pasting {
				if Is[pasteEndMsg](msg) {
					pasting = false
					s.out <- NewMsg(KeyMsg{Type: KeyRunes, Runes: pasteBuf, Paste: true})
					pasteBuf = nil
					continue
				}
				if k, ok := As[KeyMsg](msg); ok && k.Type == KeyRunes {
					pasteBuf = append(pasteBuf, k.Runes...)
				}
				continue
			}

			if Is[pasteStartMsg](msg) {
				pasting = true
				pasteBuf = pasteBuf[:0]
				continue
			}
			if Is[pasteEndMsg](msg) {
				// Stray end marker with no matching start; ignore.
				continue
			}

			s.out <- msg
		}
	}
}

// cancel asks the read loop to stop. It returns once cancellation has been
// requested; run's goroutine unblocks within the underlying reader's
// cancellation budget, which is bounded by cancelreader's implementation.
func (s *inputSource) cancel() bool {
	return s.reader.Cancel()
}

// close releases the underlying reader.
func (s *inputSource) close() error {
	return s.reader.Close()
}
