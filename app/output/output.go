package output

import (
	"bytes"
	"fmt"
	"io"
)

// WithPrefix wraps w so that every line written through it starts with prefix.
func WithPrefix(w io.Writer, prefix string) io.Writer {
	return &prefixer{w: w, prefix: prefix, writePrefix: true}
}

type prefixer struct {
	w           io.Writer
	prefix      string
	writePrefix bool
}

func (p *prefixer) Write(data []byte) (n int, err error) {
	buf := bytes.NewBuffer(nil)

	for _, b := range data {
		if p.writePrefix {
			buf.WriteString(p.prefix)
			p.writePrefix = false
		}

		buf.WriteByte(b)

		if b == '\n' {
			p.writePrefix = true
		}
	}

	if _, err := p.w.Write(buf.Bytes()); err != nil {
		return 0, err
	}

	return len(data), nil
}

// Syncable is a destination whose writes can be forced out to storage.
// *os.File satisfies it.
type Syncable interface {
	io.Writer
	Sync() error
}

type synced struct {
	Syncable
}

// Synced marks w as a destination that must be synced after every write, so
// its lines survive an imminent process termination. Use it for the log file
// only: syncing stderr fails with EINVAL whenever stderr is a pipe, a socket
// or /dev/null.
func Synced(w Syncable) io.Writer {
	return synced{w}
}

// Sink writes identical prefixed lines to every destination. Only
// destinations marked with Synced are synced after each write.
type Sink struct {
	prefixed []io.Writer
	raw      []io.Writer
}

// NewSink wraps each destination with the line prefix and returns a Sink
// fanning out to all of them. The destinations stay owned by the caller;
// closing any of them is not the Sink's business.
func NewSink(prefix string, dsts ...io.Writer) *Sink {
	s := &Sink{raw: dsts}

	for _, dst := range dsts {
		s.prefixed = append(s.prefixed, WithPrefix(dst, prefix))
	}

	return s
}

// Printf writes a single newline-terminated line to every destination,
// syncing marked ones before moving to the next. The first write or sync
// failure is returned and leaves later destinations untouched.
func (s *Sink) Printf(format string, args ...interface{}) error {
	line := fmt.Sprintf(format, args...) + "\n"

	for i, dst := range s.prefixed {
		if _, err := io.WriteString(dst, line); err != nil {
			return fmt.Errorf("sink: %w", err)
		}

		if sy, ok := s.raw[i].(synced); ok {
			if err := sy.Sync(); err != nil {
				return fmt.Errorf("sink: %w", err)
			}
		}
	}

	return nil
}
