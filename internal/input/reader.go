package input

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Reader turns a line-oriented stream into Commands. The read loop runs in
// its own goroutine; the frame loop drains Commands() between frames, so game
// state is only ever touched from the frame loop.
type Reader struct {
	src  io.Reader
	cmds chan Command
	done chan struct{}
	log  *zap.Logger
}

func NewReader(src io.Reader, queueSize int, log *zap.Logger) *Reader {
	if queueSize < 1 {
		queueSize = 1
	}
	return &Reader{
		src:  src,
		cmds: make(chan Command, queueSize),
		done: make(chan struct{}),
		log:  log,
	}
}

// Commands returns the channel of parsed commands.
func (r *Reader) Commands() <-chan Command { return r.cmds }

// Done is closed when the read loop exits.
func (r *Reader) Done() <-chan struct{} { return r.done }

// ReadLoop reads until EOF, a read error, or ctx cancellation. Blank lines
// and lines starting with '#' are skipped; unparseable lines are logged and
// dropped. When the queue is full the command is dropped rather than
// blocking the reader.
func (r *Reader) ReadLoop(ctx context.Context) {
	defer close(r.done)

	sc := bufio.NewScanner(r.src)
	for sc.Scan() {
		if ctx.Err() != nil {
			return
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cmd, err := Parse(line)
		if err != nil {
			r.log.Warn("ignoring input", zap.String("line", line), zap.Error(err))
			continue
		}
		select {
		case r.cmds <- cmd:
		case <-ctx.Done():
			return
		default:
			r.log.Warn("input queue full, dropping command", zap.Stringer("command", cmd))
		}
	}
	if err := sc.Err(); err != nil && !errors.Is(err, io.EOF) {
		r.log.Error("input read failed", zap.Error(err))
		return
	}
	r.log.Debug("input stream closed")
}
