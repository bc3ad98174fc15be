package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Log is the game's line-oriented audit log: timestamped lines in a
// per-boot file, optionally buffered, rolling to a numbered file when the
// line cap is reached.
type Log struct {
	mu sync.Mutex

	dir    string
	prefix string

	// maxLines caps a single file; 0 means unlimited. When the cap is hit
	// the log rolls to "<prefix><n>_..." with n starting at 2.
	maxLines   int
	bufferSize int

	file   *os.File
	buffer []string
	lines  int
	lognum int
}

type Option func(*Log)

// WithMaxLines caps each log file at n lines before rolling over.
func WithMaxLines(n int) Option {
	return func(l *Log) {
		l.maxLines = n
	}
}

// WithBuffer batches writes, flushing every size lines.
func WithBuffer(size int) Option {
	return func(l *Log) {
		l.bufferSize = size
	}
}

// NewLog opens a log file named "<prefix>_<date>_<time>.txt" in dir.
func NewLog(dir, prefix string, opts ...Option) (*Log, error) {
	if prefix == "" {
		prefix = "log"
	}

	l := &Log{
		dir:    dir,
		prefix: prefix,
		lognum: 1,
	}

	for _, opt := range opts {
		opt(l)
	}

	if l.maxLines < 0 {
		return nil, fmt.Errorf("max lines cannot be negative")
	}

	if err := l.open(l.prefix); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Log) open(prefix string) error {
	now := time.Now()
	name := fmt.Sprintf("%s_%s_%s.txt", prefix, now.Format("01-02-2006"), now.Format("15-04"))

	file, err := os.OpenFile(filepath.Join(l.dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	l.file = file
	l.lines = 0
	return nil
}

// Path returns the file currently being written.
func (l *Log) Path() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Name()
}

// Writeln appends one timestamped line.
func (l *Log) Writeln(message string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	line := fmt.Sprintf("%s %s", time.Now().Format("15:04:05"), message)

	if l.bufferSize > 0 {
		l.buffer = append(l.buffer, line)
		if len(l.buffer) >= l.bufferSize {
			if err := l.flushLocked(); err != nil {
				return err
			}
		}
	} else {
		if _, err := fmt.Fprintln(l.file, line); err != nil {
			return fmt.Errorf("writing log line: %w", err)
		}
	}

	l.lines++
	if l.maxLines > 0 && l.lines >= l.maxLines {
		return l.rotateLocked()
	}
	return nil
}

// WritePlayer appends a player-action line: who, where, what.
func (l *Log) WritePlayer(name string, location int, action string) error {
	return l.Writeln(fmt.Sprintf("(%s) {Location: #%d} %s", name, location, action))
}

// rotateLocked closes the full file and opens the next numbered one
// ("log2_...", "log3_...").
func (l *Log) rotateLocked() error {
	if err := l.closeLocked(); err != nil {
		return err
	}
	l.lognum++
	return l.open(fmt.Sprintf("%s%d", l.prefix, l.lognum))
}

func (l *Log) flushLocked() error {
	for _, line := range l.buffer {
		if _, err := fmt.Fprintln(l.file, line); err != nil {
			return fmt.Errorf("flushing log buffer: %w", err)
		}
	}
	l.buffer = l.buffer[:0]
	return nil
}

func (l *Log) closeLocked() error {
	if err := l.flushLocked(); err != nil {
		return err
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("closing log file: %w", err)
	}
	return nil
}

// Close flushes any buffered lines and closes the file.
func (l *Log) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closeLocked()
}
