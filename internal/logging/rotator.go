package logging

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// backupTimeFormat suffixes rotated files; it sorts lexically in time order.
const backupTimeFormat = "2006-01-02T15-04-05.000000"

// RotateOptions bounds a log file and its backups. Zero values disable a bound.
type RotateOptions struct {
	MaxSize    int64 // bytes
	MaxBackups int
	MaxAge     time.Duration
	Compress   bool
}

func (fc FileConfig) rotateOptions() RotateOptions {
	return RotateOptions{
		MaxSize:    int64(fc.MaxSizeMB) << 20,
		MaxBackups: fc.MaxBackups,
		MaxAge:     time.Duration(fc.MaxAgeDays) * 24 * time.Hour,
		Compress:   fc.Compress,
	}
}

// LogRotator is an io.Writer over path that moves the file aside once it
// would exceed MaxSize, then prunes old backups.
type LogRotator struct {
	mu   sync.Mutex
	path string
	opts RotateOptions
	file *os.File
	size int64
}

// NewLogRotator opens path for appending.
func NewLogRotator(path string, opts RotateOptions) (*LogRotator, error) {
	r := &LogRotator{path: path, opts: opts}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *LogRotator) open() error {
	file, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}
	r.file, r.size = file, info.Size()
	return nil
}

func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.opts.MaxSize > 0 && r.size > 0 && r.size+int64(len(p)) > r.opts.MaxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

// rotate must be called with mu held.
func (r *LogRotator) rotate() error {
	if err := r.file.Close(); err != nil {
		warnf("failed to close log file: %v", err)
	}
	r.file = nil

	backup := r.path + "." + time.Now().Format(backupTimeFormat)
	if err := os.Rename(r.path, backup); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}
	if r.opts.Compress {
		if err := gzipFile(backup); err != nil {
			warnf("failed to compress %s: %v", backup, err)
		}
	}

	r.prune(time.Now())
	return r.open()
}

// prune removes backups past MaxAge, then all but the newest MaxBackups.
func (r *LogRotator) prune(now time.Time) {
	dir, base := filepath.Split(r.path)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	type backup struct {
		name    string
		modTime time.Time
	}
	var backups []backup
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), base+".") {
			continue
		}
		if info, err := e.Info(); err == nil {
			backups = append(backups, backup{name: e.Name(), modTime: info.ModTime()})
		}
	}
	sort.Slice(backups, func(i, j int) bool { return backups[i].modTime.After(backups[j].modTime) })

	for i, b := range backups {
		expired := r.opts.MaxAge > 0 && now.Sub(b.modTime) > r.opts.MaxAge
		excess := r.opts.MaxBackups > 0 && i >= r.opts.MaxBackups
		if !expired && !excess {
			continue
		}
		if err := os.Remove(filepath.Join(dir, b.name)); err != nil {
			warnf("failed to remove log backup: %v", err)
		}
	}
}

// Close closes the current file. A later Write reopens it.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// gzipFile replaces path with path.gz.
func gzipFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, in.Close()) }()

	out, err := os.OpenFile(path+".gz", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	zw := gzip.NewWriter(out)
	if _, err := io.Copy(zw, in); err != nil {
		_ = zw.Close()
		_ = out.Close()
		_ = os.Remove(path + ".gz")
		return err
	}
	if err := errors.Join(zw.Close(), out.Close()); err != nil {
		return err
	}
	return os.Remove(path)
}

// warnf reports rotation problems on stderr, which never carries the host protocol.
func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "palette: "+format+"\n", args...)
}
