package nativelog

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EnvLogDir          = "BLOG_LOG_DIR"
	defaultLogFilePerm = 0o644
	defaultLogDirPerm  = 0o755
)

// ResolveDir picks the log directory: BLOG_LOG_DIR, then configured, then the first existing candidate.
func ResolveDir(configured string) string {
	if dir := strings.TrimSpace(os.Getenv(EnvLogDir)); dir != "" {
		return dir
	}
	if dir := strings.TrimSpace(configured); dir != "" {
		return dir
	}

	candidates := make([]string, 0, 3)
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		candidates = append(candidates, filepath.Join(home, ".blog", "log"))
	}
	candidates = append(candidates, filepath.Join(".", "logs"))
	candidates = append(candidates, filepath.Join(".", "tmp", "log"))

	for _, dir := range candidates {
		info, err := os.Stat(dir)
		if err == nil && info.IsDir() {
			return dir
		}
	}
	return filepath.Join(".", "logs")
}

// TodayFilename returns daily native log filename.
func TodayFilename(now time.Time) string {
	return "stdout_" + now.Format("1-2-06") + ".log"
}

// Writer appends log lines to the daily file in its directory.
type Writer struct {
	mu  sync.Mutex
	dir string
	now func() time.Time
}

// NewWriter creates dir if needed and returns a writer for it.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, defaultLogDirPerm); err != nil {
		return nil, err
	}
	return &Writer{dir: dir, now: time.Now}, nil
}

func (w *Writer) Dir() string { return w.dir }

func (w *Writer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	path := filepath.Join(w.dir, TodayFilename(w.now()))
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, defaultLogFilePerm)
	if err != nil {
		return 0, err
	}

	n, writeErr := file.Write(p)
	closeErr := file.Close()
	if writeErr != nil {
		return n, writeErr
	}
	return n, closeErr
}

func (w *Writer) Sync() error {
	return nil
}

// Options tunes NewZapLogger.
type Options struct {
	Dir   string
	Debug bool
	// Quiet drops the stdout copy, leaving only the file.
	Quiet bool
}

// NewZapLogger creates a zap logger writing to stdout and the daily log file.
func NewZapLogger(opts Options) (*zap.Logger, error) {
	writer, err := NewWriter(ResolveDir(opts.Dir))
	if err != nil {
		return nil, err
	}

	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if opts.Debug {
		level.SetLevel(zap.DebugLevel)
	}
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	cores := []zapcore.Core{zapcore.NewCore(encoder, zapcore.AddSync(writer), level)}
	if !opts.Quiet {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	_ = zap.RedirectStdLog(logger)
	return logger, nil
}
