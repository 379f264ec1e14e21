package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"
	"hdkeytree/fileoperator"
	"hdkeytree/key"
)

const (
	logFilename    = "hdkey.log"
	maxLogFileSize = 10 * 1024
	maxLogFiles    = 3
)

// logWriter writes to stderr, keeping stdout for command output, and to the
// log rotator once it is set up.
type logWriter struct {
	rotatorPipe *io.PipeWriter
}

func (w *logWriter) Write(b []byte) (int, error) {
	os.Stderr.Write(b)
	if w.rotatorPipe != nil {
		w.rotatorPipe.Write(b)
	}
	return len(b), nil
}

// Loggers per subsystem. All of them write to backendLog.
var (
	writer = &logWriter{}

	backendLog = btclog.NewBackend(writer)

	// logRotator is nil unless a log directory was configured.
	logRotator *rotator.Rotator

	hdkyLog = backendLog.Logger("HDKY")
	keysLog = backendLog.Logger("KEYS")
	foprLog = backendLog.Logger("FOPR")
)

func init() {
	key.UseLogger(keysLog)
	fileoperator.UseLogger(foprLog)
}

var subsystemLoggers = map[string]btclog.Logger{
	"HDKY": hdkyLog,
	"KEYS": keysLog,
	"FOPR": foprLog,
}

// initLogRotator starts writing logs to logFile, rolling files in the same
// directory.
func initLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	r, err := rotator.New(logFile, maxLogFileSize, false, maxLogFiles)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %w", err)
	}

	pr, pw := io.Pipe()
	go func() {
		if err := r.Run(pr); err != nil {
			_, _ = fmt.Fprintf(os.Stderr,
				"failed to run file rotator: %v\n", err)
		}
	}()

	writer.rotatorPipe = pw
	logRotator = r

	return nil
}

// closeLogRotator flushes and closes the log file, if any.
func closeLogRotator() {
	if logRotator == nil {
		return
	}
	_ = writer.rotatorPipe.Close()
	_ = logRotator.Close()
}

// setLogLevels sets every subsystem to logLevel.
func setLogLevels(logLevel string) error {
	level, ok := btclog.LevelFromString(logLevel)
	if !ok {
		return fmt.Errorf("invalid debug level %q", logLevel)
	}

	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
	return nil
}
