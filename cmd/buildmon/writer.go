package main

import (
	"os"

	"golang.org/x/term"

	"buildmon/internal/config"
	"buildmon/internal/logging"
	"buildmon/internal/sink"
)

// newWriters sets up the snapshot writer chain based on flags and env vars.
// It returns the writer and a cleanup function to close any resources.
func newWriters(cfg *config.MonitorConfig, printOnly, useColor, useTUI bool, logFile string) (sink.SnapshotWriter, func(), error) {
	cleanup := func() {}

	writer, closer, err := baseWriter(cfg, printOnly, useColor, useTUI)
	if err != nil {
		return nil, nil, err
	}
	if closer != nil {
		cleanup = closer
	}
	if logFile == "" {
		return writer, cleanup, nil
	}

	fw, err := sink.NewFileWriter(logFile, logFile+".alerts", logFile+".stats")
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	mw := sink.NewMultiWriter(writer, fw)
	prev := cleanup
	cleanup = func() {
		fw.Close()
		prev()
	}
	return mw, cleanup, nil
}

// baseWriter chooses the underlying writer based on flags and env vars.
func baseWriter(cfg *config.MonitorConfig, printOnly, useColor, useTUI bool) (sink.SnapshotWriter, func(), error) {
	if useTUI && term.IsTerminal(int(os.Stdout.Fd())) {
		tw := sink.NewTUIWriter(cfg)
		return tw, func() { tw.Close() }, nil
	}
	if printOnly || os.Getenv("GREPTIMEDB_ENDPOINT") == "" {
		if useColor {
			return sink.NewColorWriter(cfg), nil, nil
		}
		return sink.NewStdoutWriter(), nil, nil
	}

	endpoint := os.Getenv("GREPTIMEDB_ENDPOINT")
	database := os.Getenv("GREPTIMEDB_DATABASE")
	if database == "" {
		database = "public"
	}
	w, err := sink.NewGreptimeWriter(endpoint, database, logging.New())
	if err != nil {
		return nil, nil, err
	}
	return w, nil, nil
}

// newSnapshotWriter creates a writer without any log file export.
func newSnapshotWriter(cfg *config.MonitorConfig, printOnly bool) (sink.SnapshotWriter, error) {
	w, _, err := newWriters(cfg, printOnly, false, false, "")
	return w, err
}
