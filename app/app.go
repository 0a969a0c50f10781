package app

import (
	"context"
	"io"
	"os"

	"mrz.io/signaller/app/config"
	"mrz.io/signaller/app/metrics"
	"mrz.io/signaller/app/output"
	"mrz.io/signaller/app/sigset"
	"mrz.io/signaller/app/watcher"
)

var Version = "v0.1.0"

const (
	Name   = "signaller"
	prefix = Name + ": "
)

// Run wires the whole watcher together: optional config, continue-on set,
// the two log sinks, the optional metrics endpoint, and the heartbeat loop.
// args are the raw positional arguments (signal names).
//
// The continue-on set is resolved before the log file is touched, so an
// unknown signal name aborts without ever creating or truncating the file.
func Run(ctx context.Context, stderr io.Writer, args []string) error {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		return err
	}

	tokens := args
	if len(tokens) == 0 {
		tokens = cfg.ContinueOn
	}

	continueOn, err := sigset.Parse(tokens)
	if err != nil {
		return err
	}

	logFile, err := os.Create(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	sink := output.NewSink(prefix, stderr, output.Synced(logFile))

	if err := sink.Printf("continue on signals: %s", continueOn); err != nil {
		return err
	}

	if cfg.Metric.Address != "" {
		metricsServer, err := metrics.NewServer(cfg.Metric.Address)
		if err != nil {
			return err
		}

		defer func() {
			if err := metricsServer.Stop(); err != nil {
				_ = sink.Printf("metrics: %s", err)
			}
		}()
	}

	return watcher.New(continueOn, sink, cfg.HeartbeatInterval()).Run(ctx)
}
