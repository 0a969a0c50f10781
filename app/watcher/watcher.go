// Package watcher runs the heartbeat loop and decides, per delivered signal,
// whether the process continues or exits.
package watcher

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"mrz.io/signaller/app/metrics"
	"mrz.io/signaller/app/output"
	"mrz.io/signaller/app/sigset"
)

// NotifyFunc registers a channel to receive the given signals. It exists so
// tests can feed signals without killing the test process; the default is
// signal.Notify.
type NotifyFunc func(c chan<- os.Signal, sig ...os.Signal)

// FatalSignalError is returned by Run when a signal outside the continue-on
// set was delivered. main maps it to exit status 1.
type FatalSignalError struct {
	Signal os.Signal
}

func (e *FatalSignalError) Error() string {
	return fmt.Sprintf("exiting on %s", sigset.Name(e.Signal))
}

type Watcher struct {
	continueOn sigset.Set
	sink       *output.Sink
	interval   time.Duration

	notify NotifyFunc
}

func New(continueOn sigset.Set, sink *output.Sink, interval time.Duration) *Watcher {
	return &Watcher{
		continueOn: continueOn,
		sink:       sink,
		interval:   interval,
		notify:     signal.Notify,
	}
}

// Run announces the pid and then loops: one heartbeat line, then one interval
// of waiting, during which delivered signals are handled in order. It returns
// a *FatalSignalError when a non-continue signal arrives, the first sink
// error if writing fails, or nil when ctx is canceled.
//
// Handlers are registered for exactly the signals in sigset.Fatal; anything
// else keeps its default disposition.
func (w *Watcher) Run(ctx context.Context) error {
	sigCh := make(chan os.Signal, len(sigset.Fatal))
	w.notify(sigCh, sigset.Fatal...)

	if err := w.sink.Printf("my pid is %d", os.Getpid()); err != nil {
		return err
	}

	for {
		if err := w.heartbeat(); err != nil {
			return err
		}

		timer := time.NewTimer(w.interval)

		for waiting := true; waiting; {
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil
			case sig := <-sigCh:
				if err := w.caught(sig); err != nil {
					timer.Stop()
					return err
				}
				// a continue-on signal resumes the remaining wait
			case <-timer.C:
				waiting = false
			}
		}
	}
}

func (w *Watcher) heartbeat() error {
	if err := w.sink.Printf("tick %s", time.Now().Format(time.RFC3339Nano)); err != nil {
		return err
	}

	metrics.CountHeartbeat()

	return nil
}

func (w *Watcher) caught(sig os.Signal) error {
	name := sigset.Name(sig)

	err := w.sink.Printf("caught signal %s (%d) at %s",
		name, sigset.Num(sig), time.Now().Format(time.RFC3339Nano))
	if err != nil {
		return err
	}

	metrics.CountSignal(name)

	if w.continueOn.Has(sig) {
		return nil
	}

	if err := w.sink.Printf("exiting on %s", name); err != nil {
		return err
	}

	return &FatalSignalError{Signal: sig}
}
