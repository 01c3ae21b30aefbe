// ════════════════════════════════════════════════════════════════════════════════════════════════
// bde-torture - Atomic Primitive Torture Harness
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: Command-line entry point
//
// Description:
//   Runs the selected contention scenarios against the atomic cells and the patterns built on
//   them, logs one line per scenario and optionally records the run.
//
// Phases:
//   - Phase 0: flag parsing, logger setup, signal handling
//   - Phase 1: scenarios in registry order, each timed and checked
//   - Phase 2: report (text log, optional JSON) and optional SQLite history
//
// Exit status: 0 all scenarios passed, 1 a scenario failed or the run was interrupted,
// 2 usage error.
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/parsa/bde/atomicx"
	"github.com/parsa/bde/control"
	"github.com/parsa/bde/debug"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func newLogger(out io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// run is main without the process exit, so tests can drive it.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		io.WriteString(stderr, err.Error()+"\n")
		return exitUsage
	}
	if opts.Help {
		return exitOK
	}

	log := newLogger(stderr, opts.Verbose)
	control.Reset()
	stopSignals := setupSignalHandling(log)
	defer stopSignals()

	var hist *history
	if opts.History != "" {
		if hist, err = openHistory(opts.History); err != nil {
			log.WithError(err).Error("history unavailable")
			return exitFail
		}
		defer hist.Close()
	}

	started := time.Now()
	report := newReport(started)
	log.WithFields(logrus.Fields{
		"goroutines":   opts.Goroutines,
		"iterations":   opts.Iterations,
		"scenarios":    opts.Scenarios,
		"lock_free_64": atomicx.LockFree64,
	}).Info("torture run starting")

	for _, name := range opts.Scenarios {
		res := runScenario(findScenario(name), opts.Goroutines, opts.Iterations)
		report.add(res)
		logResult(log, res, hist)
		if control.ShuttingDown() {
			break
		}
	}

	if hist != nil {
		if err := hist.Append(context.Background(), started, report.Results); err != nil {
			log.WithError(err).Error("history not recorded")
			report.Passed = false
		}
	}
	if opts.JSON {
		if err := report.writeJSON(stdout); err != nil {
			log.WithError(err).Error("report not written")
			return exitFail
		}
	}

	if !report.Passed {
		log.Warn("torture run failed")
		return exitFail
	}
	log.WithField("elapsed", time.Since(started)).Info("torture run passed")
	return exitOK
}

// runScenario times one scenario.  A panic inside a scenario is a failure
// of that scenario, not of the harness.
func runScenario(s *Scenario, g, n int) (res Result) {
	res = Result{Scenario: s.Name, Goroutines: g, Iterations: n}
	start := time.Now()
	defer func() {
		res.Elapsed = time.Since(start)
		if p := recover(); p != nil {
			res.Passed = false
			res.Detail = errors.Errorf("panic: %v", p).Error()
		}
	}()
	if err := s.Run(g, n); err != nil {
		res.Detail = err.Error()
		return res
	}
	res.Passed = true
	return res
}

func logResult(log *logrus.Logger, res Result, hist *history) {
	entry := log.WithFields(logrus.Fields{
		"scenario": res.Scenario,
		"elapsed":  res.Elapsed,
		"ops":      res.Goroutines * res.Iterations,
	})
	if hist != nil {
		if prev, ok, err := hist.Last(context.Background(), res.Scenario); err != nil {
			entry.WithError(err).Debug("no previous run")
		} else if ok {
			entry = entry.WithField("previous", prev.Elapsed)
		}
	}
	if !res.Passed {
		entry.WithField("detail", res.Detail).Error("scenario failed")
		return
	}
	entry.Info("scenario passed")
}

// setupSignalHandling turns SIGINT/SIGTERM into control.Shutdown.  The
// returned func detaches the handler.
func setupSignalHandling(log *logrus.Logger) func() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	quit := make(chan struct{})

	go func() {
		select {
		case sig := <-sigChan:
			debug.DropMessage("SIGNAL", sig.String()+" received, stopping scenarios")
			log.WithField("signal", sig.String()).Warn("interrupted")
			control.Shutdown()
		case <-quit:
		}
	}()
	return func() {
		signal.Stop(sigChan)
		close(quit)
	}
}
