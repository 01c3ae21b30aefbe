package main

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Options is the parsed command line.
type Options struct {
	Goroutines int
	Iterations int
	Scenarios  []string
	History    string
	JSON       bool
	Verbose    bool
	Help       bool
}

// errUsage marks command-line errors so main can exit with status 2.
var errUsage = errors.New("usage")

func parseOptions(args []string, stderr io.Writer) (Options, error) {
	opts := Options{}
	fs := pflag.NewFlagSet("bde-torture", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVarP(&opts.Goroutines, "goroutines", "g", 8, "concurrent goroutines per scenario")
	fs.IntVarP(&opts.Iterations, "iterations", "n", 100000, "operations per goroutine")
	fs.StringSliceVarP(&opts.Scenarios, "scenario", "s", []string{"all"},
		"scenario to run, repeatable: "+strings.Join(scenarioNames(), ", ")+", all")
	fs.StringVar(&opts.History, "history", "", "append results to this SQLite database")
	fs.BoolVar(&opts.JSON, "json", false, "print the run report as JSON on stdout")
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	fs.BoolVarP(&opts.Help, "help", "h", false, "print help")

	if err := fs.Parse(args); err != nil {
		return opts, errors.Wrap(errUsage, err.Error())
	}
	if opts.Help {
		fs.PrintDefaults()
		return opts, nil
	}
	if fs.NArg() != 0 {
		return opts, errors.Wrapf(errUsage, "unexpected arguments %v", fs.Args())
	}
	if opts.Goroutines < 1 {
		return opts, errors.Wrapf(errUsage, "--goroutines must be at least 1, got %d", opts.Goroutines)
	}
	if opts.Iterations < 1 {
		return opts, errors.Wrapf(errUsage, "--iterations must be at least 1, got %d", opts.Iterations)
	}

	selected, err := selectScenarios(opts.Scenarios)
	if err != nil {
		return opts, err
	}
	opts.Scenarios = selected
	return opts, nil
}

// selectScenarios expands "all" and rejects unknown names, keeping
// registry order and dropping duplicates.
func selectScenarios(names []string) ([]string, error) {
	want := map[string]bool{}
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "all" {
			for _, s := range scenarios {
				want[s.Name] = true
			}
			continue
		}
		if findScenario(n) == nil {
			return nil, errors.Wrapf(errUsage, "unknown scenario %q", n)
		}
		want[n] = true
	}
	out := make([]string, 0, len(want))
	for _, s := range scenarios {
		if want[s.Name] {
			out = append(out, s.Name)
		}
	}
	return out, nil
}
