package main

import (
	"io"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/sugawarayuuta/sonnet"

	"github.com/parsa/bde/atomicx"
)

// Result is the outcome of one scenario run.
type Result struct {
	Scenario   string        `json:"scenario"`
	Goroutines int           `json:"goroutines"`
	Iterations int           `json:"iterations"`
	Elapsed    time.Duration `json:"elapsed_ns"`
	Passed     bool          `json:"passed"`
	Detail     string        `json:"detail,omitempty"`
}

// Report is the whole run, as printed with --json.
type Report struct {
	Started    time.Time `json:"started"`
	GOOS       string    `json:"goos"`
	GOARCH     string    `json:"goarch"`
	LockFree64 bool      `json:"lock_free_64"`
	Orders     []string  `json:"test_and_swap_orders"`
	Results    []Result  `json:"results"`
	Passed     bool      `json:"passed"`
}

func newReport(started time.Time) *Report {
	orders := atomicx.Orders(atomicx.OpTestAndSwap)
	names := make([]string, len(orders))
	for i, o := range orders {
		names[i] = o.String()
	}
	return &Report{
		Started:    started,
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		LockFree64: atomicx.LockFree64,
		Orders:     names,
		Passed:     true,
	}
}

func (r *Report) add(res Result) {
	r.Results = append(r.Results, res)
	r.Passed = r.Passed && res.Passed
}

func (r *Report) writeJSON(w io.Writer) error {
	b, err := sonnet.Marshal(r)
	if err != nil {
		return errors.Wrap(err, "encode report")
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return errors.Wrap(err, "write report")
}
