// Package audit runs the classifier over a command list and reduces
// the results into a worst-status report.
package audit

import (
	"sync"

	"github.com/cmdshadow/cmdshadow/internal/classify"
	"github.com/cmdshadow/cmdshadow/internal/facts"
)

// Report is the outcome of one audit group. Results holds exactly one
// entry per input command, in input order, so consecutive runs diff
// cleanly. Worst is the numeric maximum status over the sequence;
// strict callers decide pass/fail from it without rescanning.
type Report struct {
	Group   string
	Results []classify.Result
	Worst   classify.Status
}

// Runner audits command lists against one immutable fact provider and
// whitelist. Workers bounds concurrent fact lookups; zero or one means
// serial.
type Runner struct {
	Provider  facts.Provider
	Whitelist classify.Whitelist
	Workers   int
}

// Run classifies every command exactly once. A failed lookup degrades
// that single command to unknown and the run continues: the report is
// always complete over every requested name, even under partial
// environmental failure. Lookups may be scheduled concurrently, but
// results land at their input index, so output order is input order.
func (r *Runner) Run(group string, commands []string) Report {
	results := make([]classify.Result, len(commands))

	if r.Workers > 1 && len(commands) > 1 {
		r.runParallel(commands, results)
	} else {
		for i, name := range commands {
			results[i] = r.classifyOne(name)
		}
	}

	worst := classify.StatusBuiltin
	for _, res := range results {
		if res.Status > worst {
			worst = res.Status
		}
	}
	return Report{Group: group, Results: results, Worst: worst}
}

func (r *Runner) runParallel(commands []string, results []classify.Result) {
	sem := make(chan struct{}, r.Workers)
	var wg sync.WaitGroup
	for i, name := range commands {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, name string) {
			defer wg.Done()
			results[i] = r.classifyOne(name)
			<-sem
		}(i, name)
	}
	wg.Wait()
}

func (r *Runner) classifyOne(name string) classify.Result {
	f, err := r.Provider.Lookup(name)
	if err != nil {
		f = facts.CommandFacts{}
	}
	return classify.Classify(name, f, r.Whitelist)
}
