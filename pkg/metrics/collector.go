package metrics

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"
)

// Collector implements HarnessMetrics with in-memory counters.
// It renders them on demand in the Prometheus text exposition
// format; integration with a scraping stack is done by the
// host application serving WritePrometheus over HTTP.
//
// Collector is safe for concurrent use: the monitor server
// reads it while the run loop writes.
type Collector struct {
	mu        sync.Mutex
	suites    map[string]int
	cases     map[string]int
	durations map[string]time.Duration
	runTotal  int
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{
		suites:    make(map[string]int),
		cases:     make(map[string]int),
		durations: make(map[string]time.Duration),
	}
}

func statusLabel(ok bool) string {
	if ok {
		return "passed"
	}
	return "failed"
}

// RecordSuite records a completed suite run.
func (c *Collector) RecordSuite(
	name string, success bool, duration time.Duration,
) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.suites[name+":"+statusLabel(success)]++
	c.durations[name] += duration
}

// RecordCase records a single case outcome.
func (c *Collector) RecordCase(
	suiteName string, passed bool,
) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cases[suiteName+":"+statusLabel(passed)]++
}

// IncRunTotal increments the total run counter.
func (c *Collector) IncRunTotal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.runTotal++
}

// SuiteCount returns the count for a suite+status combination.
func (c *Collector) SuiteCount(
	name string, success bool,
) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.suites[name+":"+statusLabel(success)]
}

// CaseCount returns the count for a suite+status combination.
func (c *Collector) CaseCount(
	suiteName string, passed bool,
) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cases[suiteName+":"+statusLabel(passed)]
}

// RunTotal returns the total number of runs.
func (c *Collector) RunTotal() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.runTotal
}

// WritePrometheus renders the counters in the Prometheus text
// exposition format, with stable ordering.
func (c *Collector) WritePrometheus(w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := fmt.Fprintf(
		w,
		"# TYPE lighttest_runs_total counter\n"+
			"lighttest_runs_total %d\n",
		c.runTotal,
	); err != nil {
		return err
	}

	if err := writeLabelled(
		w, "lighttest_suites_total", c.suites,
	); err != nil {
		return err
	}
	if err := writeLabelled(
		w, "lighttest_cases_total", c.cases,
	); err != nil {
		return err
	}

	keys := sortedKeys(c.durations)
	if len(keys) > 0 {
		if _, err := fmt.Fprintf(
			w,
			"# TYPE lighttest_suite_duration_seconds counter\n",
		); err != nil {
			return err
		}
		for _, k := range keys {
			if _, err := fmt.Fprintf(
				w,
				"lighttest_suite_duration_seconds"+
					"{suite=%q} %g\n",
				k, c.durations[k].Seconds(),
			); err != nil {
				return err
			}
		}
	}

	return nil
}

// writeLabelled emits one counter family keyed as
// "name:status".
func writeLabelled(
	w io.Writer,
	metric string,
	counts map[string]int,
) error {
	if len(counts) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(
		w, "# TYPE %s counter\n", metric,
	); err != nil {
		return err
	}

	for _, key := range sortedKeys(counts) {
		name, status := splitKey(key)
		if _, err := fmt.Fprintf(
			w, "%s{suite=%q,status=%q} %d\n",
			metric, name, status, counts[key],
		); err != nil {
			return err
		}
	}
	return nil
}

func splitKey(key string) (name, status string) {
	for i := len(key) - 1; i >= 0; i-- {
		if key[i] == ':' {
			return key[:i], key[i+1:]
		}
	}
	return key, ""
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
