package suite

// Suite is a named, ordered collection of cases executed
// together and aggregated into one Report. A Suite owns its
// cases exclusively. It is not safe for concurrent use; adding
// cases after a run has started is the caller's mistake.
type Suite struct {
	name        string
	description string
	cases       []*Case
}

// New creates an empty Suite.
func New(name, description string) *Suite {
	return &Suite{
		name:        name,
		description: description,
	}
}

// Name returns the suite name.
func (s *Suite) Name() string { return s.name }

// Description returns the suite description.
func (s *Suite) Description() string {
	return s.description
}

// Len returns the number of registered cases.
func (s *Suite) Len() int { return len(s.cases) }

// AddCase appends a case. Registration order is execution and
// report order. Duplicate names are permitted.
func (s *Suite) AddCase(c *Case) {
	s.cases = append(s.cases, c)
}

// Add is shorthand for AddCase(NewCase(...)).
func (s *Suite) Add(
	name, description string,
	check func() bool,
) {
	s.AddCase(NewCase(name, description, check))
}

// Run executes every case in registration order and aggregates
// the outcomes. Execution never short-circuits: all cases run
// regardless of earlier failures. An empty suite yields a
// successful report with zero counts.
func (s *Suite) Run() *Report {
	return s.RunWith(nil)
}

// RunWith behaves like Run and additionally invokes onCase
// after each outcome is recorded. A nil onCase is ignored.
func (s *Suite) RunWith(
	onCase func(CaseOutcome),
) *Report {
	report := &Report{
		SuiteName:        s.name,
		SuiteDescription: s.description,
		Cases:            make([]CaseOutcome, 0, len(s.cases)),
	}

	for _, c := range s.cases {
		outcome := CaseOutcome{
			Name:        c.Name(),
			Description: c.Description(),
		}

		passed, err := c.Run()
		if err != nil {
			outcome.Passed = false
			outcome.Error = err.Error()
		} else {
			outcome.Passed = passed
		}

		report.Cases = append(report.Cases, outcome)
		report.Total++
		if outcome.Passed {
			report.Passed++
		} else {
			report.Failed++
		}

		if onCase != nil {
			onCase(outcome)
		}
	}

	report.Success = report.Failed == 0
	return report
}
