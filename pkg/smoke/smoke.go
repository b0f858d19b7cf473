// Package smoke provides the harness's built-in self-check
// suites. They exercise the observable cell and the suite
// machinery through their public APIs and double as living
// documentation of the contracts.
package smoke

import (
	"digital.vasic.lighttest/pkg/observable"
	"digital.vasic.lighttest/pkg/suite"
)

// ObservableSuite checks the observable cell contract:
// suppression, ordering, containment.
func ObservableSuite() *suite.Suite {
	s := suite.New(
		"ObservableCell",
		"change notification and suppression behaviour",
	)

	s.Add(
		"initial_value",
		"Get returns the construction value",
		func() bool {
			cell := observable.New(10)
			return cell.Get() == 10
		},
	)

	s.Add(
		"get_never_notifies",
		"Get triggers no subscriber calls",
		func() bool {
			cell := observable.New(10)
			calls := 0
			cell.Subscribe(func(int) { calls++ })
			_ = cell.Get()
			_ = cell.Get()
			return calls == 0
		},
	)

	s.Add(
		"set_notifies_each_subscriber_once",
		"a change invokes every subscriber with the new value",
		func() bool {
			cell := observable.New(10)
			var a, b int
			cell.Subscribe(func(v int) { a = v })
			cell.Subscribe(func(v int) { b = v })
			cell.Set(20)
			return a == 20 && b == 20
		},
	)

	s.Add(
		"equal_set_suppressed",
		"setting the current value notifies nobody",
		func() bool {
			cell := observable.New(10)
			calls := 0
			cell.Subscribe(func(int) { calls++ })
			cell.Set(20)
			cell.Set(20)
			return calls == 1
		},
	)

	s.Add(
		"subscriber_order",
		"subscribers run in registration order",
		func() bool {
			cell := observable.New(0)
			var order []int
			cell.Subscribe(func(int) {
				order = append(order, 1)
			})
			cell.Subscribe(func(int) {
				order = append(order, 2)
			})
			cell.Set(1)
			return len(order) == 2 &&
				order[0] == 1 && order[1] == 2
		},
	)

	s.Add(
		"panicking_subscriber_contained",
		"a failing subscriber does not block the rest",
		func() bool {
			cell := observable.New(0)
			reached := false
			cell.Subscribe(func(int) { panic("bad") })
			cell.Subscribe(func(int) { reached = true })
			cell.Set(1)
			return reached && cell.Get() == 1
		},
	)

	s.Add(
		"always_notify_without_policy",
		"nil equality policy treats every set as a change",
		func() bool {
			cell := observable.NewWithEqual([]int{1}, nil)
			calls := 0
			cell.Subscribe(func([]int) { calls++ })
			cell.Set([]int{1})
			cell.Set([]int{1})
			return calls == 2
		},
	)

	return s
}

// HarnessSuite checks the suite machinery itself: aggregation,
// ordering, containment, empty-suite semantics.
func HarnessSuite() *suite.Suite {
	s := suite.New(
		"Harness",
		"suite execution and report aggregation",
	)

	s.Add(
		"mixed_outcomes_aggregate",
		"true/false/true yields 2 passed, 1 failed",
		func() bool {
			inner := suite.New("inner", "")
			inner.Add("a", "", func() bool { return true })
			inner.Add("b", "", func() bool { return false })
			inner.Add("c", "", func() bool { return true })
			rep := inner.Run()
			return rep.Total == 3 &&
				rep.Passed == 2 &&
				rep.Failed == 1 &&
				!rep.Success
		},
	)

	s.Add(
		"empty_suite_succeeds",
		"zero cases aggregate to a successful report",
		func() bool {
			rep := suite.New("inner", "").Run()
			return rep.Total == 0 &&
				rep.Passed == 0 &&
				rep.Failed == 0 &&
				rep.Success
		},
	)

	s.Add(
		"panic_captured_with_message",
		"a panicking check surfaces its message",
		func() bool {
			inner := suite.New("inner", "")
			inner.Add("boom", "", func() bool {
				panic("boom")
			})
			inner.Add("after", "", func() bool {
				return true
			})
			rep := inner.Run()
			return rep.Total == 2 &&
				rep.Cases[0].Error == "boom" &&
				rep.Cases[1].Passed
		},
	)

	s.Add(
		"outcome_order_matches_registration",
		"case outcomes keep registration order",
		func() bool {
			inner := suite.New("inner", "")
			names := []string{"x", "y", "z"}
			for _, n := range names {
				inner.Add(n, "", func() bool {
					return true
				})
			}
			rep := inner.Run()
			for i, n := range names {
				if rep.Cases[i].Name != n {
					return false
				}
			}
			return true
		},
	)

	return s
}

// ShellSuite checks external command execution. Only useful on
// hosts with POSIX core utilities; the cases fail cleanly
// elsewhere.
func ShellSuite() *suite.Suite {
	s := suite.New(
		"Shell",
		"external command exit-code checks",
	)
	s.AddCase(suite.NewShellCase(
		"exit_zero_passes",
		"the true binary exits 0",
		"true",
	))
	return s
}

// All returns every built-in suite in its canonical order.
func All() []*suite.Suite {
	return []*suite.Suite{
		ObservableSuite(),
		HarnessSuite(),
		ShellSuite(),
	}
}
