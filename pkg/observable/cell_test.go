package observable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell_Get_InitialValue(t *testing.T) {
	c := New(10)
	assert.Equal(t, 10, c.Get())
}

func TestCell_Get_NeverNotifies(t *testing.T) {
	c := New(10)
	calls := 0
	c.Subscribe(func(int) { calls++ })

	for i := 0; i < 5; i++ {
		_ = c.Get()
	}
	assert.Equal(t, 0, calls)
}

func TestCell_Set_NotifiesAllSubscribersInOrder(t *testing.T) {
	c := New(10)
	var order []string
	var gotA, gotB int
	c.Subscribe(func(v int) {
		order = append(order, "a")
		gotA = v
	})
	c.Subscribe(func(v int) {
		order = append(order, "b")
		gotB = v
	})

	c.Set(20)

	assert.Equal(t, []string{"a", "b"}, order)
	assert.Equal(t, 20, gotA)
	assert.Equal(t, 20, gotB)
	assert.Equal(t, 20, c.Get())

	// Same value again: suppressed, no further calls.
	c.Set(20)
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestCell_Set_EqualValueSuppressed(t *testing.T) {
	c := New("hello")
	calls := 0
	c.Subscribe(func(string) { calls++ })

	c.Set("hello")

	assert.Equal(t, 0, calls)
	assert.Equal(t, "hello", c.Get())
}

func TestCell_Set_EachChangeNotifiesOncePerSubscriber(t *testing.T) {
	c := New(0)
	counts := make([]int, 3)
	for i := range counts {
		i := i
		c.Subscribe(func(int) { counts[i]++ })
	}

	c.Set(1)
	c.Set(2)
	c.Set(2)
	c.Set(3)

	for _, n := range counts {
		assert.Equal(t, 3, n)
	}
}

func TestCell_PanickingSubscriberDoesNotBlockOthers(t *testing.T) {
	c := New(1)
	var after []int
	c.Subscribe(func(int) { panic("subscriber exploded") })
	c.Subscribe(func(v int) { after = append(after, v) })

	c.Set(2)

	require.Equal(t, []int{2}, after)
	assert.Equal(t, 2, c.Get(), "value survives subscriber panic")
}

func TestCell_NewWithEqual_CustomPolicy(t *testing.T) {
	// Case-insensitive equality.
	c := NewWithEqual("Go", func(a, b string) bool {
		return strings.EqualFold(a, b)
	})
	calls := 0
	c.Subscribe(func(string) { calls++ })

	c.Set("GO")
	assert.Equal(t, 0, calls, "equal under policy, suppressed")

	c.Set("Rust")
	assert.Equal(t, 1, calls)
}

func TestCell_NewWithEqual_NilPolicyAlwaysNotifies(t *testing.T) {
	type point struct{ x, y []int }
	c := NewWithEqual(point{}, nil)
	calls := 0
	c.Subscribe(func(point) { calls++ })

	c.Set(point{})
	c.Set(point{})

	assert.Equal(t, 2, calls)
}

func TestCell_ReentrantSetQueuedAndDrained(t *testing.T) {
	c := New(0)
	var seen []int
	c.Subscribe(func(v int) {
		seen = append(seen, v)
		if v == 1 {
			// Issued mid-notification: deferred until the
			// current pass finishes.
			c.Set(2)
		}
	})

	c.Set(1)

	assert.Equal(t, []int{1, 2}, seen)
	assert.Equal(t, 2, c.Get())
}

func TestCell_ReentrantSetEqualValueStillSuppressed(t *testing.T) {
	c := New(0)
	calls := 0
	c.Subscribe(func(v int) {
		calls++
		if calls == 1 {
			c.Set(v) // queued, then suppressed on drain
		}
	})

	c.Set(7)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 7, c.Get())
}

func TestCell_SubscribeNoDeduplication(t *testing.T) {
	c := New(0)
	calls := 0
	fn := func(int) { calls++ }
	c.Subscribe(fn)
	c.Subscribe(fn)

	assert.Equal(t, 2, c.Len())

	c.Set(1)
	assert.Equal(t, 2, calls)
}

func TestCell_PointerIdentitySuppression(t *testing.T) {
	a, b := new(int), new(int)
	c := New(a)
	calls := 0
	c.Subscribe(func(*int) { calls++ })

	c.Set(a)
	assert.Equal(t, 0, calls, "same pointer, no change")

	c.Set(b)
	assert.Equal(t, 1, calls)
}
