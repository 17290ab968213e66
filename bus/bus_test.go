// SPDX-License-Identifier: EPL-2.0

package bus

import (
	"slices"
	"testing"
)

func TestBus_DeliveryOrder(t *testing.T) {
	t.Parallel()

	b := New()
	var got []string

	b.Subscribe("t", func(args ...any) { got = append(got, "a:"+args[0].(string)) })
	b.Subscribe("t", func(args ...any) { got = append(got, "b:"+args[0].(string)) })
	b.Subscribe("other", func(args ...any) { got = append(got, "other") })

	b.Publish("t", "1")
	b.Publish("t", "2")

	want := []string{"a:1", "b:1", "a:2", "b:2"}
	if !slices.Equal(got, want) {
		t.Errorf("deliveries = %v, want %v", got, want)
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	t.Parallel()

	b := New()
	calls := 0
	h := b.Subscribe("t", func(...any) { calls++ })

	if !b.Unsubscribe(h) {
		t.Fatal("Unsubscribe() = false, want true")
	}
	if b.Unsubscribe(h) {
		t.Error("second Unsubscribe() = true, want false")
	}
	if b.Unsubscribe(Handle{}) {
		t.Error("Unsubscribe(zero Handle) = true, want false")
	}

	b.Publish("t")
	if calls != 0 {
		t.Errorf("handler called %d times after Unsubscribe()", calls)
	}
	if b.Subscribers("t") != 0 {
		t.Errorf("Subscribers() = %d, want 0", b.Subscribers("t"))
	}
}

func TestBus_SubscribeDuringDelivery(t *testing.T) {
	t.Parallel()

	b := New()
	late := 0

	b.Subscribe("t", func(...any) {
		b.Subscribe("t", func(...any) { late++ })
	})

	b.Publish("t")
	if late != 0 {
		t.Errorf("subscriber added during delivery got %d messages, want 0", late)
	}

	b.Publish("t")
	if late != 1 {
		t.Errorf("late subscriber got %d messages, want 1", late)
	}
}

func TestBus_UnsubscribeDuringDelivery(t *testing.T) {
	t.Parallel()

	b := New()
	second := 0
	var h Handle

	b.Subscribe("t", func(...any) { b.Unsubscribe(h) })
	h = b.Subscribe("t", func(...any) { second++ })

	b.Publish("t")
	if second != 0 {
		t.Errorf("unsubscribed handler ran %d times", second)
	}
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	t.Parallel()

	b := New()
	b.Publish("nobody", 1, 2, 3)
}
