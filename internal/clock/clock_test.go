package clock

import (
	"testing"
	"time"
)

var epoch = time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)

func TestFakeAfterFiresOnAdvance(t *testing.T) {
	f := NewFake(epoch)
	ch := f.After(time.Second)

	f.Advance(500 * time.Millisecond)
	select {
	case <-ch:
		t.Fatal("timer fired early")
	default:
	}

	f.Advance(500 * time.Millisecond)
	select {
	case got := <-ch:
		if !got.Equal(epoch.Add(time.Second)) {
			t.Errorf("fired at %v, want %v", got, epoch.Add(time.Second))
		}
	default:
		t.Fatal("timer did not fire")
	}
	if f.Waiters() != 0 {
		t.Errorf("expected no pending waiters, got %d", f.Waiters())
	}
}

func TestFakeAfterNonPositiveFiresImmediately(t *testing.T) {
	f := NewFake(epoch)
	select {
	case <-f.After(0):
	default:
		t.Fatal("zero duration should fire immediately")
	}
}

func TestFakeNow(t *testing.T) {
	f := NewFake(epoch)
	f.Advance(90 * time.Second)
	if want := epoch.Add(90 * time.Second); !f.Now().Equal(want) {
		t.Errorf("Now() = %v, want %v", f.Now(), want)
	}
}

func TestBlockUntil(t *testing.T) {
	f := NewFake(epoch)
	done := make(chan struct{})
	go func() {
		<-f.After(time.Minute)
		close(done)
	}()

	f.BlockUntil(1)
	f.Advance(time.Minute)
	<-done
}
