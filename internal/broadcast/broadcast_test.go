package broadcast

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNotifyDeliversExactlyOnce(t *testing.T) {
	bus := NewBus()

	var a, b int
	unsubA := bus.Subscribe(TopicFilesChanged, func() { a++ })
	unsubB := bus.Subscribe(TopicFilesChanged, func() { b++ })
	defer unsubB()

	bus.Notify(TopicFilesChanged)
	if a != 1 || b != 1 {
		t.Errorf("expected one delivery each, got a=%d b=%d", a, b)
	}

	unsubA()
	bus.Notify(TopicFilesChanged)
	if a != 1 {
		t.Errorf("unsubscribed handler fired, a=%d", a)
	}
	if b != 2 {
		t.Errorf("expected second delivery to b, got %d", b)
	}
}

func TestNotifyUnrelatedTopic(t *testing.T) {
	bus := NewBus()
	var n int
	defer bus.Subscribe(TopicFilesChanged, func() { n++ })()

	bus.Notify("other.topic")
	if n != 0 {
		t.Errorf("handler fired for unrelated topic, n=%d", n)
	}
}

func TestSubscribeDuringNotify(t *testing.T) {
	bus := NewBus()
	var late int
	defer bus.Subscribe(TopicFilesChanged, func() {
		// Subscribing from inside a handler must not deadlock, and
		// the new handler joins from the next notify only.
		bus.Subscribe(TopicFilesChanged, func() { late++ })
	})()

	bus.Notify(TopicFilesChanged)
	if late != 0 {
		t.Errorf("late subscriber fired during its own notify, late=%d", late)
	}
	bus.Notify(TopicFilesChanged)
	if late != 1 {
		t.Errorf("expected late subscriber to fire once, got %d", late)
	}
}

func TestPulseEmitWritesTimestamp(t *testing.T) {
	dir := t.TempDir()
	p := Pulse{Dir: dir}

	if err := p.Emit(); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	first, err := os.ReadFile(filepath.Join(dir, PulseFile))
	if err != nil {
		t.Fatalf("pulse file not written: %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	if err := p.Emit(); err != nil {
		t.Fatalf("second Emit failed: %v", err)
	}
	second, _ := os.ReadFile(filepath.Join(dir, PulseFile))
	if string(first) == string(second) {
		t.Error("expected pulse content to change between emits")
	}
}

func TestWatchSeesExternalPulse(t *testing.T) {
	dir := t.TempDir()
	p := Pulse{Dir: dir}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	seen := make(chan struct{}, 4)
	done := make(chan error, 1)
	go func() {
		done <- p.Watch(ctx, func() { seen <- struct{}{} })
	}()

	// Give the watcher a moment to register.
	time.Sleep(50 * time.Millisecond)
	if err := p.Emit(); err != nil {
		t.Fatal(err)
	}

	select {
	case <-seen:
	case <-ctx.Done():
		t.Fatal("watcher never saw the pulse")
	}

	cancel()
	if err := <-done; err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestChannelNotifiesBothPaths(t *testing.T) {
	dir := t.TempDir()
	ch := NewChannel(dir)

	var local int
	defer ch.Subscribe(TopicFilesChanged, func() { local++ })()

	ch.Notify(TopicFilesChanged)

	if local != 1 {
		t.Errorf("expected in-process delivery, got %d", local)
	}
	if _, err := os.Stat(filepath.Join(dir, PulseFile)); err != nil {
		t.Errorf("expected pulse file after Notify: %v", err)
	}
}
