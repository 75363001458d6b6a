package broadcast

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/fsnotify/fsnotify"
)

// PulseFile is the change-pulse file name inside the state directory.
// Its content is a timestamp that is written but never read: only the
// write itself matters, like the storage-event key it replaces.
const PulseFile = "refresh_files"

// Pulse is the cross-process half of the broadcast channel.
type Pulse struct {
	Dir string
}

func (p Pulse) path() string {
	return filepath.Join(p.Dir, PulseFile)
}

// Emit rewrites the pulse file so watchers in other processes wake up.
func (p Pulse) Emit() error {
	if err := os.MkdirAll(p.Dir, 0700); err != nil {
		return err
	}
	stamp := strconv.FormatInt(time.Now().UnixNano(), 10)
	return os.WriteFile(p.path(), []byte(stamp), 0600)
}

// Watch invokes fn every time the pulse file is written, until ctx is
// done. Delivery is asynchronous and a process can observe its own
// emit; callers wanting same-process delivery should subscribe to the
// Bus instead.
func (p Pulse) Watch(ctx context.Context, fn func()) error {
	if err := os.MkdirAll(p.Dir, 0700); err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory, not the file: the file may not exist yet,
	// and writes replace it.
	if err := watcher.Add(p.Dir); err != nil {
		return err
	}

	target := p.path()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name == target && event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				fn()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

// Channel composes both delivery paths. Notify reaches same-process
// subscribers through the Bus first, then wakes other processes via
// the Pulse.
type Channel struct {
	Bus   *Bus
	Pulse Pulse
}

// NewChannel builds a Channel over a state directory.
func NewChannel(dir string) *Channel {
	return &Channel{Bus: NewBus(), Pulse: Pulse{Dir: dir}}
}

// Notify delivers topic on both paths. A pulse write failure does not
// undo in-process delivery; cross-process freshness degrades to the
// next explicit refresh.
func (c *Channel) Notify(topic string) {
	c.Bus.Notify(topic)
	_ = c.Pulse.Emit()
}

// Subscribe registers a same-process handler for topic.
func (c *Channel) Subscribe(topic string, fn func()) (unsubscribe func()) {
	return c.Bus.Subscribe(topic, fn)
}
