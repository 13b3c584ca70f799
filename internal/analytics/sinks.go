package analytics

import (
	"encoding/json"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// Nop discards events.
type Nop struct{}

// Emit implements Sink.
func (Nop) Emit(Event) {}

// multi fans an event out to several sinks.
type multi []Sink

// Multi returns a sink that emits to each of sinks in order.
func Multi(sinks ...Sink) Sink {
	return multi(slices.Clone(sinks))
}

func (m multi) Emit(ev Event) {
	for _, s := range m {
		s.Emit(ev)
	}
}

// LogSink writes events as structured log lines.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink logs to logger, or log.Default() when nil.
func NewLogSink(logger *log.Logger) *LogSink {
	if logger == nil {
		logger = log.Default()
	}
	return &LogSink{logger: logger}
}

// Emit implements Sink.
func (s *LogSink) Emit(ev Event) {
	keys := make([]string, 0, len(ev.Params))
	for k := range ev.Params {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	kv := make([]any, 0, 4+2*len(keys))
	kv = append(kv, "event", ev.Name, "session", ev.SessionID)
	for _, k := range keys {
		kv = append(kv, k, ev.Params[k])
	}
	s.logger.Info("track", kv...)
}

// EventWriter persists encoded events. *storage.Store satisfies it.
type EventWriter interface {
	SaveEvent(name, sessionID, payload string, at time.Time) error
}

// StoreSink queues events for a background writer. When the queue is full
// new events are dropped and counted.
type StoreSink struct {
	w       EventWriter
	logger  *log.Logger
	queue   chan Event
	done    chan struct{}
	once    sync.Once
	mu      sync.RWMutex
	closed  bool
	dropped atomic.Uint64
}

// NewStoreSink starts a writer goroutine with a queue of size buffer.
func NewStoreSink(w EventWriter, buffer int, logger *log.Logger) *StoreSink {
	if buffer <= 0 {
		buffer = 256
	}
	if logger == nil {
		logger = log.Default()
	}

	s := &StoreSink{
		w:      w,
		logger: logger,
		queue:  make(chan Event, buffer),
		done:   make(chan struct{}),
	}
	go s.run()
	return s
}

// Emit implements Sink. It never blocks.
func (s *StoreSink) Emit(ev Event) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		s.dropped.Add(1)
		return
	}
	select {
	case s.queue <- ev:
	default:
		s.dropped.Add(1)
	}
}

// Dropped returns how many events were discarded.
func (s *StoreSink) Dropped() uint64 {
	return s.dropped.Load()
}

// Close stops accepting events, flushes the queue, and waits for the writer.
func (s *StoreSink) Close() {
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		close(s.queue)
		s.mu.Unlock()
	})
	<-s.done
}

func (s *StoreSink) run() {
	defer close(s.done)

	for ev := range s.queue {
		payload, err := json.Marshal(ev.Params)
		if err != nil {
			s.logger.Warn("analytics: cannot encode event", "event", ev.Name, "error", err)
			continue
		}
		if err := s.w.SaveEvent(ev.Name, ev.SessionID, string(payload), ev.Time); err != nil {
			s.logger.Warn("analytics: cannot save event", "event", ev.Name, "error", err)
		}
	}
}
