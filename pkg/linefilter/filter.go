// Package linefilter implements the reader/filter/writer pipeline
// that rewrites lines of a header using the catalog pkg/catalog built
// from a full parse: a getter/setter filter and a cereal serialization
// filter, each expanding a sentinel line into generated methods.
package linefilter

import (
	"bufio"
	"io"
	"os"
)

// Emitter is the one capability every pipeline node has: a channel of
// outgoing lines that downstream nodes can subscribe to.
type Emitter struct {
	subs []func(line string)
}

// OnLine subscribes fn to every line this node emits.
func (e *Emitter) OnLine(fn func(line string)) {
	e.subs = append(e.subs, fn)
}

// Emit publishes line to every subscriber, in subscription order.
func (e *Emitter) Emit(line string) {
	for _, fn := range e.subs {
		fn(line)
	}
}

// Filter is the base every concrete filter embeds: an outgoing line
// Emitter plus a re-export of the mini-parser's class-push/class-pop
// channels, so a chain of filters downstream of the same mini-parser can
// all track which class the current line falls inside.
type Filter struct {
	Emitter
	classPushSubs []func(name string)
	classPopSubs  []func()
	current       string
}

// OnClassPush subscribes fn to this filter's re-exported class-push
// channel.
func (f *Filter) OnClassPush(fn func(name string)) {
	f.classPushSubs = append(f.classPushSubs, fn)
}

// OnClassPop subscribes fn to this filter's re-exported class-pop channel.
func (f *Filter) OnClassPop(fn func()) {
	f.classPopSubs = append(f.classPopSubs, fn)
}

// HandleClassPush is the subscriber function to pass to an upstream
// OnClassPush (the mini-parser's or another filter's). It records the
// current class and forwards the push downstream.
func (f *Filter) HandleClassPush(name string) {
	f.current = name
	for _, fn := range f.classPushSubs {
		fn(name)
	}
}

// HandleClassPop is the subscriber function to pass to an upstream
// OnClassPop. It clears the current class and forwards the pop
// downstream.
func (f *Filter) HandleClassPop() {
	f.current = ""
	for _, fn := range f.classPopSubs {
		fn()
	}
}

// Reader is a trivial source endpoint: it reads a file line by line and
// emits each line unchanged.
type Reader struct {
	Emitter
}

// NewReader creates a Reader with no subscribers.
func NewReader() *Reader {
	return &Reader{}
}

// ReadFile streams path's lines through the Reader's Emitter.
func (r *Reader) ReadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return r.Read(f)
}

// Read streams src's lines through the Reader's Emitter.
func (r *Reader) Read(src io.Reader) error {
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		r.Emit(scanner.Text())
	}
	return scanner.Err()
}

// Writer is a trivial sink endpoint: subscribe it to an upstream Emitter
// and it appends each received line, newline-terminated, to its buffer.
type Writer struct {
	lines []string
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Consume is the subscriber function to pass to an upstream OnLine.
func (w *Writer) Consume(line string) {
	w.lines = append(w.lines, line+"\n")
}

// WriteFile writes every consumed line to path.
func (w *Writer) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	for _, line := range w.lines {
		if _, err := f.WriteString(line); err != nil {
			return err
		}
	}
	return nil
}

// String returns every consumed line joined together, for tests that
// don't want to round-trip through the filesystem.
func (w *Writer) String() string {
	var out string
	for _, line := range w.lines {
		out += line
	}
	return out
}
