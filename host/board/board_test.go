package board

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"
)

// fakePort serves reads from chunks, then reports read timeouts
type fakePort struct {
	chunks  [][]byte
	writes  [][]byte
	drained func()
	closed  bool
}

func (p *fakePort) Read(b []byte) (int, error) {
	if len(p.chunks) == 0 {
		if p.drained != nil {
			d := p.drained
			p.drained = nil
			d()
		}
		return 0, io.EOF
	}
	n := copy(b, p.chunks[0])
	p.chunks[0] = p.chunks[0][n:]
	if len(p.chunks[0]) == 0 {
		p.chunks = p.chunks[1:]
	}
	return n, nil
}

func (p *fakePort) Write(b []byte) (int, error) {
	if p.closed {
		return 0, errors.New("port closed")
	}
	p.writes = append(p.writes, append([]byte(nil), b...))
	return len(b), nil
}

func (p *fakePort) Close() error {
	p.closed = true
	return nil
}

func (p *fakePort) Flush() error { return nil }

func TestSendWritesOneByteAtATime(t *testing.T) {
	port := &fakePort{}
	b := New(port)
	b.Pace = 0

	n, err := b.Send(context.Background(), "7a!")
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if n != 3 {
		t.Errorf("Expected 3 characters sent, got %d", n)
	}
	if len(port.writes) != 3 {
		t.Fatalf("Expected 3 writes, got %d", len(port.writes))
	}
	for i, want := range []byte("7a!") {
		if len(port.writes[i]) != 1 || port.writes[i][0] != want {
			t.Errorf("Write %d: expected %q, got %q", i, want, port.writes[i])
		}
	}
}

func TestSendStopsOnCancel(t *testing.T) {
	port := &fakePort{}
	b := New(port)
	b.Pace = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := b.Send(ctx, "12")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if n != 1 {
		t.Errorf("Expected first character sent before the pause, got %d", n)
	}
}

func TestSendAfterClose(t *testing.T) {
	b := New(&fakePort{})
	if err := b.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, err := b.Send(context.Background(), "1"); err == nil {
		t.Error("Expected error sending on closed board")
	}
	// Second close is a no-op
	if err := b.Close(); err != nil {
		t.Errorf("Second close returned %v", err)
	}
}

func TestListenCopiesLines(t *testing.T) {
	port := &fakePort{
		chunks: [][]byte{
			[]byte("Button A. LED gr"),
			[]byte("een on\r\n"),
			[]byte("Button B. LED blue on\r\npartial"),
		},
	}
	b := New(port)
	port.drained = func() { b.Close() }

	var out bytes.Buffer
	if err := b.Listen(context.Background(), &out); err != nil {
		t.Fatalf("Listen failed: %v", err)
	}

	want := "Button A. LED green on\nButton B. LED blue on\n"
	if out.String() != want {
		t.Errorf("Expected %q, got %q", want, out.String())
	}
}

func TestListenReturnsOnCancel(t *testing.T) {
	b := New(&fakePort{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := b.Listen(ctx, io.Discard); err != nil {
		t.Errorf("Expected nil error after cancel, got %v", err)
	}
}
