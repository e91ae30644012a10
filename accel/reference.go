package accel

import (
	"context"
	"fmt"
	"sync"
)

// hostBuffer is the reference Backend's Buffer: a plain byte slice
// standing in for device memory.
type hostBuffer struct{ data []byte }

func (b *hostBuffer) Size() int { return len(b.data) }

type hostProgram struct{ key string }

func (p *hostProgram) Key() string { return p.key }

type hostQueue struct{}

func (hostQueue) Wait(ctx context.Context) error { return ctx.Err() }

// Reference is a single-threaded, in-process Backend: every "device"
// operation is a synchronous host-memory operation. It exists so the
// dispatcher, scheduler and kernel registry have a concrete accelerator
// to exercise in tests without a real OpenCL/CUDA runtime, and so
// BackendKind.None has something to resolve to.
type Reference struct {
	mu       sync.Mutex
	programs map[string]*hostProgram
}

// NewReference constructs a ready-to-use reference backend.
func NewReference() *Reference {
	return &Reference{programs: make(map[string]*hostProgram)}
}

func (r *Reference) Name() string               { return "reference" }
func (r *Reference) SupportsAtomicAdd() bool     { return false }
func (r *Reference) AcquireContext(context.Context) error { return nil }

func (r *Reference) CommandQueue(deviceID int) (Queue, error) {
	return hostQueue{}, nil
}

func (r *Reference) CompileProgram(key string, sources []string, defines map[string]string) (Program, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.programs[key]; ok {
		return p, nil
	}
	p := &hostProgram{key: key}
	r.programs[key] = p
	return p, nil
}

func (r *Reference) NewBuffer(bytes int) (Buffer, error) {
	if bytes < 0 {
		return nil, fmt.Errorf("accel: negative buffer size %d", bytes)
	}
	return &hostBuffer{data: make([]byte, bytes)}, nil
}

func (r *Reference) EnqueueWrite(q Queue, dst Buffer, src []byte) error {
	hb := dst.(*hostBuffer)
	copy(hb.data, src)
	return nil
}

func (r *Reference) EnqueueRead(q Queue, dst []byte, src Buffer) error {
	hb := src.(*hostBuffer)
	copy(dst, hb.data)
	return nil
}

func (r *Reference) EnqueueCopy(q Queue, dst, src Buffer) error {
	d, s := dst.(*hostBuffer), src.(*hostBuffer)
	copy(d.data, s.data)
	return nil
}

// EnqueueNDRange on the reference backend is a no-op: real kernel bodies
// are supplied by the device collaborator (spec.md §1 scope rule); the
// reference backend only needs to satisfy the interface for the
// dispatcher's fallback-to-CPU paths to be exercisable in tests.
func (r *Reference) EnqueueNDRange(q Queue, prog Program, kernel string, global, local [3]int, args ...Buffer) error {
	return nil
}
