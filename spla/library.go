package spla

import (
	"context"

	"github.com/sparselinalg/spla/accel"
	"github.com/sparselinalg/spla/kernel"
	"github.com/sparselinalg/spla/schedule"
)

// Library owns its own kernel registry, dispatcher and task
// scheduler a set of Matrix/Vector/Scalar handles share. Build one with
// NewLibrary and reuse it for every Expression.
type Library struct {
	cfg       Config
	backend   accel.Backend
	enabled   bool
	registry  *kernel.Registry
	dispatch  *kernel.Dispatcher
	scheduler *schedule.Scheduler
	exec      *executor
}

// NewLibrary builds a Library from the given options, registering the CPU
// algorithm table and wiring a Scheduler bounded to Config.Workers.
func NewLibrary(opts ...Option) (*Library, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	backend, enabled := cfg.resolveBackend()

	registry := kernel.NewRegistry()
	registerCPUAlgorithms(registry)

	lib := &Library{
		cfg:      cfg,
		backend:  backend,
		enabled:  enabled,
		registry: registry,
		dispatch: kernel.NewDispatcher(registry, backend, enabled),
	}
	lib.exec = &executor{lib: lib, parts: make(map[productKey][]partialResult)}
	sched, err := schedule.New(lib.exec, cfg.Workers)
	if err != nil {
		return nil, err
	}
	lib.scheduler = sched
	return lib, nil
}

// NewExpression returns a fresh Builder ready to accumulate nodes.
func (l *Library) NewExpression() *Builder { return newBuilder(l) }

// Submit hands b's Expression to this Library's scheduler and blocks
// until every node has run or one has failed.
func (l *Library) Submit(ctx context.Context, b *Builder) error {
	return b.expr.SubmitWait(ctx, l.scheduler)
}

func (l *Library) blockSize() int {
	if l.cfg.BlockSize > 0 {
		return l.cfg.BlockSize
	}
	return 0 // newCoreVector/newCoreMatrix substitute block.DefaultBlockSize
}

// resolve looks up the CPU algorithm registered for opName. Every
// registration in this package's CPU table accepts any operand format,
// so Resolve's Select check never rejects here — the accelerator leg and
// format-mismatch retry path it also implements are exercised by package
// kernel's own tests; a GPU-backed build would register additional
// "__gpu_<name>" keys alongside these (SPEC_FULL.md §6.2).
func (l *Library) resolve(opName string) (*kernel.Algorithm, error) {
	return l.dispatch.Resolve(opName, nil, nil)
}
