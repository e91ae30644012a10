package storage

import "fmt"

// Func mutates a TileStorage in place: constructing, validating,
// discarding or converting one of its slots. It is handed the
// TileStorage directly (rather than returning a new value) because a
// converter conceptually both reads a source slot and writes a
// destination slot on the same entity.
type Func[Code comparable] func(ts *TileStorage[Code])

type edge[Code comparable] struct {
	to   Code
	id   int
	conv Func[Code]
}

// Manager is the registration-time conversion graph plus the shortest-
// path engine described in spec.md §4.4. ToInt/FromInt let Manager
// enumerate an unknown-at-compile-time Code type the same way the C++
// original used static_cast<int>(format) against a fixed capacity.
type Manager[Code comparable] struct {
	capacity     int
	toInt        func(Code) int
	fromInt      func(int) Code
	constructors map[Code]Func[Code]
	validators   map[Code]Func[Code]
	discards     map[Code]Func[Code]
	edges        map[Code][]edge[Code]
	nextEdgeID   int
}

// NewManager constructs an empty Manager for a format-code space of the
// given capacity (format.VecCount or format.MatCount).
func NewManager[Code comparable](capacity int, toInt func(Code) int, fromInt func(int) Code) *Manager[Code] {
	return &Manager[Code]{
		capacity:     capacity,
		toInt:        toInt,
		fromInt:      fromInt,
		constructors: make(map[Code]Func[Code]),
		validators:   make(map[Code]Func[Code]),
		discards:     make(map[Code]Func[Code]),
		edges:        make(map[Code][]edge[Code]),
	}
}

// RegisterConstructor installs the function that creates an empty slot
// for format when it does not yet exist.
func (m *Manager[Code]) RegisterConstructor(code Code, fn Func[Code]) {
	m.constructors[code] = fn
}

// RegisterValidator installs a function run once, immediately after
// construction, the first time a format becomes valid with nothing else
// to convert from.
func (m *Manager[Code]) RegisterValidator(code Code, fn Func[Code]) {
	m.validators[code] = fn
}

// RegisterDiscard installs the function validate_wd uses to clear a
// slot's internal buffers before the caller overwrites it from scratch.
func (m *Manager[Code]) RegisterDiscard(code Code, fn Func[Code]) {
	m.discards[code] = fn
}

// RegisterValidatorDiscard installs fn as both the validator and the
// discarder for format, the common case where "start empty" and
// "become empty again" are the same operation.
func (m *Manager[Code]) RegisterValidatorDiscard(code Code, fn Func[Code]) {
	m.validators[code] = fn
	m.discards[code] = fn
}

// RegisterConverter installs a directed conversion edge from→to. Edges
// registered earlier are preferred when the BFS search has a tie among
// several candidates reachable in the same number of hops (spec.md §4.4
// "Ties are broken by registration order").
func (m *Manager[Code]) RegisterConverter(from, to Code, fn Func[Code]) {
	id := m.nextEdgeID
	m.nextEdgeID++
	m.edges[from] = append(m.edges[from], edge[Code]{to: to, id: id, conv: fn})
}

// ValidateCtor ensures the format slot is constructed (empty) without
// touching validity bits, for callers (e.g. an incremental DokVec
// append) that need the container to exist while other formats remain
// authoritative until commit (spec.md §4.4).
func (m *Manager[Code]) ValidateCtor(code Code, ts *TileStorage[Code]) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return m.ensureConstructed(code, ts)
}

func (m *Manager[Code]) ensureConstructed(code Code, ts *TileStorage[Code]) error {
	if ts.get(code) != nil {
		return nil
	}
	ctor, ok := m.constructors[code]
	if !ok {
		return fmt.Errorf("storage: format %v: %w", code, ErrNoConstructor)
	}
	ctor(ts)
	return nil
}

// ValidateRW ensures the tile is present and correct in format, reading
// through the shortest chain of registered converters from any
// currently-valid format if one exists, or constructing fresh if no
// format is valid yet. Other already-valid formats remain valid on exit
// (spec.md §4.4 invariant).
func (m *Manager[Code]) ValidateRW(code Code, ts *TileStorage[Code]) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return m.validateRWLocked(code, ts)
}

func (m *Manager[Code]) validateRWLocked(code Code, ts *TileStorage[Code]) error {
	if ts.isValid(code) {
		return nil
	}
	if !ts.isValidAny() {
		if err := m.ensureConstructed(code, ts); err != nil {
			return err
		}
		if v, ok := m.validators[code]; ok {
			v(ts)
		}
		ts.markValid(code)
		return nil
	}

	path, err := m.shortestPath(code, ts)
	if err != nil {
		return err
	}
	for _, e := range path {
		if ts.get(e.to) == nil {
			if err := m.ensureConstructed(e.to, ts); err != nil {
				return err
			}
		}
		e.conv(ts)
		ts.markValid(e.to)
	}
	return nil
}

// shortestPath runs the BFS described in spec.md §4.4 from the set of
// currently-valid formats to target, returning the ordered list of edges
// to execute. Ties are broken by the order edges were registered, which
// is also the order they are visited out of each node's adjacency list.
func (m *Manager[Code]) shortestPath(target Code, ts *TileStorage[Code]) ([]edge[Code], error) {
	const (
		unreached = -2
		source    = -1
	)
	reachedFrom := make([]int, m.capacity) // index: int(code); value: int(predecessor code) or source/unreached
	for i := range reachedFrom {
		reachedFrom[i] = unreached
	}
	queue := make([]int, 0, m.capacity)
	for i := 0; i < m.capacity; i++ {
		code := m.fromInt(i)
		if ts.isValid(code) {
			reachedFrom[i] = source
			queue = append(queue, i)
		}
	}

	targetI := m.toInt(target)
	for len(queue) > 0 && reachedFrom[targetI] == unreached {
		u := queue[0]
		queue = queue[1:]
		for _, e := range m.edges[m.fromInt(u)] {
			vi := m.toInt(e.to)
			if reachedFrom[vi] == unreached {
				reachedFrom[vi] = u
				queue = append(queue, vi)
			}
		}
	}

	if reachedFrom[targetI] == unreached {
		return nil, fmt.Errorf("storage: format %v: %w", target, ErrNoConversionPath)
	}

	// Walk predecessors back to a source, then reverse.
	var revCodes []int
	cur := targetI
	for reachedFrom[cur] != source {
		revCodes = append(revCodes, cur)
		cur = reachedFrom[cur]
	}
	revCodes = append(revCodes, cur) // the source format itself, for lookups below

	path := make([]edge[Code], 0, len(revCodes)-1)
	for i := len(revCodes) - 1; i > 0; i-- {
		from, to := m.fromInt(revCodes[i]), m.fromInt(revCodes[i-1])
		var found edge[Code]
		for _, e := range m.edges[from] {
			if e.to == to {
				found = e
				break
			}
		}
		path = append(path, found)
	}
	return path, nil
}

// ValidateRWD is ValidateRW followed by invalidating every format but
// target: the caller is about to mutate target, so other cached formats
// become stale (spec.md §4.4).
func (m *Manager[Code]) ValidateRWD(code Code, ts *TileStorage[Code]) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if err := m.validateRWLocked(code, ts); err != nil {
		return err
	}
	ts.invalidateAllExcept(code)
	return nil
}

// ValidateWD ensures format is constructed, runs its discarder without
// reading prior contents, invalidates every other format, and marks
// format valid — for callers who will overwrite the tile from scratch
// and must not pay for an unnecessary conversion (spec.md §4.4).
func (m *Manager[Code]) ValidateWD(code Code, ts *TileStorage[Code]) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if err := m.ensureConstructed(code, ts); err != nil {
		return err
	}
	if d, ok := m.discards[code]; ok {
		d(ts)
	}
	ts.invalidateAll()
	ts.markValid(code)
	return nil
}
