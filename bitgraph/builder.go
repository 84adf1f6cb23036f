package bitgraph

import (
	"context"
	"fmt"
	"sort"

	"github.com/PoOnesNerfect/bit-gossip/adjacency"
	"github.com/PoOnesNerfect/bit-gossip/bitrow"
	"github.com/PoOnesNerfect/bit-gossip/edgematrix"
)

// NewBuilder returns a Builder for n nodes and no edges.
func NewBuilder(n int) *Builder {
	adj := make([]map[int]struct{}, n)
	for i := range adj {
		adj[i] = make(map[int]struct{})
	}
	return &Builder{n: n, adj: adj}
}

// N reports the current node count.
func (b *Builder) N() int {
	if b == nil {
		return 0
	}
	return b.n
}

// Resize changes the node count. Growing appends isolated nodes; shrinking
// drops every edge incident to a removed node. Returns ErrOutOfMemory if the
// new count would exceed maxNodes.
func (b *Builder) Resize(n int) error {
	if b == nil {
		return ErrNilReceiver
	}
	if n < 0 {
		return fmt.Errorf("%w: negative node count %d", ErrInvalidArgument, n)
	}
	if n > maxNodes {
		return fmt.Errorf("%w: node count %d exceeds limit %d", ErrOutOfMemory, n, maxNodes)
	}
	if n <= b.n {
		for v := n; v < b.n; v++ {
			for w := range b.adj[v] {
				if w < n {
					delete(b.adj[w], v)
				}
			}
		}
		b.adj = b.adj[:n]
		b.n = n
		return nil
	}
	grown := make([]map[int]struct{}, n)
	copy(grown, b.adj)
	for i := b.n; i < n; i++ {
		grown[i] = make(map[int]struct{})
	}
	b.adj = grown
	b.n = n
	return nil
}

func (b *Builder) validateNode(v int) error {
	if v < 0 || v >= b.n {
		return fmt.Errorf("%w: node id %d out of range [0,%d)", ErrInvalidArgument, v, b.n)
	}
	return nil
}

// Connect idempotently adds the undirected edge {a,b}. Rejects a==b and
// out-of-range ids; a no-op if the pair is already connected.
func (b *Builder) Connect(a, b2 int) error {
	if b == nil {
		return ErrNilReceiver
	}
	if err := b.validateNode(a); err != nil {
		return err
	}
	if err := b.validateNode(b2); err != nil {
		return err
	}
	if a == b2 {
		return fmt.Errorf("%w: self-loop %d", ErrInvalidArgument, a)
	}
	b.adj[a][b2] = struct{}{}
	b.adj[b2][a] = struct{}{}
	return nil
}

// Disconnect idempotently removes the undirected edge {a,b}, if present.
func (b *Builder) Disconnect(a, b2 int) error {
	if b == nil {
		return ErrNilReceiver
	}
	if err := b.validateNode(a); err != nil {
		return err
	}
	if err := b.validateNode(b2); err != nil {
		return err
	}
	delete(b.adj[a], b2)
	delete(b.adj[b2], a)
	return nil
}

// enumerateEdges assigns deterministic edge ids: iterate nodes ascending,
// within each node iterate neighbors ascending, and emit {v,w} only when
// w>v. Go's map iteration order is randomized, so sorting each node's
// neighbor set before the w>v filter is what makes this reproducible.
func (b *Builder) enumerateEdges() []edgePair {
	var out []edgePair
	for v := 0; v < b.n; v++ {
		neighbors := make([]int, 0, len(b.adj[v]))
		for w := range b.adj[v] {
			neighbors = append(neighbors, w)
		}
		sort.Ints(neighbors)
		for _, w := range neighbors {
			if w > v {
				out = append(out, edgePair{lo: v, hi: w})
			}
		}
	}
	return out
}

// Build seals the current node/edge set into a read-only Graph: it assigns
// edge ids, builds adjacency, seeds the matrix, selects a representation,
// runs the gossip fixed point, and wraps the result for querying.
func (b *Builder) Build(opts ...Option) (*Graph, error) {
	if b == nil {
		return nil, ErrNilReceiver
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	edges := b.enumerateEdges()
	adj := adjacency.NewTable(b.n)
	for id, e := range edges {
		adj.AddEdge(e.lo, e.hi, id)
	}
	adj.Sort()

	useFixed := cfg.width == widthFixed || (cfg.width == widthAuto && b.n <= 128)
	if cfg.width == widthFixed && b.n > 128 {
		return nil, fmt.Errorf("%w: fixed width requires node count <=128, got %d", ErrInvalidArgument, b.n)
	}

	useParallel := cfg.engine == engineParallel ||
		(cfg.engine == engineAuto && b.n >= autoParallelThreshold && cfg.workers > 1)

	var bm builtMatrix
	var err error
	switch {
	case useFixed && useParallel:
		bm, err = buildFixedParallel(b.n, edges, adj, cfg.workers)
	case useFixed && !useParallel:
		bm, err = buildFixedSequential(b.n, edges, adj)
	case !useFixed && useParallel:
		bm, err = buildDynamicParallel(b.n, edges, adj, cfg.workers)
	default:
		bm, err = buildDynamicSequential(b.n, edges, adj)
	}
	if err != nil {
		return nil, err
	}

	return &Graph{n: b.n, edges: edges, adj: adj, bm: bm}, nil
}

func buildDynamicSequential(n int, edges []edgePair, adj *adjacency.Table) (builtMatrix, error) {
	m := edgematrix.New(n)
	for _, e := range edges {
		m.AddEdge(e.lo, e.hi)
	}
	if err := runSequential[*bitrow.Row](adj, m); err != nil {
		return nil, err
	}
	return m, nil
}

func buildDynamicParallel(n int, edges []edgePair, adj *adjacency.Table, workers int) (builtMatrix, error) {
	seed := edgematrix.New(n)
	for _, e := range edges {
		seed.AddEdge(e.lo, e.hi)
	}
	am := edgematrix.FromEdgeMatrix(seed)
	if err := runParallel[*bitrow.Row](context.Background(), adj, atomicSnapshotMatrix{m: am}, workers); err != nil {
		return nil, err
	}
	return am.Freeze(), nil
}

func buildFixedSequential(n int, edges []edgePair, adj *adjacency.Table) (builtMatrix, error) {
	switch {
	case n <= 16:
		m := newFixedMatrix[uint16](n)
		for _, e := range edges {
			m.addEdge(e.lo, e.hi)
		}
		if err := runSequential[*bitrow.Fixed[uint16]](adj, m); err != nil {
			return nil, err
		}
		return m, nil
	case n <= 32:
		m := newFixedMatrix[uint32](n)
		for _, e := range edges {
			m.addEdge(e.lo, e.hi)
		}
		if err := runSequential[*bitrow.Fixed[uint32]](adj, m); err != nil {
			return nil, err
		}
		return m, nil
	case n <= 64:
		m := newFixedMatrix[uint64](n)
		for _, e := range edges {
			m.addEdge(e.lo, e.hi)
		}
		if err := runSequential[*bitrow.Fixed[uint64]](adj, m); err != nil {
			return nil, err
		}
		return m, nil
	default:
		m := newFixed128Matrix(n)
		for _, e := range edges {
			m.addEdge(e.lo, e.hi)
		}
		if err := runSequential[*bitrow.Fixed128](adj, m); err != nil {
			return nil, err
		}
		return m, nil
	}
}

// buildFixedParallel routes through the atomic-backed fixed-width matrices
// (atomicFixedMatrix64 / atomicFixed128Matrix) rather than the plain
// fixedMatrix[W]/fixed128Matrix the sequential path uses: gossipParallelPass
// has workers writing to a shared edge row from both endpoints with only a
// pass-level barrier, so every write within a pass must be an atomic
// fetch-or, exactly like buildDynamicParallel's use of AtomicEdgeMatrix. A
// single atomic word already covers every n<=64 case, so the parallel path
// does not need fixedMatrix's uint16/uint32/uint64 split.
func buildFixedParallel(n int, edges []edgePair, adj *adjacency.Table, workers int) (builtMatrix, error) {
	ctx := context.Background()
	if n <= 64 {
		seed := newFixedMatrix[uint64](n)
		for _, e := range edges {
			seed.addEdge(e.lo, e.hi)
		}
		am := fromFixedMatrix64(seed)
		if err := runParallel[*bitrow.Fixed[uint64]](ctx, adj, am, workers); err != nil {
			return nil, err
		}
		return am.Freeze(), nil
	}
	seed := newFixed128Matrix(n)
	for _, e := range edges {
		seed.addEdge(e.lo, e.hi)
	}
	am := fromFixed128Matrix(seed)
	if err := runParallel[*bitrow.Fixed128](ctx, adj, am, workers); err != nil {
		return nil, err
	}
	return am.Freeze(), nil
}
