package bottleneck

// Matching feasibility via unit-capacity maximum flow.
//
// A threshold t is feasible when the diagrams admit a perfect matching in
// which no matched pair is farther than t apart (L∞) and every
// diagonal-matched point lies within t of the diagonal. Rather than
// materialising the quadratic set of diagonal projections, the network uses
// one shared diagonal node:
//
//	source → aᵢ           cap 1   for every point of A
//	aᵢ     → bⱼ           cap 1   when linf(aᵢ, bⱼ) ≤ t
//	aᵢ     → diag         cap 1   when diagDist(aᵢ) ≤ t
//	diag   → bⱼ           cap 1   when diagDist(bⱼ) ≤ t
//	bⱼ     → sink         cap 1   for every point of B
//	source → diag         cap |B|
//	diag   → sink         cap |A|
//
// t is feasible iff the maximum flow equals |A| + |B|: every aᵢ is then
// matched to some bⱼ or to the diagonal, every bⱼ is matched to some aᵢ or
// to the diagonal, and the source→diag / diag→sink arcs absorb the slack the
// complete diagonal-to-diagonal subgraph would otherwise carry.

// Node layout of the feasibility network.
const (
	netSource = 0
	netSink   = 1
	netDiag   = 2
	netFixed  = 3 // first diagram point node
)

// flowEdge is one directed arc of the residual network. rev indexes the
// reverse arc inside adj[to].
type flowEdge struct {
	to  int
	rev int
	cap int
}

// flowNet is a unit-capacity flow network with Dinic-style search state.
type flowNet struct {
	adj [][]flowEdge
}

func newFlowNet(nodes int) *flowNet {
	return &flowNet{adj: make([][]flowEdge, nodes)}
}

// addEdge inserts the arc u→v with capacity c and its zero-capacity reverse.
func (f *flowNet) addEdge(u, v, c int) {
	f.adj[u] = append(f.adj[u], flowEdge{to: v, rev: len(f.adj[v]), cap: c})
	f.adj[v] = append(f.adj[v], flowEdge{to: u, rev: len(f.adj[u]) - 1, cap: 0})
}

// maxFlow runs Dinic's algorithm (BFS level graph + DFS blocking flow)
// from source to sink and returns the total flow pushed.
//
// Complexity: O(E·√V) on unit-capacity networks.
func (f *flowNet) maxFlow(source, sink int) int {
	total := 0
	level := make([]int, len(f.adj))
	iter := make([]int, len(f.adj))
	for f.buildLevels(source, sink, level) {
		for i := range iter {
			iter[i] = 0
		}
		for {
			pushed := f.push(source, sink, len(f.adj), level, iter)
			if pushed == 0 {
				break
			}
			total += pushed
		}
	}
	return total
}

// buildLevels runs a BFS from source over positive-capacity arcs, recording
// the level (distance) of each node. It reports whether the sink is reachable.
func (f *flowNet) buildLevels(source, sink int, level []int) bool {
	for i := range level {
		level[i] = -1
	}
	level[source] = 0
	queue := []int{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, e := range f.adj[u] {
			if e.cap > 0 && level[e.to] < 0 {
				level[e.to] = level[u] + 1
				queue = append(queue, e.to)
			}
		}
	}
	return level[sink] >= 0
}

// push advances one DFS augmentation along the level graph, pushing at most
// limit units from u towards the sink. iter remembers, per node, how far the
// arc scan has progressed so each arc is inspected once per phase.
func (f *flowNet) push(u, sink, limit int, level, iter []int) int {
	if u == sink {
		return limit
	}
	for ; iter[u] < len(f.adj[u]); iter[u]++ {
		e := &f.adj[u][iter[u]]
		if e.cap <= 0 || level[e.to] != level[u]+1 {
			continue
		}
		bound := limit
		if e.cap < bound {
			bound = e.cap
		}
		pushed := f.push(e.to, sink, bound, level, iter)
		if pushed > 0 {
			e.cap -= pushed
			f.adj[e.to][e.rev].cap += pushed
			return pushed
		}
	}
	return 0
}

// feasibleAt reports whether threshold t admits a perfect matching between
// a and b. When wantMatching is true and t is feasible, it also extracts the
// realised pairing from the saturated arcs: one Pair per point of a (in
// order), followed by one Pair per diagonal-matched point of b.
func feasibleAt(a, b Diagram, t float64, wantMatching bool) (bool, Matching) {
	n, m := len(a), len(b)
	net := newFlowNet(netFixed + n + m)
	aNode := func(i int) int { return netFixed + i }
	bNode := func(j int) int { return netFixed + n + j }

	for i := range a {
		net.addEdge(netSource, aNode(i), 1)
		if diagDist(a[i]) <= t {
			net.addEdge(aNode(i), netDiag, 1)
		}
	}
	for j := range b {
		net.addEdge(bNode(j), netSink, 1)
		if diagDist(b[j]) <= t {
			net.addEdge(netDiag, bNode(j), 1)
		}
	}
	for i := range a {
		for j := range b {
			if linfDist(a[i], b[j]) <= t {
				net.addEdge(aNode(i), bNode(j), 1)
			}
		}
	}
	// Slack arcs standing in for the diagonal-to-diagonal subgraph.
	net.addEdge(netSource, netDiag, m)
	net.addEdge(netDiag, netSink, n)

	if net.maxFlow(netSource, netSink) != n+m {
		return false, nil
	}
	if !wantMatching {
		return true, nil
	}
	return true, extractMatching(net, n, m)
}

// extractMatching reads the optimal pairing off the residual network: a unit
// arc is used exactly when its remaining capacity is zero.
func extractMatching(net *flowNet, n, m int) Matching {
	match := make(Matching, 0, n+m)
	for i := 0; i < n; i++ {
		for _, e := range net.adj[netFixed+i] {
			if e.cap != 0 || e.to == netSource {
				continue
			}
			if e.to == netDiag {
				match = append(match, Pair{I: i, J: Diagonal})
			} else {
				match = append(match, Pair{I: i, J: e.to - netFixed - n})
			}
			break
		}
	}
	for _, e := range net.adj[netDiag] {
		if e.cap == 0 && e.to >= netFixed+n {
			match = append(match, Pair{I: Diagonal, J: e.to - netFixed - n})
		}
	}
	return match
}
