package graph

// Visit is one node reached by upstream traversal, annotated with the role
// of the edge that first discovered it (the edge closest to the sink).
type Visit struct {
	Node *NodeInfo
	Role Role
}

// CollectUpstream walks incoming edges breadth-first from sinkID and returns
// every reachable node in discovery order. The sink itself is excluded.
//
// Nodes whose type is in barrier are emitted but not expanded: their own
// upstream stays out of the result, so a node that summarizes its subtree
// stands in for it. The sink is always expanded, even if its type is a
// barrier. A nil barrier expands everything.
//
// The visited set is seeded with the sink, and a node already visited is never
// re-enqueued, so traversal terminates on cyclic graphs: the second arrival at
// a node is silently dropped. A sink absent from the snapshot yields nil.
func (s *Snapshot) CollectUpstream(sinkID string, barrier map[string]bool) []Visit {
	if _, ok := s.Nodes[sinkID]; !ok {
		return nil
	}

	visited := map[string]bool{sinkID: true}
	queue := []string{sinkID}
	var visits []Visit

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, e := range s.InEdges[current] {
			if visited[e.Source] {
				continue
			}
			source, ok := s.Nodes[e.Source]
			if !ok {
				continue
			}
			visited[e.Source] = true
			visits = append(visits, Visit{Node: source, Role: RoleForHandle(e.TargetHandle)})
			if !barrier[source.NodeType] {
				queue = append(queue, e.Source)
			}
		}
	}

	return visits
}
