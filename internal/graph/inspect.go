package graph

import "sort"

// TypeCount is the number of nodes carrying one type tag
type TypeCount struct {
	NodeType string `json:"type"`
	Count    int    `json:"count"`
}

// InspectReport summarizes canvas structure: totals, type distribution,
// sinks, orphans, and nodes no sink can reach.
type InspectReport struct {
	TotalNodes  int         `json:"total_nodes"`
	TotalEdges  int         `json:"total_edges"`
	Components  int         `json:"components"`
	TypeCounts  []TypeCount `json:"type_counts"`
	SinkIDs     []string    `json:"sink_ids"`
	OrphanCount int         `json:"orphan_count"`
	OrphanIDs   []string    `json:"orphan_ids"`
	Unreachable []string    `json:"unreachable"` // feeds no sink; contributes nothing
}

// InspectConfig holds inspection parameters
type InspectConfig struct {
	SinkTypes []string // node types that terminate assembly
	TopN      int      // cap on listed orphan/unreachable IDs
}

// DefaultInspectConfig returns sensible defaults
func DefaultInspectConfig() *InspectConfig {
	return &InspectConfig{
		SinkTypes: []string{"generate", "prompt"},
		TopN:      20,
	}
}

// Inspect analyzes the snapshot. Unreachable is computed by collecting
// upstream from every sink and diffing against the full node set.
func Inspect(snap *Snapshot, config *InspectConfig) *InspectReport {
	nodeIDs := snap.NodeIDs()
	report := &InspectReport{
		TotalNodes: len(nodeIDs),
		TotalEdges: len(snap.Edges),
	}
	if len(nodeIDs) == 0 {
		return report
	}

	sinkTypes := make(map[string]bool, len(config.SinkTypes))
	for _, t := range config.SinkTypes {
		sinkTypes[t] = true
	}

	// Type distribution
	counts := make(map[string]int)
	for _, id := range nodeIDs {
		counts[snap.Nodes[id].NodeType]++
	}
	for nodeType, count := range counts {
		report.TypeCounts = append(report.TypeCounts, TypeCount{NodeType: nodeType, Count: count})
	}
	sort.Slice(report.TypeCounts, func(i, j int) bool {
		if report.TypeCounts[i].Count != report.TypeCounts[j].Count {
			return report.TypeCounts[i].Count > report.TypeCounts[j].Count
		}
		return report.TypeCounts[i].NodeType < report.TypeCounts[j].NodeType
	})

	// Weakly connected components
	uf := newUnionFind(nodeIDs)
	for _, e := range snap.Edges {
		uf.union(e.Source, e.Target)
	}
	report.Components = uf.componentCount()

	// Sinks, in sorted ID order
	for _, id := range nodeIDs {
		if sinkTypes[snap.Nodes[id].NodeType] {
			report.SinkIDs = append(report.SinkIDs, id)
		}
	}

	// Orphans: no edges at all
	var orphans []string
	for _, id := range nodeIDs {
		if len(snap.InEdges[id]) == 0 && len(snap.OutAdj[id]) == 0 {
			orphans = append(orphans, id)
		}
	}
	report.OrphanCount = len(orphans)
	if len(orphans) > config.TopN {
		orphans = orphans[:config.TopN]
	}
	report.OrphanIDs = orphans

	// Unreachable: not upstream of any sink and not a sink itself
	reachable := make(map[string]bool)
	for _, sinkID := range report.SinkIDs {
		reachable[sinkID] = true
		// No barrier here: a node feeding an intercept still feeds a sink.
		for _, v := range snap.CollectUpstream(sinkID, nil) {
			reachable[v.Node.ID] = true
		}
	}
	for _, id := range nodeIDs {
		if !reachable[id] {
			report.Unreachable = append(report.Unreachable, id)
		}
	}
	if len(report.Unreachable) > config.TopN {
		report.Unreachable = report.Unreachable[:config.TopN]
	}

	return report
}
