package graph

import "testing"

func typedSnapshot(types map[string]string, edges [][2]string) *Snapshot {
	var nodes []*NodeInfo
	for id, nodeType := range types {
		nodes = append(nodes, &NodeInfo{ID: id, NodeType: nodeType, Title: "Node " + id})
	}
	var edgeInfos []EdgeInfo
	for i, e := range edges {
		edgeInfos = append(edgeInfos, EdgeInfo{
			ID: string(rune('a' + i)), Source: e[0], Target: e[1],
			TargetHandle: HandleIn, CreatedAt: int64(i),
		})
	}
	return NewSnapshot(nodes, edgeInfos)
}

func TestInspect_Empty(t *testing.T) {
	report := Inspect(NewSnapshot(nil, nil), DefaultInspectConfig())
	if report.TotalNodes != 0 || report.TotalEdges != 0 || report.Components != 0 {
		t.Errorf("empty canvas should report zeros, got %+v", report)
	}
}

func TestInspect_Counts(t *testing.T) {
	snap := typedSnapshot(map[string]string{
		"c1": "character", "c2": "character", "s": "shot", "g": "generate",
	}, [][2]string{{"c1", "g"}, {"s", "g"}})

	report := Inspect(snap, DefaultInspectConfig())
	if report.TotalNodes != 4 || report.TotalEdges != 2 {
		t.Errorf("expected 4 nodes / 2 edges, got %d/%d", report.TotalNodes, report.TotalEdges)
	}
	if report.TypeCounts[0].NodeType != "character" || report.TypeCounts[0].Count != 2 {
		t.Errorf("character should lead type counts, got %+v", report.TypeCounts)
	}
	if len(report.SinkIDs) != 1 || report.SinkIDs[0] != "g" {
		t.Errorf("expected sink g, got %v", report.SinkIDs)
	}
}

func TestInspect_OrphansAndUnreachable(t *testing.T) {
	snap := typedSnapshot(map[string]string{
		"a": "character", "g": "generate", "orphan": "prop", "dead": "setting", "dead2": "setting",
	}, [][2]string{{"a", "g"}, {"dead", "dead2"}})

	report := Inspect(snap, DefaultInspectConfig())
	if report.OrphanCount != 1 || report.OrphanIDs[0] != "orphan" {
		t.Errorf("expected orphan, got %v", report.OrphanIDs)
	}

	unreachable := map[string]bool{}
	for _, id := range report.Unreachable {
		unreachable[id] = true
	}
	if !unreachable["dead"] || !unreachable["dead2"] || !unreachable["orphan"] {
		t.Errorf("dead branch should be unreachable, got %v", report.Unreachable)
	}
	if unreachable["a"] || unreachable["g"] {
		t.Errorf("nodes feeding a sink should be reachable, got %v", report.Unreachable)
	}
}

func TestInspect_Components(t *testing.T) {
	snap := typedSnapshot(map[string]string{
		"a": "text", "b": "text", "c": "text", "d": "text",
	}, [][2]string{{"a", "b"}, {"c", "d"}})

	report := Inspect(snap, DefaultInspectConfig())
	if report.Components != 2 {
		t.Errorf("expected 2 components, got %d", report.Components)
	}
}
