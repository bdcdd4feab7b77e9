package graph

import (
	"encoding/json"

	"promptcanvas/easel/internal/db"
)

// SnapshotFromStore loads a Snapshot from the database
func SnapshotFromStore(d *db.DB) (*Snapshot, error) {
	dbNodes, err := d.AllNodes()
	if err != nil {
		return nil, err
	}
	dbEdges, err := d.AllEdges()
	if err != nil {
		return nil, err
	}

	nodes := make([]*NodeInfo, 0, len(dbNodes))
	for _, n := range dbNodes {
		nodes = append(nodes, &NodeInfo{
			ID:        n.ID,
			NodeType:  n.NodeType,
			Title:     n.Title,
			Payload:   json.RawMessage(n.Payload),
			CreatedAt: n.CreatedAt,
			UpdatedAt: n.UpdatedAt,
		})
	}

	edges := make([]EdgeInfo, 0, len(dbEdges))
	for _, e := range dbEdges {
		edges = append(edges, EdgeInfo{
			ID:           e.ID,
			Source:       e.SourceID,
			SourceHandle: e.SourceHandle,
			Target:       e.TargetID,
			TargetHandle: e.TargetHandle,
			CreatedAt:    e.CreatedAt,
		})
	}

	return NewSnapshot(nodes, edges), nil
}
