package graph

import (
	"encoding/json"
	"sort"
)

// Handle names as stored on edges. The target handle determines the semantic
// role of a connection at the node it enters.
const (
	HandleIn     = "in"     // default narrative input
	HandleRef    = "ref"    // reference-image input
	HandleConfig = "config" // parameters / negative input
)

// Role is the semantic role an incoming edge carries at its target.
type Role int

const (
	RoleNarrative Role = iota
	RoleReference
	RoleConfig
)

func (r Role) String() string {
	switch r {
	case RoleReference:
		return "reference"
	case RoleConfig:
		return "config"
	default:
		return "narrative"
	}
}

// RoleForHandle maps a target handle name to its role. Unknown handles are
// narrative, so forward-compatible handle names degrade to the default input.
func RoleForHandle(handle string) Role {
	switch handle {
	case HandleRef:
		return RoleReference
	case HandleConfig:
		return RoleConfig
	default:
		return RoleNarrative
	}
}

// NodeInfo is a lightweight node representation decoupled from DB types
type NodeInfo struct {
	ID        string
	NodeType  string
	Title     string
	Payload   json.RawMessage
	CreatedAt int64
	UpdatedAt int64
}

// EdgeInfo is a lightweight edge representation
type EdgeInfo struct {
	ID           string
	Source       string
	SourceHandle string
	Target       string
	TargetHandle string
	CreatedAt    int64
}

// Snapshot is an immutable view of the node and edge collections at the
// moment assembly is requested. Edges are held in canonical order
// (created_at, then ID) so traversal does not depend on input slice order.
type Snapshot struct {
	Nodes   map[string]*NodeInfo
	Edges   []EdgeInfo
	InEdges map[string][]EdgeInfo // target -> incoming edges, canonical order
	OutAdj  map[string][]string   // source -> targets
}

// NewSnapshot builds a Snapshot from raw nodes and edges. Edges referencing
// missing endpoints are dropped.
func NewSnapshot(nodes []*NodeInfo, edges []EdgeInfo) *Snapshot {
	nodeMap := make(map[string]*NodeInfo, len(nodes))
	for _, n := range nodes {
		nodeMap[n.ID] = n
	}

	kept := make([]EdgeInfo, 0, len(edges))
	for _, e := range edges {
		if _, ok := nodeMap[e.Source]; !ok {
			continue
		}
		if _, ok := nodeMap[e.Target]; !ok {
			continue
		}
		kept = append(kept, e)
	}
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].CreatedAt != kept[j].CreatedAt {
			return kept[i].CreatedAt < kept[j].CreatedAt
		}
		return kept[i].ID < kept[j].ID
	})

	inEdges := make(map[string][]EdgeInfo)
	outAdj := make(map[string][]string)
	for _, e := range kept {
		inEdges[e.Target] = append(inEdges[e.Target], e)
		outAdj[e.Source] = append(outAdj[e.Source], e.Target)
	}

	return &Snapshot{
		Nodes:   nodeMap,
		Edges:   kept,
		InEdges: inEdges,
		OutAdj:  outAdj,
	}
}

// NodeIDs returns a sorted list of all node IDs (for deterministic output)
func (s *Snapshot) NodeIDs() []string {
	ids := make([]string, 0, len(s.Nodes))
	for id := range s.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
