// Package assemble turns a canvas graph into a concrete image-generation
// request: a positive prompt, a negative prompt, and resolved parameters.
//
// Assembly is a pure function of an explicit graph snapshot. The host decides
// when the graph changed and calls Assemble again; the engine itself holds no
// state and performs no I/O.
package assemble

import (
	"encoding/json"

	"promptcanvas/easel/internal/graph"
)

// Reference is an image asset attached to the request rather than inlined
// as text.
type Reference struct {
	NodeID   string `json:"node_id"`
	ImageID  string `json:"image_id"`
	Category string `json:"category,omitempty"`
}

// Result is the assembled generation request. It is an immutable value, safe
// to hand to the override layer or a request builder.
type Result struct {
	Prompt         string      `json:"prompt"`
	NegativePrompt string      `json:"negative_prompt"`
	Params         Params      `json:"params"`
	References     []Reference `json:"references,omitempty"`
}

// barrierTypes stops upstream traversal at intercept nodes: an intercept's
// effective output stands in for its entire subtree, so the raw fragments it
// was assembled from must not reach a downstream sink.
var barrierTypes = map[string]bool{TypePrompt: true}

// Assemble resolves the graph upstream of sinkID into a Result. It is
// deterministic for a fixed snapshot and never fails: an unknown sink, a
// cyclic graph, or an empty upstream all yield a well-defined Result.
func Assemble(sinkID string, snap *graph.Snapshot, defaults Defaults) Result {
	visits := snap.CollectUpstream(sinkID, barrierTypes)

	var fragments []Fragment
	var references []Reference
	for _, v := range visits {
		if v.Node.NodeType == TypeReference {
			var p ReferencePayload
			_ = json.Unmarshal(v.Node.Payload, &p)
			if p.ImageID != "" {
				references = append(references, Reference{
					NodeID:   v.Node.ID,
					ImageID:  p.ImageID,
					Category: p.Category,
				})
			}
			continue
		}
		if v.Role == graph.RoleReference {
			// Reference-role connections attach assets, never text.
			continue
		}
		for _, f := range Produce(v.Node.NodeType, v.Node.Payload) {
			// Config-role nodes may only feed the negative stream.
			if v.Role == graph.RoleConfig && f.Category != CategoryNegative {
				continue
			}
			fragments = append(fragments, f)
		}
	}

	prompt, negative := Compose(fragments)
	return Result{
		Prompt:         prompt,
		NegativePrompt: negative,
		Params:         resolveParams(visits, defaults),
		References:     references,
	}
}
