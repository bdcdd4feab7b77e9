package assemble

import (
	"encoding/json"

	"promptcanvas/easel/internal/graph"
)

// Params is the resolved generation parameter set. Model and AspectRatio are
// always populated (from a parameters node or the defaults); the rest stay
// nil unless a parameters node supplied them.
type Params struct {
	Model       string   `json:"model"`
	AspectRatio string   `json:"aspect_ratio"`
	Seed        *int64   `json:"seed,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	ImageCount  *int     `json:"image_count,omitempty"`
}

// Defaults supplies the fallback parameters when no parameters node is
// reachable from the sink.
type Defaults struct {
	Model       string
	AspectRatio string
}

// resolveParams selects the first parameters node in traversal order. When
// several are reachable the first discovered wins; that tie-break is policy,
// not an error. Reference-role nodes never carry configuration.
func resolveParams(visits []graph.Visit, defaults Defaults) Params {
	params := Params{
		Model:       defaults.Model,
		AspectRatio: defaults.AspectRatio,
	}

	for _, v := range visits {
		if v.Node.NodeType != TypeParameters || v.Role == graph.RoleReference {
			continue
		}
		var p ParamsPayload
		_ = json.Unmarshal(v.Node.Payload, &p)
		if p.Model != "" {
			params.Model = p.Model
		}
		if p.AspectRatio != "" {
			params.AspectRatio = p.AspectRatio
		}
		params.Seed = p.Seed
		params.Temperature = p.Temperature
		params.ImageCount = p.ImageCount
		break
	}

	return params
}
