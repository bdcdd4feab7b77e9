package db

// Node represents a row in the nodes table. Payload holds the type-specific
// fields as a JSON document; its shape is owned by the assemble package.
type Node struct {
	ID        string  `json:"id"`
	NodeType  string  `json:"type"` // "character", "shot", "parameters", "generate", ...
	Title     string  `json:"title"`
	Payload   string  `json:"payload"`
	PosX      float64 `json:"pos_x"`
	PosY      float64 `json:"pos_y"`
	CreatedAt int64   `json:"created_at"` // Unix millis
	UpdatedAt int64   `json:"updated_at"` // Unix millis
}

// Edge represents a row in the edges table. TargetHandle carries the semantic
// role of the connection at the target node: "in" (narrative), "ref", "config".
type Edge struct {
	ID           string `json:"id"`
	SourceID     string `json:"source_id"`
	SourceHandle string `json:"source_handle"`
	TargetID     string `json:"target_id"`
	TargetHandle string `json:"target_handle"`
	CreatedAt    int64  `json:"created_at"` // Unix millis
}

// Image represents a generated image blob attached to a node.
type Image struct {
	ID        string `json:"id"`
	NodeID    string `json:"node_id"`
	Model     string `json:"model"`
	Prompt    string `json:"prompt"`
	MIME      string `json:"mime"`
	Data      []byte `json:"-"`
	CreatedAt int64  `json:"created_at"` // Unix millis
}
