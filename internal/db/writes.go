package db

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

func nowMillis() int64 { return time.Now().UnixMilli() }

// marshalPayload serializes a payload value to its JSON column form.
// A nil payload becomes the empty document.
func marshalPayload(payload any) (string, error) {
	if payload == nil {
		return "{}", nil
	}
	if s, ok := payload.(string); ok {
		if s == "" {
			return "{}", nil
		}
		if !json.Valid([]byte(s)) {
			return "", fmt.Errorf("payload is not valid JSON: %q", s)
		}
		return s, nil
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling payload: %w", err)
	}
	return string(b), nil
}

// CreateNodeOpts holds optional fields for node creation
type CreateNodeOpts struct {
	Payload any // struct, map, or JSON string
	PosX    float64
	PosY    float64
}

// CreateNode inserts a node and returns its UUID.
func (d *DB) CreateNode(nodeType, title string, opts CreateNodeOpts) (string, error) {
	payload, err := marshalPayload(opts.Payload)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	now := nowMillis()
	_, err = d.conn.Exec(`
		INSERT INTO nodes (id, type, title, payload, pos_x, pos_y, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, nodeType, title, payload, opts.PosX, opts.PosY, now, now)
	if err != nil {
		return "", fmt.Errorf("creating node: %w", err)
	}
	return id, nil
}

// UpdateNodePayload replaces a node's payload and bumps its updated_at.
func (d *DB) UpdateNodePayload(id string, payload any) error {
	p, err := marshalPayload(payload)
	if err != nil {
		return err
	}
	res, err := d.conn.Exec(`
		UPDATE nodes SET payload = ?, updated_at = ? WHERE id = ?
	`, p, nowMillis(), id)
	if err != nil {
		return fmt.Errorf("updating node %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("node not found: %s", id)
	}
	return nil
}

// SetNodePosition updates a node's canvas coordinates.
func (d *DB) SetNodePosition(id string, x, y float64) error {
	res, err := d.conn.Exec(`
		UPDATE nodes SET pos_x = ?, pos_y = ?, updated_at = ? WHERE id = ?
	`, x, y, nowMillis(), id)
	if err != nil {
		return fmt.Errorf("moving node %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("node not found: %s", id)
	}
	return nil
}

// DeleteNode deletes a node. Edges and images are cascade-deleted by SQLite.
func (d *DB) DeleteNode(id string) error {
	res, err := d.conn.Exec(`DELETE FROM nodes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting node %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("node not found: %s", id)
	}
	return nil
}

// CreateEdge inserts an edge and returns its UUID. Both endpoints must exist.
func (d *DB) CreateEdge(sourceID, sourceHandle, targetID, targetHandle string) (string, error) {
	if sourceHandle == "" {
		sourceHandle = "out"
	}
	if targetHandle == "" {
		targetHandle = "in"
	}

	id := uuid.New().String()
	_, err := d.conn.Exec(`
		INSERT INTO edges (id, source_id, source_handle, target_id, target_handle, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, sourceID, sourceHandle, targetID, targetHandle, nowMillis())
	if err != nil {
		return "", fmt.Errorf("creating edge %s -> %s: %w", sourceID, targetID, err)
	}
	return id, nil
}

// DeleteEdge deletes an edge by ID.
func (d *DB) DeleteEdge(id string) error {
	res, err := d.conn.Exec(`DELETE FROM edges WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting edge %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("edge not found: %s", id)
	}
	return nil
}
