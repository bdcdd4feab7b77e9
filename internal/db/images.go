package db

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// SaveImage stores a generated image blob for a node and returns its UUID.
func (d *DB) SaveImage(nodeID, model, prompt, mime string, data []byte) (string, error) {
	if mime == "" {
		mime = "image/png"
	}
	id := uuid.New().String()
	_, err := d.conn.Exec(`
		INSERT INTO images (id, node_id, model, prompt, mime, data, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, nodeID, model, prompt, mime, data, nowMillis())
	if err != nil {
		return "", fmt.Errorf("saving image for node %s: %w", nodeID, err)
	}
	return id, nil
}

// GetImage returns a single image by ID, or nil if not found.
func (d *DB) GetImage(id string) (*Image, error) {
	row := d.conn.QueryRow(`
		SELECT id, node_id, model, prompt, mime, data, created_at
		FROM images WHERE id = ?
	`, id)

	var img Image
	err := row.Scan(&img.ID, &img.NodeID, &img.Model, &img.Prompt, &img.MIME, &img.Data, &img.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

// ImagesForNode returns all images attached to a node, newest first, without blob data.
func (d *DB) ImagesForNode(nodeID string) ([]Image, error) {
	rows, err := d.conn.Query(`
		SELECT id, node_id, model, prompt, mime, created_at
		FROM images WHERE node_id = ? ORDER BY created_at DESC, id
	`, nodeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []Image
	for rows.Next() {
		var img Image
		if err := rows.Scan(&img.ID, &img.NodeID, &img.Model, &img.Prompt, &img.MIME, &img.CreatedAt); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}
