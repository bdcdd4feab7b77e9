package db

import "database/sql"

// scanNode scans a row into a Node. The row must have all 8 columns in standard order.
func scanNode(scanner interface{ Scan(dest ...any) error }) (Node, error) {
	var n Node
	err := scanner.Scan(
		&n.ID, &n.NodeType, &n.Title, &n.Payload,
		&n.PosX, &n.PosY, &n.CreatedAt, &n.UpdatedAt,
	)
	return n, err
}

// AllNodes returns all nodes ordered by creation time (ID breaks ties)
func (d *DB) AllNodes() ([]Node, error) {
	rows, err := d.conn.Query(`
		SELECT id, type, title, payload, pos_x, pos_y, created_at, updated_at
		FROM nodes ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var nodes []Node
	for rows.Next() {
		n, err := scanNode(rows)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, rows.Err()
}

// GetNode returns a single node by ID, or nil if not found
func (d *DB) GetNode(id string) (*Node, error) {
	row := d.conn.QueryRow(`
		SELECT id, type, title, payload, pos_x, pos_y, created_at, updated_at
		FROM nodes WHERE id = ?
	`, id)

	n, err := scanNode(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// SearchByIDPrefix finds nodes whose ID starts with the given prefix.
func (d *DB) SearchByIDPrefix(prefix string, limit int) ([]Node, error) {
	rows, err := d.conn.Query(`
		SELECT id, type, title, payload, pos_x, pos_y, created_at, updated_at
		FROM nodes WHERE id LIKE ? ORDER BY created_at, id LIMIT ?
	`, prefix+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var nodes []Node
	for rows.Next() {
		n, err := scanNode(rows)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, rows.Err()
}

// SearchByTitle finds nodes whose title contains the given term (case-insensitive).
func (d *DB) SearchByTitle(term string, limit int) ([]Node, error) {
	rows, err := d.conn.Query(`
		SELECT id, type, title, payload, pos_x, pos_y, created_at, updated_at
		FROM nodes WHERE title LIKE ? COLLATE NOCASE ORDER BY created_at, id LIMIT ?
	`, "%"+term+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var nodes []Node
	for rows.Next() {
		n, err := scanNode(rows)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, rows.Err()
}
