package db

// scanEdge scans a row into an Edge. The row must have all 6 columns in standard order.
func scanEdge(scanner interface{ Scan(dest ...any) error }) (Edge, error) {
	var e Edge
	err := scanner.Scan(
		&e.ID, &e.SourceID, &e.SourceHandle,
		&e.TargetID, &e.TargetHandle, &e.CreatedAt,
	)
	return e, err
}

// AllEdges returns all edges in creation order. This order is what makes
// upstream traversal deterministic, so it must be stable across calls.
func (d *DB) AllEdges() ([]Edge, error) {
	rows, err := d.conn.Query(`
		SELECT id, source_id, source_handle, target_id, target_handle, created_at
		FROM edges ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var edges []Edge
	for rows.Next() {
		e, err := scanEdge(rows)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

// EdgesInto returns all edges whose target is the given node, in creation order.
func (d *DB) EdgesInto(nodeID string) ([]Edge, error) {
	rows, err := d.conn.Query(`
		SELECT id, source_id, source_handle, target_id, target_handle, created_at
		FROM edges WHERE target_id = ? ORDER BY created_at, id
	`, nodeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var edges []Edge
	for rows.Next() {
		e, err := scanEdge(rows)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

// EdgesFrom returns all edges whose source is the given node, in creation order.
func (d *DB) EdgesFrom(nodeID string) ([]Edge, error) {
	rows, err := d.conn.Query(`
		SELECT id, source_id, source_handle, target_id, target_handle, created_at
		FROM edges WHERE source_id = ? ORDER BY created_at, id
	`, nodeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var edges []Edge
	for rows.Next() {
		e, err := scanEdge(rows)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}
