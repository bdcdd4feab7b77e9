package db

import (
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := OpenDB(filepath.Join(t.TempDir(), "easel.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { d.Close() })
	return d
}

func TestCreateAndGetNode(t *testing.T) {
	d := setupTestDB(t)

	id, err := d.CreateNode("character", "Mira", CreateNodeOpts{
		Payload: map[string]string{"name": "Mira", "description": "tall woman"},
		PosX:    100, PosY: 50,
	})
	if err != nil {
		t.Fatal(err)
	}

	node, err := d.GetNode(id)
	if err != nil {
		t.Fatal(err)
	}
	if node == nil {
		t.Fatal("node not found after create")
	}
	if node.NodeType != "character" || node.Title != "Mira" {
		t.Errorf("got %+v", node)
	}
	if node.PosX != 100 || node.PosY != 50 {
		t.Errorf("position not stored: %+v", node)
	}
	if node.CreatedAt == 0 || node.UpdatedAt == 0 {
		t.Errorf("timestamps not set: %+v", node)
	}
}

func TestGetNode_Missing(t *testing.T) {
	d := setupTestDB(t)
	node, err := d.GetNode("ghost")
	if err != nil {
		t.Fatal(err)
	}
	if node != nil {
		t.Errorf("expected nil for missing node, got %+v", node)
	}
}

func TestCreateNode_PayloadVariants(t *testing.T) {
	d := setupTestDB(t)

	tests := []struct {
		name    string
		payload any
		want    string
	}{
		{"nil", nil, "{}"},
		{"empty string", "", "{}"},
		{"json string", `{"preset":"wide"}`, `{"preset":"wide"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := d.CreateNode("shot", "s", CreateNodeOpts{Payload: tt.payload})
			if err != nil {
				t.Fatal(err)
			}
			node, err := d.GetNode(id)
			if err != nil {
				t.Fatal(err)
			}
			if node.Payload != tt.want {
				t.Errorf("got %q, want %q", node.Payload, tt.want)
			}
		})
	}

	if _, err := d.CreateNode("shot", "bad", CreateNodeOpts{Payload: "not json"}); err == nil {
		t.Error("invalid JSON payload string should be rejected")
	}
}

func TestUpdateNodePayload(t *testing.T) {
	d := setupTestDB(t)
	id, err := d.CreateNode("negative", "neg", CreateNodeOpts{})
	if err != nil {
		t.Fatal(err)
	}

	if err := d.UpdateNodePayload(id, map[string]string{"text": "blurry"}); err != nil {
		t.Fatal(err)
	}
	node, _ := d.GetNode(id)
	if node.Payload != `{"text":"blurry"}` {
		t.Errorf("got %q", node.Payload)
	}

	if err := d.UpdateNodePayload("ghost", nil); err == nil {
		t.Error("updating a missing node should fail")
	}
}

func TestSetNodePosition(t *testing.T) {
	d := setupTestDB(t)
	id, err := d.CreateNode("character", "Mira", CreateNodeOpts{PosX: 10, PosY: 20})
	if err != nil {
		t.Fatal(err)
	}

	if err := d.SetNodePosition(id, 300, -45.5); err != nil {
		t.Fatal(err)
	}
	node, _ := d.GetNode(id)
	if node.PosX != 300 || node.PosY != -45.5 {
		t.Errorf("position not updated: %+v", node)
	}

	if err := d.SetNodePosition("ghost", 0, 0); err == nil {
		t.Error("moving a missing node should fail")
	}
}

func TestEdges_OrderAndCascade(t *testing.T) {
	d := setupTestDB(t)
	a, _ := d.CreateNode("character", "a", CreateNodeOpts{})
	b, _ := d.CreateNode("setting", "b", CreateNodeOpts{})
	sink, _ := d.CreateNode("generate", "sink", CreateNodeOpts{})

	e1, err := d.CreateEdge(a, "out", sink, "in")
	if err != nil {
		t.Fatal(err)
	}
	e2, err := d.CreateEdge(b, "out", sink, "config")
	if err != nil {
		t.Fatal(err)
	}

	edges, err := d.EdgesInto(sink)
	if err != nil {
		t.Fatal(err)
	}
	if len(edges) != 2 {
		t.Fatalf("expected 2 edges, got %d", len(edges))
	}
	handles := map[string]string{}
	for _, e := range edges {
		handles[e.ID] = e.TargetHandle
	}
	if handles[e1] != "in" || handles[e2] != "config" {
		t.Errorf("handles not stored: %v", handles)
	}

	// Deleting a node cascades to its edges
	if err := d.DeleteNode(a); err != nil {
		t.Fatal(err)
	}
	edges, _ = d.EdgesInto(sink)
	if len(edges) != 1 {
		t.Errorf("edge to deleted node should be gone, got %d", len(edges))
	}
}

func TestCreateEdge_MissingEndpoint(t *testing.T) {
	d := setupTestDB(t)
	a, _ := d.CreateNode("character", "a", CreateNodeOpts{})
	if _, err := d.CreateEdge(a, "out", "ghost", "in"); err == nil {
		t.Error("edge to a missing node should fail the foreign key check")
	}
}

func TestSearchByTitle(t *testing.T) {
	d := setupTestDB(t)
	d.CreateNode("character", "Mira the pilot", CreateNodeOpts{})
	d.CreateNode("setting", "Rainy street", CreateNodeOpts{})

	matches, err := d.SearchByTitle("mira", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 || matches[0].Title != "Mira the pilot" {
		t.Errorf("got %+v", matches)
	}
}

func TestImages_SaveAndLoad(t *testing.T) {
	d := setupTestDB(t)
	sink, _ := d.CreateNode("generate", "sink", CreateNodeOpts{})

	data := []byte{0x89, 0x50, 0x4e, 0x47}
	id, err := d.SaveImage(sink, "dall-e-3", "a prompt", "", data)
	if err != nil {
		t.Fatal(err)
	}

	img, err := d.GetImage(id)
	if err != nil {
		t.Fatal(err)
	}
	if img == nil {
		t.Fatal("image not found")
	}
	if img.MIME != "image/png" {
		t.Errorf("empty mime should default to png, got %q", img.MIME)
	}
	if string(img.Data) != string(data) {
		t.Errorf("blob mismatch")
	}

	list, err := d.ImagesForNode(sink)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].ID != id {
		t.Errorf("got %+v", list)
	}
	if len(list[0].Data) != 0 {
		t.Error("listing should not load blob data")
	}
}
