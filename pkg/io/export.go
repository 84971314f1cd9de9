package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/squashgraph/pkg/graph"
)

type document struct {
	Nodes        []node        `json:"nodes"`
	Edges        []edge        `json:"edges"`
	Replacements []replacement `json:"replacements"`
}

type node struct {
	ID         string `json:"id"`
	App        string `json:"app"`
	Name       string `json:"name"`
	Squash     bool   `json:"squash,omitempty"`
	Replaced   bool   `json:"replaced,omitempty"`
	CrossGroup bool   `json:"cross_group,omitempty"`
}

type edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type replacement struct {
	Replaced string `json:"replaced"`
	By       string `json:"by"`
}

// WriteJSON encodes g and writes it to w.
func WriteJSON(g *graph.Graph, w io.Writer) error {
	out := document{
		Nodes:        []node{},
		Edges:        []edge{},
		Replacements: []replacement{},
	}

	for _, id := range g.VisibleNodes() {
		out.Nodes = append(out.Nodes, node{
			ID:         id.String(),
			App:        id.App,
			Name:       id.Name,
			Squash:     g.IsSquash(id),
			Replaced:   g.IsReplaced(id),
			CrossGroup: g.IsCrossGroup(id),
		})
	}
	for _, e := range g.Edges() {
		if g.IsHidden(e.From) || g.IsHidden(e.To) {
			continue
		}
		out.Edges = append(out.Edges, edge{From: e.From.String(), To: e.To.String()})
	}
	for _, id := range g.Replaced() {
		by, _ := g.ReplacedBy(id)
		out.Replacements = append(out.Replacements, replacement{Replaced: id.String(), By: by.String()})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes g to a JSON file at path.
func ExportJSON(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(g, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
