package render

import (
	"strings"
	"testing"

	"github.com/paulmach/orb"

	"github.com/transitlab/netmat/pkg/network"
)

func testNetwork() *network.Network {
	return &network.Network{
		Nodes: []network.Node{
			{ID: "A", Point: orb.Point{0, 0}},
			{ID: "B", Point: orb.Point{1, 1}},
		},
		Links: []network.Link{
			{From: "A", To: "B", Capacity: 100, FreeSpeed: 2, Length: 5},
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testNetwork(), Options{})

	if !strings.HasPrefix(dot, "digraph network {") {
		t.Errorf("DOT does not start with digraph header:\n%s", dot)
	}
	for _, want := range []string{`"A" [label="A"];`, `"B" [label="B"];`, `"A" -> "B";`} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if !strings.HasSuffix(strings.TrimSpace(dot), "}") {
		t.Error("DOT not closed")
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(testNetwork(), Options{Detailed: true})

	if !strings.Contains(dot, "(1, 1)") {
		t.Errorf("detailed DOT missing node coordinates:\n%s", dot)
	}
	if !strings.Contains(dot, "len 5 / v 2 / cap 100") {
		t.Errorf("detailed DOT missing edge attributes:\n%s", dot)
	}
}

func TestToDOTEmptyNetwork(t *testing.T) {
	dot := ToDOT(&network.Network{}, Options{})
	if !strings.Contains(dot, "digraph network {") {
		t.Errorf("empty network should still produce a digraph:\n%s", dot)
	}
}
