package network

import (
	"strings"
	"testing"

	"github.com/transitlab/netmat/pkg/errors"
)

const sampleNetwork = `<?xml version="1.0" encoding="utf-8"?>
<network name="sample">
  <nodes>
    <node id="A" x="0" y="0"/>
    <node id="B" x="1" y="1"/>
    <node id="C" x="2" y="2"/>
  </nodes>
  <links capperiod="01:00:00">
    <link id="1" from="A" to="B" capacity="100" freespeed="2" length="0.005"/>
    <link id="2" from="B" to="C" capacity="50" freespeed="5" length="5"/>
  </links>
</network>`

func TestParse(t *testing.T) {
	net, err := Parse([]byte(sampleNetwork), DefaultOptions())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(net.Nodes) != 3 {
		t.Fatalf("len(Nodes) = %d, want 3", len(net.Nodes))
	}
	if len(net.Links) != 2 {
		t.Fatalf("len(Links) = %d, want 2", len(net.Links))
	}

	if net.Nodes[0].ID != "A" || net.Nodes[1].ID != "B" || net.Nodes[2].ID != "C" {
		t.Errorf("node order = %s,%s,%s, want A,B,C", net.Nodes[0].ID, net.Nodes[1].ID, net.Nodes[2].ID)
	}
	if got := net.Nodes[1].Longitude(); got != 1 {
		t.Errorf("Nodes[1].Longitude() = %v, want 1", got)
	}
	if got := net.Nodes[2].Latitude(); got != 2 {
		t.Errorf("Nodes[2].Latitude() = %v, want 2", got)
	}

	first := net.Links[0]
	if first.From != "A" || first.To != "B" {
		t.Errorf("Links[0] = %s->%s, want A->B", first.From, first.To)
	}
	if first.Capacity != 100 || first.FreeSpeed != 2 {
		t.Errorf("Links[0] capacity/freespeed = %v/%v, want 100/2", first.Capacity, first.FreeSpeed)
	}
}

func TestParseUnitCorrection(t *testing.T) {
	tests := []struct {
		name   string
		length string
		want   float64
	}{
		{"near-zero scaled", "0.005", 5},
		{"zero passes through", "0", 0},
		{"threshold passes through", "0.01", 0.01},
		{"normal passes through", "5", 5},
		{"just below threshold", "0.0099", 9.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `<network><nodes><node id="A" x="0" y="0"/><node id="B" x="1" y="1"/></nodes>` +
				`<links><link from="A" to="B" capacity="1" freespeed="1" length="` + tt.length + `"/></links></network>`
			net, err := Parse([]byte(doc), DefaultOptions())
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			got := net.Links[0].Length
			if diff := got - tt.want; diff > 1e-12 || diff < -1e-12 {
				t.Errorf("Length = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseMissingAttribute(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			"node without y",
			`<network><nodes><node id="A" x="0"/></nodes><links/></network>`,
		},
		{
			"link without freespeed",
			`<network><nodes><node id="A" x="0" y="0"/></nodes>` +
				`<links><link from="A" to="A" capacity="1" length="1"/></links></network>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), DefaultOptions())
			if err == nil {
				t.Fatal("Parse() error = nil, want schema error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidSchema) {
				t.Errorf("error code = %v, want INVALID_SCHEMA", errors.GetCode(err))
			}
		})
	}
}

func TestParseNonNumericAttribute(t *testing.T) {
	doc := `<network><nodes><node id="A" x="east" y="0"/></nodes><links/></network>`
	_, err := Parse([]byte(doc), DefaultOptions())
	if err == nil {
		t.Fatal("Parse() error = nil, want schema error")
	}
	if !errors.Is(err, errors.ErrCodeInvalidSchema) {
		t.Errorf("error code = %v, want INVALID_SCHEMA", errors.GetCode(err))
	}
}

func TestParseMalformedDocument(t *testing.T) {
	_, err := Parse([]byte("<network><nodes>"), DefaultOptions())
	if err == nil {
		t.Fatal("Parse() error = nil, want format error")
	}
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %v, want INVALID_FORMAT", errors.GetCode(err))
	}
}

func TestParseIgnoresUnknownSiblings(t *testing.T) {
	doc := `<network>
  <attributes><attribute name="coordinateReferenceSystem">EPSG:4326</attribute></attributes>
  <nodes><node id="A" x="0" y="0"/></nodes>
  <links/>
</network>`
	net, err := Parse([]byte(doc), DefaultOptions())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(net.Nodes) != 1 || len(net.Links) != 0 {
		t.Errorf("parsed %d nodes, %d links, want 1, 0", len(net.Nodes), len(net.Links))
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile("testdata/does-not-exist.xml", DefaultOptions())
	if err == nil {
		t.Fatal("ParseFile() error = nil, want IO error")
	}
	if !errors.Is(err, errors.ErrCodeIORead) {
		t.Errorf("error code = %v, want IO_READ", errors.GetCode(err))
	}
}

func TestParseLinkOrderPreserved(t *testing.T) {
	var links strings.Builder
	links.WriteString(`<network><nodes><node id="A" x="0" y="0"/><node id="B" x="1" y="1"/></nodes><links>`)
	links.WriteString(`<link from="A" to="B" capacity="1" freespeed="1" length="1"/>`)
	links.WriteString(`<link from="B" to="A" capacity="2" freespeed="1" length="1"/>`)
	links.WriteString(`<link from="A" to="B" capacity="3" freespeed="1" length="1"/>`)
	links.WriteString(`</links></network>`)

	net, err := Parse([]byte(links.String()), DefaultOptions())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	caps := []float64{net.Links[0].Capacity, net.Links[1].Capacity, net.Links[2].Capacity}
	if caps[0] != 1 || caps[1] != 2 || caps[2] != 3 {
		t.Errorf("link capacities in order = %v, want [1 2 3]", caps)
	}
}
