package network

import (
	"encoding/xml"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/paulmach/orb"

	"github.com/transitlab/netmat/pkg/errors"
)

// xmlNetwork mirrors the MATSim network file layout. Element groups other
// than <nodes> and <links> are ignored by the decoder.
type xmlNetwork struct {
	XMLName xml.Name  `xml:"network"`
	Nodes   []xmlNode `xml:"nodes>node"`
	Links   []xmlLink `xml:"links>link"`
}

type xmlNode struct {
	ID string `xml:"id,attr" validate:"required"`
	X  string `xml:"x,attr" validate:"required"`
	Y  string `xml:"y,attr" validate:"required"`
}

type xmlLink struct {
	From      string `xml:"from,attr" validate:"required"`
	To        string `xml:"to,attr" validate:"required"`
	Capacity  string `xml:"capacity,attr" validate:"required"`
	FreeSpeed string `xml:"freespeed,attr" validate:"required"`
	Length    string `xml:"length,attr" validate:"required"`
}

// ParseFile reads and parses a MATSim network XML file.
// See [Parse] for the validation and coercion rules.
func ParseFile(path string, opts Options) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIORead, err, "read %s", path)
	}
	return Parse(data, opts)
}

// Parse decodes a MATSim network document into typed records.
//
// Attributes are coerced eagerly: a missing attribute or a non-numeric value
// is an INVALID_SCHEMA error naming the offending record. The link-length
// unit-correction rule from opts is applied while parsing, so Link.Length
// already holds the corrected value. Record order follows document order.
func Parse(data []byte, opts Options) (*Network, error) {
	if opts.LengthThreshold == 0 && opts.LengthFactor == 0 {
		opts = DefaultOptions()
	}

	var doc xmlNetwork
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode network document")
	}

	v := validator.New()
	net := &Network{
		Nodes: make([]Node, 0, len(doc.Nodes)),
		Links: make([]Link, 0, len(doc.Links)),
	}

	for i, rec := range doc.Nodes {
		if err := v.Struct(rec); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSchema, err, "node record %d (id %q)", i, rec.ID)
		}
		x, err := parseAttr("node", i, "x", rec.X)
		if err != nil {
			return nil, err
		}
		y, err := parseAttr("node", i, "y", rec.Y)
		if err != nil {
			return nil, err
		}
		net.Nodes = append(net.Nodes, Node{ID: rec.ID, Point: orb.Point{x, y}})
	}

	for i, rec := range doc.Links {
		if err := v.Struct(rec); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSchema, err, "link record %d (%s->%s)", i, rec.From, rec.To)
		}
		capacity, err := parseAttr("link", i, "capacity", rec.Capacity)
		if err != nil {
			return nil, err
		}
		speed, err := parseAttr("link", i, "freespeed", rec.FreeSpeed)
		if err != nil {
			return nil, err
		}
		length, err := parseAttr("link", i, "length", rec.Length)
		if err != nil {
			return nil, err
		}
		net.Links = append(net.Links, Link{
			From:      rec.From,
			To:        rec.To,
			Capacity:  capacity,
			FreeSpeed: speed,
			Length:    opts.correctLength(length),
		})
	}

	return net, nil
}

// parseAttr coerces a single string attribute to float64.
func parseAttr(kind string, record int, attr, raw string) (float64, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidSchema, err, "%s record %d: attribute %q", kind, record, attr)
	}
	return f, nil
}
