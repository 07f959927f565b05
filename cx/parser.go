package cx

import (
	"encoding/json"
	"io"

	"github.com/graphkit/cxport/errors"
)

// ParseDocument consumes a CX document: a JSON array of single-key
// objects, each key naming an aspect. Repeated fragments of the same
// aspect are concatenated (CX permits chunked emission), unrecognized
// aspects are skipped, and every decode failure wraps
// errors.ErrMalformedInput — the only fatal condition of the pipeline.
func ParseDocument(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, malformed(err, "failed to read CX document")
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, errors.NewMalformedInput("CX document must be a JSON array, got %v", tok)
	}

	doc := &Document{}
	for dec.More() {
		if err := parseFragment(dec, doc); err != nil {
			return nil, err
		}
	}

	if _, err := dec.Token(); err != nil {
		return nil, malformed(err, "unterminated CX document")
	}
	return doc, nil
}

// parseFragment consumes one single-key aspect object
func parseFragment(dec *json.Decoder, doc *Document) error {
	if err := expectDelim(dec, '{', "aspect fragment"); err != nil {
		return err
	}
	if !dec.More() {
		return errors.NewMalformedInput("aspect fragment must contain exactly one aspect")
	}

	tok, err := dec.Token()
	if err != nil {
		return malformed(err, "failed to read aspect name")
	}
	name, ok := tok.(string)
	if !ok {
		return errors.NewMalformedInput("aspect name must be a string, got %v", tok)
	}

	switch name {
	case AspectNodes:
		err = parseNodes(dec, doc)
	case AspectEdges:
		err = parseEdges(dec, doc)
	case AspectNodeAttributes:
		doc.NodeAttributes, err = parseAttributes(dec, name, doc.NodeAttributes)
	case AspectEdgeAttributes:
		doc.EdgeAttributes, err = parseAttributes(dec, name, doc.EdgeAttributes)
	case AspectNetworkAttributes:
		doc.NetworkAttributes, err = parseAttributes(dec, name, doc.NetworkAttributes)
	default:
		err = skipValue(dec)
	}
	if err != nil {
		return err
	}

	if dec.More() {
		return errors.NewMalformedInput("aspect fragment %q must contain exactly one aspect", name)
	}
	if _, err := dec.Token(); err != nil {
		return malformed(err, "unterminated aspect fragment")
	}
	return nil
}

func parseNodes(dec *json.Decoder, doc *Document) error {
	if err := expectDelim(dec, '[', AspectNodes); err != nil {
		return err
	}
	for dec.More() {
		node, err := parseNode(dec)
		if err != nil {
			return err
		}
		doc.Nodes = append(doc.Nodes, node)
	}
	if _, err := dec.Token(); err != nil {
		return malformed(err, "unterminated nodes aspect")
	}
	return nil
}

// parseNode reads node fields in document order so inline properties
// (n, r, anything extra) keep their positions
func parseNode(dec *json.Decoder) (Node, error) {
	var node Node
	if err := expectDelim(dec, '{', "node"); err != nil {
		return node, err
	}
	for dec.More() {
		key, err := readKey(dec, "node")
		if err != nil {
			return node, err
		}
		switch key {
		case AtIDKey:
			if err := dec.Decode(&node.ID); err != nil {
				return node, malformed(err, "invalid node @id")
			}
		default:
			var v Value
			if err := dec.Decode(&v); err != nil {
				return node, malformed(err, "invalid node property "+key)
			}
			node.Properties.Set(key, v)
		}
	}
	if _, err := dec.Token(); err != nil {
		return node, malformed(err, "unterminated node")
	}
	return node, nil
}

func parseEdges(dec *json.Decoder, doc *Document) error {
	if err := expectDelim(dec, '[', AspectEdges); err != nil {
		return err
	}
	for dec.More() {
		edge, err := parseEdge(dec)
		if err != nil {
			return err
		}
		doc.Edges = append(doc.Edges, edge)
	}
	if _, err := dec.Token(); err != nil {
		return malformed(err, "unterminated edges aspect")
	}
	return nil
}

func parseEdge(dec *json.Decoder) (Edge, error) {
	var edge Edge
	if err := expectDelim(dec, '{', "edge"); err != nil {
		return edge, err
	}
	for dec.More() {
		key, err := readKey(dec, "edge")
		if err != nil {
			return edge, err
		}
		switch key {
		case AtIDKey:
			if err := dec.Decode(&edge.ID); err != nil {
				return edge, malformed(err, "invalid edge @id")
			}
		case SourceKey:
			if err := dec.Decode(&edge.Source); err != nil {
				return edge, malformed(err, "invalid edge source")
			}
		case TargetKey:
			if err := dec.Decode(&edge.Target); err != nil {
				return edge, malformed(err, "invalid edge target")
			}
		default:
			var v Value
			if err := dec.Decode(&v); err != nil {
				return edge, malformed(err, "invalid edge property "+key)
			}
			edge.Properties.Set(key, v)
		}
	}
	if _, err := dec.Token(); err != nil {
		return edge, malformed(err, "unterminated edge")
	}
	return edge, nil
}

func parseAttributes(dec *json.Decoder, aspect string, records []AttributeRecord) ([]AttributeRecord, error) {
	if err := expectDelim(dec, '[', aspect); err != nil {
		return records, err
	}
	for dec.More() {
		rec, err := parseAttribute(dec, aspect)
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
	if _, err := dec.Token(); err != nil {
		return records, malformed(err, "unterminated "+aspect+" aspect")
	}
	return records, nil
}

func parseAttribute(dec *json.Decoder, aspect string) (AttributeRecord, error) {
	var rec AttributeRecord
	if err := expectDelim(dec, '{', aspect+" record"); err != nil {
		return rec, err
	}
	for dec.More() {
		key, err := readKey(dec, aspect+" record")
		if err != nil {
			return rec, err
		}
		switch key {
		case OwnerKey:
			if err := dec.Decode(&rec.Owner); err != nil {
				return rec, malformed(err, "invalid "+aspect+" po")
			}
		case NameKey:
			if err := dec.Decode(&rec.Name); err != nil {
				return rec, malformed(err, "invalid "+aspect+" name")
			}
		case ValueKey:
			if err := dec.Decode(&rec.Value); err != nil {
				return rec, malformed(err, "invalid "+aspect+" value")
			}
		case DeclaredTypeKey:
			if err := dec.Decode(&rec.DeclaredType); err != nil {
				return rec, malformed(err, "invalid "+aspect+" declared type")
			}
		default:
			// Subnetwork scoping ("s") and any future fields are ignored
			if err := skipValue(dec); err != nil {
				return rec, err
			}
		}
	}
	if _, err := dec.Token(); err != nil {
		return rec, malformed(err, "unterminated "+aspect+" record")
	}
	rec.Value = rec.Value.CoerceDeclared(rec.DeclaredType)
	return rec, nil
}

// skipValue consumes one JSON value of any shape
func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return malformed(err, "failed to skip aspect value")
	}
	d, ok := tok.(json.Delim)
	if !ok {
		return nil
	}
	depth := 0
	if d == '[' || d == '{' {
		depth = 1
	}
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return malformed(err, "failed to skip aspect value")
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '[', '{':
				depth++
			case ']', '}':
				depth--
			}
		}
	}
	return nil
}

func expectDelim(dec *json.Decoder, want json.Delim, context string) error {
	tok, err := dec.Token()
	if err != nil {
		return malformed(err, "failed to read "+context)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return errors.NewMalformedInput("%s must start with %q, got %v", context, want.String(), tok)
	}
	return nil
}

func readKey(dec *json.Decoder, context string) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", malformed(err, "failed to read "+context+" field")
	}
	key, ok := tok.(string)
	if !ok {
		return "", errors.NewMalformedInput("%s field name must be a string, got %v", context, tok)
	}
	return key, nil
}

// malformed wraps a decode failure so callers can match it with
// errors.IsMalformedInput
func malformed(err error, context string) error {
	return errors.Wrap(errors.Wrap(errors.ErrMalformedInput, err.Error()), context)
}
