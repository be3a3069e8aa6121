package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Encoder serializes a document to one output format.
type Encoder func(w io.Writer, doc *Document) error

// EncodeJSON writes the document as indented JSON.
func EncodeJSON(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}

// EncodeYAML writes the document as YAML.
func EncodeYAML(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		_ = enc.Close()
		return err
	}

	return enc.Close()
}

// EncoderFor returns the encoder and file extension for a format name.
func EncoderFor(format string) (Encoder, string, error) {
	switch format {
	case "json":
		return EncodeJSON, ".json", nil
	case "yaml":
		return EncodeYAML, ".yaml", nil
	default:
		return nil, "", fmt.Errorf("unsupported output format %q", format)
	}
}
