package mods

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format selects how Encode renders the list.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for a Format other than FormatJSON or FormatYAML.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates a format name given on the command line.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Marshal renders items as a pretty-printed document.
// JSON keeps the key order mod_filename, action, download_link and the list order.
func Marshal(items Items, format Format) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		// A nil slice would encode as null.
		if items == nil {
			items = Items{}
		}
		// Links keep their query strings as typed, so '&', '<' and '>' are not escaped.
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(items); err != nil {
			return nil, fmt.Errorf("failed to marshal items to json: %w", err)
		}
		// json.Encoder ends with a newline; Encode adds its own.
		return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
	case FormatYAML:
		out, err := yaml.Marshal(items)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal items to yaml: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Encode writes items to w preceded by a blank separator line.
func Encode(w io.Writer, items Items, format Format) error {
	out, err := Marshal(items, format)
	if err != nil {
		return err
	}
	if format == FormatYAML {
		// yaml.Marshal already ends with a newline.
		_, err = fmt.Fprintf(w, "\n\n%s", out)
	} else {
		_, err = fmt.Fprintf(w, "\n\n%s\n", out)
	}
	if err != nil {
		return fmt.Errorf("failed to write items: %w", err)
	}
	return nil
}
