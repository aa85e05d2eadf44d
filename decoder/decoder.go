package decoder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tpeduzzi/clayg/clayg"
	"github.com/tpeduzzi/clayg/graph"
	"github.com/tpeduzzi/clayg/result"
	"github.com/tpeduzzi/clayg/unionfind"
)

// Sentinel errors for the decoder package, following the teacher's
// package-name-prefixed convention.
var (
	// ErrUnknownDecoder is returned when a decoder spec names anything
	// other than one of the five recognized names (§6).
	ErrUnknownDecoder = errors.New("decoder: unknown decoder name")

	// ErrMalformedSpec is returned when a decoder spec's option list is
	// not well-formed "k=v" pairs.
	ErrMalformedSpec = errors.New("decoder: malformed decoder spec")
)

// Decoder is the common interface every decoder variant satisfies.
type Decoder interface {
	Name() string
	Decode(g *graph.DecodingGraph) result.DecodingResult
}

// New parses one element of the §6 CLI decoder-spec grammar — "name" or
// "name(k1=v1,k2=v2,…)" — and returns a configured Decoder.
func New(spec string) (Decoder, error) {
	name, options, err := parseSpec(spec)
	if err != nil {
		return nil, err
	}

	switch name {
	case "uf", "unionfind":
		return unionfind.NewFromOptions(options), nil
	case "clayg":
		return clayg.NewFromOptions(options), nil
	case "sl_clayg", "single_layer_clayg":
		return clayg.NewSingleLayerFromOptions(options), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDecoder, name)
	}
}

// parseSpec splits a decoder spec into its name and its k=v option map.
func parseSpec(spec string) (string, map[string]string, error) {
	spec = strings.TrimSpace(spec)
	open := strings.IndexByte(spec, '(')
	if open < 0 {
		return spec, nil, nil
	}
	if !strings.HasSuffix(spec, ")") {
		return "", nil, fmt.Errorf("%w: %q", ErrMalformedSpec, spec)
	}

	name := spec[:open]
	body := spec[open+1 : len(spec)-1]
	options := make(map[string]string)
	if body == "" {
		return name, options, nil
	}

	for _, pair := range strings.Split(body, ",") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return "", nil, fmt.Errorf("%w: %q", ErrMalformedSpec, pair)
		}
		options[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}

	return name, options, nil
}

// ParseList parses a comma-separated list of decoder specs (§6's
// "decoders" CLI positional). The top-level commas that separate list
// elements are distinguished from the commas inside a "name(k=v,...)"
// option list by paren depth.
func ParseList(specs string) ([]Decoder, error) {
	var out []Decoder
	for _, s := range splitTopLevel(specs) {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		d, err := New(s)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, nil
}

// splitTopLevel splits s on commas that appear outside of any
// parentheses.
func splitTopLevel(s string) []string {
	var out []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, s[start:])

	return out
}
