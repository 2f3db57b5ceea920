package pure

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// genSpec is a parsed generator description: the distribution name with its
// positional parameters, any list-valued entries of the distribution block
// (data, pv, mean, covar), and the method name if a method block follows.
type genSpec struct {
	distr  string
	params []float64
	lists  map[string][]float64
	method string
}

// parse splits a UNURAN string API description into its blocks. Text is
// case-insensitive and whitespace is ignored. The first block must describe
// the distribution; a method block is accepted for compatibility and its
// content ignored, inversion being the only method this engine implements.
func parse(text string) (*genSpec, error) {
	clean := strings.ToLower(stripSpace(text))
	if clean == "" {
		return nil, fmt.Errorf("empty generator description")
	}

	blocks := strings.Split(clean, "&")

	s := &genSpec{lists: make(map[string][]float64)}
	if err := s.parseDistrBlock(blocks[0]); err != nil {
		return nil, err
	}

	for _, block := range blocks[1:] {
		head, _, _ := strings.Cut(block, ";")
		key, val, _ := strings.Cut(head, "=")
		switch key {
		case "method":
			s.method = val
		default:
			return nil, fmt.Errorf("unknown block %q", key)
		}
	}
	return s, nil
}

func (s *genSpec) parseDistrBlock(block string) error {
	entries := strings.Split(block, ";")

	key, val, ok := strings.Cut(entries[0], "=")
	if !ok || key != "distr" {
		return fmt.Errorf("description must start with distr=<name>, got %q", entries[0])
	}
	name, params, err := parseNameParams(val)
	if err != nil {
		return err
	}
	s.distr, s.params = name, params

	for _, e := range entries[1:] {
		if e == "" {
			continue
		}
		k, v, ok := strings.Cut(e, "=")
		if !ok || k == "" || v == "" {
			return fmt.Errorf("syntax error in entry %q", e)
		}
		if _, dup := s.lists[k]; dup {
			return fmt.Errorf("duplicate entry %q", k)
		}
		vals, err := parseList(v)
		if err != nil {
			return fmt.Errorf("entry %q: %v", k, err)
		}
		s.lists[k] = vals
	}
	return nil
}

// parseNameParams splits "normal(0,1)" into the name and its parameter list.
// A bare name without parentheses is valid and has no parameters.
func parseNameParams(v string) (string, []float64, error) {
	name, rest, hasParams := strings.Cut(v, "(")
	if name == "" {
		return "", nil, fmt.Errorf("missing distribution name")
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return "", nil, fmt.Errorf("bad distribution name %q", name)
		}
	}
	if !hasParams {
		return name, nil, nil
	}
	inner, closed := strings.CutSuffix(rest, ")")
	if !closed {
		return "", nil, fmt.Errorf("unbalanced parentheses in %q", v)
	}
	params, err := splitNumbers(inner)
	if err != nil {
		return "", nil, fmt.Errorf("parameters of %s: %v", name, err)
	}
	return name, params, nil
}

// parseList parses an entry value: either a parenthesized number list or a
// single number.
func parseList(v string) ([]float64, error) {
	if inner, ok := strings.CutPrefix(v, "("); ok {
		inner, closed := strings.CutSuffix(inner, ")")
		if !closed {
			return nil, fmt.Errorf("unbalanced parentheses")
		}
		return splitNumbers(inner)
	}
	return splitNumbers(v)
}

func splitNumbers(v string) ([]float64, error) {
	if v == "" {
		return nil, nil
	}
	parts := strings.Split(v, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		x, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", p)
		}
		out[i] = x
	}
	return out, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
