package core

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// splitList splits a comma separated list. Items are positional: a blank item is an error.
func splitList(s string) ([]string, error) {
	if CleanString(s) == "" {
		return []string{}, nil
	}
	items := strings.Split(s, ",")
	for i, item := range items {
		if items[i] = CleanString(item); items[i] == "" {
			return nil, errors.Errorf("empty item at position %d", i+1)
		}
	}
	return items, nil
}

// ParseIntList parses a comma separated list of integers, eg. "16,18,23".
func ParseIntList(s string) ([]int, error) {
	items, err := splitList(s)
	if err != nil {
		return nil, err
	}
	ints := make([]int, 0, len(items))
	for _, item := range items {
		n, err := strconv.Atoi(item)
		if err != nil {
			return nil, errors.Errorf("invalid integer %q", item)
		}
		ints = append(ints, n)
	}
	return ints, nil
}

// ParseFloatList parses a comma separated list of decimals, eg. "8.5,9,7.25".
func ParseFloatList(s string) ([]float64, error) {
	items, err := splitList(s)
	if err != nil {
		return nil, err
	}
	floats := make([]float64, 0, len(items))
	for _, item := range items {
		f, err := strconv.ParseFloat(item, 64)
		if err != nil {
			return nil, errors.Errorf("invalid number %q", item)
		}
		floats = append(floats, f)
	}
	return floats, nil
}
