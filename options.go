package coordmap

import (
	"fmt"
	"strconv"
	"strings"
)

// Constructors take an options string holding comma-separated attribute
// assignments, "Name=Value, Name=Value, ...". This mirrors the attribute
// syntax of the FITS/WCS tool heritage the mapping types come from.
// Names are case-insensitive and surrounding whitespace is ignored.

// attrHandler consumes a single attribute assignment. It returns an error
// wrapping ErrInvalidArgument for unrecognized names or bad values.
type attrHandler func(name, value string) error

// parseOptions splits an options string into attribute assignments and
// feeds them to handle. A nil handle rejects every attribute, which is the
// right behavior for mapping types with no attributes of their own.
func parseOptions(options string, handle attrHandler) error {
	for _, clause := range strings.Split(options, ",") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		name, value, ok := strings.Cut(clause, "=")
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if !ok || name == "" {
			return fmt.Errorf("%w: malformed attribute assignment %q", ErrInvalidArgument, clause)
		}
		if handle == nil {
			return errUnknownAttr(name)
		}
		if err := handle(name, value); err != nil {
			return err
		}
	}
	return nil
}

func errUnknownAttr(name string) error {
	return fmt.Errorf("%w: unrecognized attribute %q", ErrInvalidArgument, name)
}

// parseFloatAttr parses an attribute value as a float64.
func parseFloatAttr(name, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: attribute %s needs a numeric value, got %q", ErrInvalidArgument, name, value)
	}
	return f, nil
}
