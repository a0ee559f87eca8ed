package assignment

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is a sentinel error returned by Validate when the
// assignment configuration violates one of its integrity properties. Use
// errors.Is to detect it; the wrapping error names the first violation found.
var ErrInvalidConfig = errors.New("invalid assignment configuration")

// validate checks a model reference pair and a label set against the
// integrity properties the configuration promises: non-empty model
// references, exactly Count labels, every label non-empty and free of
// leading or trailing whitespace, and no duplicates.
func validate(model, baseModel string, labels []string) error {
	if model == "" {
		return fmt.Errorf("%w: empty model path", ErrInvalidConfig)
	}
	if baseModel == "" {
		return fmt.Errorf("%w: empty base model identifier", ErrInvalidConfig)
	}
	if len(labels) != Count {
		return fmt.Errorf("%w: expected %d team labels, found %d", ErrInvalidConfig, Count, len(labels))
	}
	seen := make(map[string]struct{}, len(labels))
	for i, label := range labels {
		if label == "" {
			return fmt.Errorf("%w: empty team label at index %d", ErrInvalidConfig, i)
		}
		if strings.TrimSpace(label) != label {
			return fmt.Errorf("%w: team label %q has surrounding whitespace", ErrInvalidConfig, label)
		}
		if _, dup := seen[label]; dup {
			return fmt.Errorf("%w: duplicate team label %q", ErrInvalidConfig, label)
		}
		seen[label] = struct{}{}
	}
	return nil
}
