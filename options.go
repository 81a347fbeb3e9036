package markup

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Options carries the tunable defaults of a [Registry]. A zero-valued field
// means "keep the built-in default". Options deliberately covers truncation
// only: converter behavior is fixed when the registry is built.
type Options struct {
	// TruncateChars is the character budget [Document.Truncate] uses when the
	// length spec is absent or malformed. Default 250.
	TruncateChars int `yaml:"truncate_chars"`
	// Ellipsis is the marker appended at the truncation point. Default "…".
	Ellipsis string `yaml:"ellipsis"`
}

// ParseOptions decodes options from YAML:
//
//	truncate_chars: 140
//	ellipsis: " ..."
//
// Malformed YAML and negative budgets return [ErrInvalidOptions].
func ParseOptions(data []byte) (*Options, error) {
	var o Options
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOptions, err)
	}
	if o.TruncateChars < 0 {
		return nil, fmt.Errorf("%w: negative truncate_chars %d", ErrInvalidOptions, o.TruncateChars)
	}
	return &o, nil
}
