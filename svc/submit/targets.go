package submit

import (
	"fmt"
	"net/url"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Targets maps a platform tag to the URL of its download. Relative URLs are
// resolved against the endpoint origin.
type Targets map[string]string

// DefaultTargets returns the table shipped with the landing page.
func DefaultTargets() Targets {
	return Targets{
		"mac":     "/downloads/MsProjectMerger.dmg",
		"windows": "/downloads/msproject-merge.exe",
	}
}

// Platforms lists the known platform tags in sorted order.
func (t Targets) Platforms() []string {
	out := make([]string, 0, len(t))
	for p := range t {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Validate requires at least one entry and a parsable URL for each.
func (t Targets) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: table is empty", ErrInvalidTargets)
	}
	for _, p := range t.Platforms() {
		if p == "" || t[p] == "" {
			return fmt.Errorf("%w: empty platform or url for %q", ErrInvalidTargets, p)
		}
		if _, err := url.Parse(t[p]); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidTargets, p, err)
		}
	}
	return nil
}

// LoadTargets reads a YAML mapping of platform to URL:
//
//	mac: /downloads/MsProjectMerger.dmg
//	windows: /downloads/msproject-merge.exe
func LoadTargets(path string) (Targets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTargets, err)
	}
	return ParseTargets(data)
}

func ParseTargets(data []byte) (Targets, error) {
	var t Targets
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTargets, err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
