// Package assets validates the bundled application data before it is packaged
// into a release: the stratagem manifest and its icon files.
//
// The checks cover packaging inputs only; rendering, hotkey handling, and
// user preset data are outside the release pipeline.
package assets

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// sequenceKeys is the input alphabet a stratagem sequence may use.
var sequenceKeys = map[string]struct{}{
	"W": {},
	"A": {},
	"S": {},
	"D": {},
}

// iconExtensions are the icon file types looked up per stratagem name.
var iconExtensions = []string{".svg", ".png"}

// Stratagem is one entry of the bundled manifest.
type Stratagem struct {
	Name     string   `json:"name"`
	Sequence []string `json:"sequence"`
	Category string   `json:"category"`
}

// Report summarizes a manifest verification pass.
type Report struct {
	Count        int
	Problems     []string
	MissingIcons []string
}

// OK reports whether the manifest itself is valid. Missing icons are tracked
// separately because the application renders a fallback for them.
func (r Report) OK() bool {
	return len(r.Problems) == 0
}

// LoadManifest parses and validates the stratagem manifest at path.
func LoadManifest(path string) ([]Stratagem, Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Report{}, fmt.Errorf("read manifest: %w", err)
	}

	var entries []Stratagem
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, Report{}, fmt.Errorf("parse manifest: %w", err)
	}

	report := Report{Count: len(entries)}
	seen := make(map[string]struct{}, len(entries))

	for i := range entries {
		entry := &entries[i]
		entry.Name = strings.TrimSpace(entry.Name)
		if entry.Category == "" {
			entry.Category = "general"
		}

		label := entry.Name
		if label == "" {
			label = fmt.Sprintf("entry %d", i)
			report.Problems = append(report.Problems, fmt.Sprintf("%s: empty name", label))
		}
		if _, dup := seen[entry.Name]; dup && entry.Name != "" {
			report.Problems = append(report.Problems, fmt.Sprintf("%s: duplicate name", label))
		}
		seen[entry.Name] = struct{}{}

		if len(entry.Sequence) == 0 {
			report.Problems = append(report.Problems, fmt.Sprintf("%s: empty sequence", label))
		}
		for _, key := range entry.Sequence {
			if _, ok := sequenceKeys[strings.ToUpper(strings.TrimSpace(key))]; !ok {
				report.Problems = append(report.Problems, fmt.Sprintf("%s: invalid sequence key %q", label, key))
			}
		}
	}

	return entries, report, nil
}

// Verify validates the manifest and, when iconDir is non-empty, records every
// stratagem without an icon file.
func Verify(manifestPath, iconDir string) (Report, error) {
	entries, report, err := LoadManifest(manifestPath)
	if err != nil {
		return Report{}, err
	}

	if strings.TrimSpace(iconDir) != "" {
		for _, entry := range entries {
			if entry.Name == "" {
				continue
			}
			if !iconExists(iconDir, entry.Name) {
				report.MissingIcons = append(report.MissingIcons, entry.Name)
			}
		}
	}

	return report, nil
}

func iconExists(iconDir, name string) bool {
	for _, ext := range iconExtensions {
		if _, err := os.Stat(filepath.Join(iconDir, name+ext)); err == nil {
			return true
		}
	}
	return false
}
