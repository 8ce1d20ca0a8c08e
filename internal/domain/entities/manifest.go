package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"regexp"
	"strings"
)

// ReadManifestVersion extracts the project version from a manifest.
// JSON manifests carry it in their top-level "version" field; any other file
// (e.g. VERSION) holds nothing but the version.
func ReadManifestVersion(name string, data []byte) (string, error) {
	if !isJSONManifest(name) {
		current := strings.TrimSpace(string(data))
		if current == "" {
			return "", fmt.Errorf("failed to read version from %s: file is empty", name)
		}
		return current, nil
	}

	var manifest struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if manifest.Version == "" {
		return "", fmt.Errorf("failed to read version from %s: no version field", name)
	}
	return manifest.Version, nil
}

// WriteManifestVersion sets the manifest version to newVersion, leaving every
// other byte untouched. It reports false when the manifest is already current.
func WriteManifestVersion(name string, data []byte, newVersion string) ([]byte, bool, error) {
	current, err := ReadManifestVersion(name, data)
	if err != nil {
		return nil, false, err
	}
	if current == newVersion {
		return data, false, nil
	}

	if !isJSONManifest(name) {
		body := bytes.TrimRight(data, " \t\r\n")
		trailing := data[len(body):]
		leading := len(body) - len(bytes.TrimLeft(body, " \t\r\n"))

		updated := make([]byte, 0, len(data)+len(newVersion))
		updated = append(updated, body[:leading]...)
		updated = append(updated, newVersion...)
		updated = append(updated, trailing...)
		return updated, true, nil
	}

	field := regexp.MustCompile(`("version"\s*:\s*")` + regexp.QuoteMeta(current) + `(")`)
	loc := field.FindSubmatchIndex(data)
	if loc == nil {
		return nil, false, fmt.Errorf("failed to locate the version field in %s", name)
	}

	updated := make([]byte, 0, len(data)+len(newVersion))
	updated = append(updated, data[:loc[3]]...)
	updated = append(updated, newVersion...)
	updated = append(updated, data[loc[1]-1:]...)
	return updated, true, nil
}

func isJSONManifest(name string) bool {
	return strings.EqualFold(path.Ext(name), ".json")
}
