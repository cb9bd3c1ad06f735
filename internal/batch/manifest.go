package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one written image in the output manifest.
type ManifestEntry struct {
	Scene  string `json:"scene"`
	Format string `json:"format"`
	Image  string `json:"image"`
}

// WriteManifest writes manifest.json listing every successful result.
// Image paths are stored relative to the manifest's directory.
func WriteManifest(path string, results []Result) error {
	base := filepath.Dir(path)
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		img := r.Path
		if rel, err := filepath.Rel(base, r.Path); err == nil {
			img = filepath.ToSlash(rel)
		}
		entries = append(entries, ManifestEntry{
			Scene:  r.Scene,
			Format: r.Format,
			Image:  img,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
