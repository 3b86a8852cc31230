package geom

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extensions lists the file extensions Load understands.
var Extensions = []string{".geojson", ".json", ".csv", ".kml", ".wkt"}

// Supported reports whether Load can read path, judging by its extension.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load reads a geometry file, choosing the format by extension.
func Load(path string) (Geometry, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".geojson", ".json":
		return LoadGeoJSON(path)
	case ".csv":
		return LoadCSV(path)
	case ".kml":
		return LoadKML(path)
	case ".wkt":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		g, err := ParseWKT(string(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		return g, nil
	}
	return nil, fmt.Errorf("unsupported file: %q", ext)
}
