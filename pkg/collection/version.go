package collection

import (
	"path/filepath"
	"strings"
)

// PackageVersion extracts pkg's pinned version from a collection document.
// The reported name is normalized to the long form (sdf → sdformat,
// ign- → ignition-), and a literal "main" pin is resolved to a concrete
// revision through the package files under root. Returns false if the
// collection does not pin pkg at all.
func PackageVersion(doc *Document, pkg, root string) (string, bool) {
	if doc == nil || doc.Err != nil {
		return "", false
	}
	repo, ok := doc.Repositories[pkg]
	if !ok {
		return "", false
	}

	version := normalizeVersion(repo.Version)
	if version == "main" {
		version = ResolveMainVersion(root, pkg)
	}
	return version, true
}

// normalizeVersion expands the short prefixes used inside collection pins.
func normalizeVersion(v string) string {
	if strings.HasPrefix(v, "sdf") && !strings.HasPrefix(v, "sdformat") {
		return "sdformat" + strings.TrimPrefix(v, "sdf")
	}
	if strings.HasPrefix(v, "ign-") {
		return "ignition-" + strings.TrimPrefix(v, "ign-")
	}
	return v
}

// ResolveMainVersion maps a "main" pin to the versioned package file that
// tracks main. It scans <pkg>*.yaml under root for a file whose own entry
// for pkg pins main and returns that file's stem (e.g. "sim10" from
// sim10.yaml). Falls back to "main" when no such file exists.
func ResolveMainVersion(root, pkg string) string {
	matches, err := filepath.Glob(filepath.Join(root, pkg+"*.yaml"))
	if err != nil {
		return "main"
	}

	for _, path := range matches {
		doc, err := Load(path)
		if err != nil {
			continue
		}
		repo, ok := doc.Repositories[pkg]
		if !ok {
			continue
		}
		if repo.Version == "main" {
			return strings.TrimSuffix(filepath.Base(path), ".yaml")
		}
	}
	return "main"
}

// CollectionName derives the release codename from a collection file path:
// collection-harmonic.yaml → harmonic.
func CollectionName(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), ".yaml")
	return strings.TrimPrefix(stem, "collection-")
}
