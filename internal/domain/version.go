package domain

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
	"upshift.dev/pkg/upshift/internal/adapter"
	m "upshift.dev/pkg/upshift/internal/model"
)

// FrameworkPackage is the manifest dependency the current version is read from.
const FrameworkPackage = "@angular/core"

// DetectVersion reads the major version of FrameworkPackage from the
// dependencies or devDependencies of manifest.
func DetectVersion(manifest *adapter.ConfigDocument) (m.Version, error) {
	for _, section := range []string{"dependencies", "devDependencies"} {
		value := manifest.Get(adapter.KeyPath(section, FrameworkPackage))
		if !value.Exists() {
			continue
		}

		version, err := ParseVersion(value.String())
		if err != nil {
			return 0, fmt.Errorf("%w: %s in %s: %w", ErrVersionUndetectable, FrameworkPackage, section, err)
		}

		return version, nil
	}

	return 0, fmt.Errorf("%w: %s is not listed in %s", ErrVersionUndetectable, FrameworkPackage, manifest.Path())
}

// ParseVersion returns the major version of a dependency range such as
// "^15.2.0", "~16.1" or ">=17.0.0 <18".
func ParseVersion(spec string) (m.Version, error) {
	fields := strings.Fields(strings.TrimLeft(strings.TrimSpace(spec), "^~=<>v "))
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidVersion, spec)
	}

	text := fields[0]

	if canonical := "v" + text; semver.IsValid(canonical) {
		major, err := strconv.Atoi(strings.TrimPrefix(semver.Major(canonical), "v"))
		if err == nil {
			return m.Version(major), nil
		}
	}

	// ranges like 15.x fall back to the leading integer
	end := 0
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}

	if end == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidVersion, spec)
	}

	major, err := strconv.Atoi(text[:end])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidVersion, spec)
	}

	return m.Version(major), nil
}
