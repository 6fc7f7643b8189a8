package common

import (
	"path"
	"strings"
)

// PkgAlias returns the name a package is usually referred to by: the last
// element of its import path, skipping a major version element ("v2") and
// dropping a gopkg.in version suffix ("yaml.v3" is "yaml").
// Returns an empty string for an empty path.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if isMajorVersion(base) && path.Dir(pkgPath) != "." {
		base = path.Base(path.Dir(pkgPath))
	}

	if name, version, ok := strings.Cut(base, ".v"); ok && isDigits(version) {
		base = name
	}

	return base
}

func isMajorVersion(s string) bool {
	return len(s) > 1 && s[0] == 'v' && isDigits(s[1:])
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
