package platform

import "strings"

const mountPrefix = "/mnt/"

// TranslateMountPath rewrites a WSL mount path (/mnt/c/Users/x) into the
// native Windows form (C:\Users\x). Paths that do not match the mount pattern
// are returned unchanged, which also makes the function idempotent. The
// conversion is purely textual; it never consults the filesystem.
func TranslateMountPath(path string) string {
	rest, ok := strings.CutPrefix(path, mountPrefix)
	if !ok || len(rest) < 3 {
		return path
	}
	drive := rest[0]
	if !isDriveLetter(drive) || rest[1] != '/' {
		return path
	}
	sub := strings.ReplaceAll(rest[2:], "/", `\`)
	return strings.ToUpper(string(drive)) + `:\` + sub
}

func isDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
