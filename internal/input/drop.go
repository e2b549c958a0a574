package input

import (
	"os"
	"strings"
)

// ResolveDropped picks the drop payload to act on: the first entry, in
// order, that resolves to an existing local file or folder. Entries may be
// plain paths or file:// URIs; anything else is skipped.
func ResolveDropped(entries []string) (path string, ok bool) {
	for _, entry := range entries {
		p, valid := localPath(entry)
		if !valid {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

func localPath(entry string) (string, bool) {
	if strings.HasPrefix(entry, "file://") {
		return strings.TrimPrefix(entry, "file://"), true
	}
	if strings.Contains(entry, "://") {
		return "", false // remote URI, not a local payload
	}
	return entry, entry != ""
}
