package prefabs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

var ErrUnknownPrefab = errors.New("prefabs: unknown prefab")

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

//go:embed *.yaml bosses/*.yaml
var PrefabsFS embed.FS

// Load returns a prefab file, preferring a copy on disk under prefabs/ so
// tunables can be edited without a rebuild.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	data, err := PrefabsFS.ReadFile(clean)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPrefab, clean)
	}
	return data, err
}

// LoadScript returns a tengo script, disk copy first.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	data, err := ScriptsFS.ReadFile(clean)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPrefab, clean)
	}
	return data, err
}

func ModTime(name string) (time.Time, bool) {
	clean := cleanPrefabPath(name)
	info, err := os.Stat(diskPrefabPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// BossNames lists every boss prefab, embedded or on disk.
func BossNames() []string {
	seen := map[string]struct{}{}
	if matches, err := fs.Glob(PrefabsFS, "bosses/*.yaml"); err == nil {
		for _, m := range matches {
			seen[strings.TrimSuffix(path.Base(m), ".yaml")] = struct{}{}
		}
	}
	if matches, err := filepath.Glob(filepath.Join("prefabs", "bosses", "*.yaml")); err == nil {
		for _, m := range matches {
			seen[strings.TrimSuffix(filepath.Base(m), ".yaml")] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func cleanPrefabPath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func cleanScriptPath(p string) string {
	if p == "" {
		return ""
	}

	s := filepath.ToSlash(p)

	if after, ok := strings.CutPrefix(s, "prefabs/scripts/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}

	return fmt.Sprintf("scripts/%s", s)
}

func diskPrefabPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
