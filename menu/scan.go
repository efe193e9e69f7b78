package menu

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/walker84837/rmenu-ng/inifile"
)

// DefaultDirs returns the application directories to scan, honoring
// XDG_DATA_HOME and XDG_DATA_DIRS with the usual fallbacks.
func DefaultDirs() []string {
	var dirs []string

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dataHome = filepath.Join(home, ".local", "share")
		}
	}
	if dataHome != "" {
		dirs = append(dirs, filepath.Join(dataHome, "applications"))
	}

	dataDirs := os.Getenv("XDG_DATA_DIRS")
	if dataDirs == "" {
		dataDirs = "/usr/local/share:/usr/share"
	}
	for _, d := range strings.Split(dataDirs, ":") {
		if d != "" {
			dirs = append(dirs, filepath.Join(d, "applications"))
		}
	}
	return dirs
}

// Scan collects launchable commands from every .desktop file in the given
// directories. A file that fails to parse is skipped and logged, never
// fatal: one broken launcher must not take the menu down. Entries marked
// NoDisplay or Hidden, and entries without an Exec line, are left out.
// Results are sorted by key for a stable menu order.
func Scan(dirs ...string) []Command {
	var cmds []Command
	seen := map[string]bool{}

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			Logger().Debug("skipping directory",
				zap.String("dir", dir),
				zap.Error(err))
			continue
		}
		for _, de := range entries {
			if de.IsDir() || !strings.HasSuffix(de.Name(), ".desktop") {
				continue
			}
			key := strings.TrimSuffix(de.Name(), ".desktop")
			if seen[key] {
				// earlier directories shadow later ones
				continue
			}

			path := filepath.Join(dir, de.Name())
			doc, err := inifile.Load(path)
			if err != nil {
				Logger().Warn("skipping unparseable desktop file",
					zap.String("path", path),
					zap.Error(err))
				continue
			}
			entry := doc.Main()
			if entry == nil {
				Logger().Warn("skipping file without a main entry",
					zap.String("path", path))
				continue
			}
			if isTrue(entry.NoDisplay) || isTrue(entry.Hidden) {
				continue
			}
			if entry.Exec == nil || *entry.Exec == "" {
				continue
			}

			display := entry.Name.Default()
			if display == "" {
				display = key
			}
			seen[key] = true
			cmds = append(cmds, Command{Key: key, Display: display, Exec: *entry.Exec})
		}
	}

	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Key < cmds[j].Key })
	return cmds
}

func isTrue(v *bool) bool {
	return v != nil && *v
}
