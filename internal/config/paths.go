package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// defaultDataDir is where tracker.db lives when PRT_DATA_DIR is unset:
// $XDG_DATA_HOME/prt, or ~/.local/share/prt when that is empty too.
func defaultDataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".local", "share", AppName)
}

// ReportsDir is where generated PDF reports land: a prt/reports folder
// under the user's documents directory.
func ReportsDir() string {
	return filepath.Join(documentsDir(), AppName, "reports")
}

func documentsDir() string {
	if dir := os.Getenv("XDG_DOCUMENTS_DIR"); dir != "" {
		return resolveHome(dir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	if f, err := os.Open(filepath.Join(home, ".config", "user-dirs.dirs")); err == nil {
		defer f.Close()
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if !strings.HasPrefix(line, "XDG_DOCUMENTS_DIR=") {
				continue
			}
			if dir := strings.Trim(strings.TrimPrefix(line, "XDG_DOCUMENTS_DIR="), `"`); dir != "" {
				return resolveHome(dir)
			}
		}
	}
	return filepath.Join(home, "Documents")
}

func resolveHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return strings.ReplaceAll(path, "$HOME", home)
}
