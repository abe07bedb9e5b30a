package file

import (
	"os"
	"path/filepath"
)

// HomeEnv names the variable that relocates the kokua home directory.
const HomeEnv = "KOKUA_HOME"

// ResolveHome returns the kokua home directory: $KOKUA_HOME when set,
// otherwise ~/.kokua.
func ResolveHome() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return filepath.Abs(dir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".kokua"), nil
}
