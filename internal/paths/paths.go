package paths

import (
	"os"
	"path/filepath"
)

const (
	savedGamesDir = "Saved Games"
	gameDir       = "Hades II"

	userProfileVar      = "USERPROFILE"
	fallbackUserProfile = `C:\Users\Administrator`
)

// Env isolates the lookups used to find the default save folder
type Env struct {
	HomeDir func() (string, error)
	Getenv  func(string) string
	Exists  func(string) bool
}

// SystemEnv binds Env to the running process
func SystemEnv() Env {
	return Env{
		HomeDir: os.UserHomeDir,
		Getenv:  os.Getenv,
		Exists: func(path string) bool {
			_, err := os.Stat(path)
			return err == nil
		},
	}
}

// DefaultSaveDir returns the folder the game writes its profiles to.
// The result may not exist; callers validate it when copying.
func DefaultSaveDir(env Env, override string) string {
	if override != "" {
		return override
	}

	if home, err := env.HomeDir(); err == nil && home != "" {
		candidate := filepath.Join(home, savedGamesDir, gameDir)
		if env.Exists(candidate) {
			return candidate
		}
	}

	profile := env.Getenv(userProfileVar)
	if profile == "" {
		profile = fallbackUserProfile
	}
	return filepath.Join(profile, savedGamesDir, gameDir)
}
