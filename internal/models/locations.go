package models

import "path/filepath"

const (
	// ProfilePrefix identifies save-profile files in the save directory
	ProfilePrefix = "Profile1"
	// BackupDirName is the subfolder of the save directory that holds backups
	BackupDirName = "bak"
)

// Locations holds the save directory and its derived backup directory.
// BackupDir is always a direct child of SaveDir.
type Locations struct {
	SaveDir   string
	BackupDir string
}

// NewLocations derives the backup directory from saveDir
func NewLocations(saveDir string) Locations {
	return Locations{
		SaveDir:   saveDir,
		BackupDir: filepath.Join(saveDir, BackupDirName),
	}
}

// WithSaveDir returns a copy pointing at dir with the backup directory recomputed
func (l Locations) WithSaveDir(dir string) Locations {
	return NewLocations(dir)
}

// IsZero reports whether no save directory has been chosen
func (l Locations) IsZero() bool {
	return l.SaveDir == ""
}
