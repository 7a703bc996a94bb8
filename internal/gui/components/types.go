package components

import (
	"fmt"

	"hades-save-manager/internal/models"
)

// FormatSummary renders the one-line folder overview under the status
func FormatSummary(s models.Summary) string {
	if !s.SaveDirExists {
		return "Save folder not found"
	}
	saves := fmt.Sprintf("%s to back up", models.FileCount(s.MatchedFiles))
	if !s.BackupExists {
		return saves + " | no backup yet"
	}
	return fmt.Sprintf("%s | %s in backup", saves, models.FileCount(s.BackupFiles))
}
