package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hades-save-manager/internal/logger"
	"hades-save-manager/internal/models"
)

const component = "SaveService"

// SaveService copies profile files between the save folder and its
// backup folder. It holds no path state; every call receives the
// Locations it works on.
type SaveService struct {
	logger logger.Logger
}

// NewSaveService creates a new save service
func NewSaveService(log logger.Logger) *SaveService {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &SaveService{logger: log}
}

func hasProfilePrefix(name string) bool {
	return strings.HasPrefix(name, models.ProfilePrefix)
}

// Backup copies every profile file of loc.SaveDir into loc.BackupDir,
// overwriting same-named backups and leaving any other backup untouched.
func (s *SaveService) Backup(ctx context.Context, loc models.Locations) (models.Report, error) {
	report := models.Report{
		Operation:   models.OperationBackup,
		Source:      loc.SaveDir,
		Destination: loc.BackupDir,
	}

	if !dirExists(loc.SaveDir) {
		return report, fmt.Errorf("%w: %s", ErrSaveDirNotFound, loc.SaveDir)
	}

	files, err := listRegularFiles(loc.SaveDir, hasProfilePrefix)
	if err != nil {
		return report, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	if len(files) == 0 {
		return report, fmt.Errorf("%w: no file name starts with %q in %s",
			ErrNoMatchingFiles, models.ProfilePrefix, loc.SaveDir)
	}

	if err := os.MkdirAll(loc.BackupDir, 0o755); err != nil {
		return report, fmt.Errorf("%w: create %s: %w", ErrCopyFailed, loc.BackupDir, err)
	}

	s.logger.Debug(component, "backup started", map[string]interface{}{
		"save_dir":   loc.SaveDir,
		"backup_dir": loc.BackupDir,
		"files":      len(files),
	})

	report.Files, err = s.copyAll(ctx, files, loc.SaveDir, loc.BackupDir)
	if err != nil {
		return report, err
	}

	s.logger.Info(component, "backup finished", map[string]interface{}{
		"backup_dir": loc.BackupDir,
		"files":      report.Count(),
	})
	return report, nil
}

// PlanRestore validates both folders and lists every file in the backup
// folder. Nothing is written; the plan is applied with ApplyRestore once
// the user has confirmed it.
func (s *SaveService) PlanRestore(loc models.Locations) (models.RestorePlan, error) {
	plan := models.RestorePlan{Locations: loc}

	var files []string
	if dirExists(loc.BackupDir) {
		var err error
		files, err = listRegularFiles(loc.BackupDir, nil)
		if err != nil {
			return plan, fmt.Errorf("%w: %w", ErrReadFailed, err)
		}
	}
	if len(files) == 0 {
		return plan, fmt.Errorf("%w: %s", ErrBackupEmpty, loc.BackupDir)
	}

	if !dirExists(loc.SaveDir) {
		return plan, fmt.Errorf("%w: %s", ErrDestinationNotFound, loc.SaveDir)
	}

	plan.Files = files
	return plan, nil
}

// ApplyRestore copies the planned backup files into the save folder,
// overwriting same-named files there.
func (s *SaveService) ApplyRestore(ctx context.Context, plan models.RestorePlan) (models.Report, error) {
	loc := plan.Locations
	report := models.Report{
		Operation:   models.OperationRestore,
		Source:      loc.BackupDir,
		Destination: loc.SaveDir,
	}

	if !dirExists(loc.SaveDir) {
		return report, fmt.Errorf("%w: %s", ErrDestinationNotFound, loc.SaveDir)
	}

	s.logger.Debug(component, "restore started", map[string]interface{}{
		"save_dir":   loc.SaveDir,
		"backup_dir": loc.BackupDir,
		"files":      plan.Count(),
	})

	var err error
	report.Files, err = s.copyAll(ctx, plan.Files, loc.BackupDir, loc.SaveDir)
	if err != nil {
		return report, err
	}

	s.logger.Info(component, "restore finished", map[string]interface{}{
		"save_dir": loc.SaveDir,
		"files":    report.Count(),
	})
	return report, nil
}

// Summarize counts profile files and backups. Missing folders count as empty.
func (s *SaveService) Summarize(loc models.Locations) models.Summary {
	summary := models.Summary{
		SaveDir:       loc.SaveDir,
		SaveDirExists: dirExists(loc.SaveDir),
		BackupExists:  dirExists(loc.BackupDir),
	}

	if summary.SaveDirExists {
		if files, err := listRegularFiles(loc.SaveDir, hasProfilePrefix); err == nil {
			summary.MatchedFiles = len(files)
		}
	}
	if summary.BackupExists {
		if files, err := listRegularFiles(loc.BackupDir, nil); err == nil {
			summary.BackupFiles = len(files)
		}
	}
	return summary
}

// copyAll stops at the first failure. Files copied before it stay in place.
func (s *SaveService) copyAll(ctx context.Context, names []string, from, to string) ([]string, error) {
	copied := make([]string, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return copied, fmt.Errorf("%w: %w", ErrCopyFailed, err)
		}

		if err := copyFile(filepath.Join(from, name), filepath.Join(to, name)); err != nil {
			s.logger.Debug(component, "copy aborted", map[string]interface{}{
				"error":  err.Error(),
				"file":   name,
				"from":   from,
				"to":     to,
				"copied": len(copied),
			})
			return copied, fmt.Errorf("%w: %s: %w", ErrCopyFailed, name, err)
		}
		copied = append(copied, name)
	}
	return copied, nil
}
