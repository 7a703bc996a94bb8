package controllers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"hades-save-manager/internal/logger"
	"hades-save-manager/internal/models"
	"hades-save-manager/internal/services"
)

const component = "MainController"

// Event names emitted to listeners
const (
	EventFolderChanged    = "folder_changed"
	EventBackupCompleted  = "backup_completed"
	EventRestoreCompleted = "restore_completed"
)

const StatusReady = "Ready"

var errNoBackupFolder = errors.New("backup folder does not exist yet")

// EventHandler represents a function that handles application events
type EventHandler func(data interface{}) error

// MainController turns button presses into save-service calls and the
// results into status text and dialogs. Every action runs to completion
// on the calling goroutine.
type MainController struct {
	service *services.SaveService
	view    View
	logger  logger.Logger
	ctx     context.Context

	mu       sync.RWMutex
	location models.Locations

	eventHandlers map[string][]EventHandler
	eventMu       sync.RWMutex
}

// NewMainController creates a controller starting at initial
func NewMainController(ctx context.Context, service *services.SaveService, log logger.Logger, initial models.Locations) *MainController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &MainController{
		service:       service,
		logger:        log,
		ctx:           ctx,
		location:      initial,
		eventHandlers: make(map[string][]EventHandler),
	}
}

// SetView attaches the view and renders the initial state
func (mc *MainController) SetView(view View) {
	mc.view = view

	loc := mc.Locations()
	view.SetSaveDir(loc.SaveDir)
	view.SetStatus(StatusReady)
	mc.RefreshSummary()
}

// Locations returns the folders the next action will use
func (mc *MainController) Locations() models.Locations {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.location
}

// SelectFolder lets the user pick a new save folder
func (mc *MainController) SelectFolder() {
	mc.view.ChooseFolder(mc.Locations().SaveDir, mc.ApplyFolder)
}

// ApplyFolder switches to dir. An empty dir means the chooser was cancelled.
func (mc *MainController) ApplyFolder(dir string) {
	if dir == "" {
		return
	}

	mc.mu.Lock()
	mc.location = mc.location.WithSaveDir(dir)
	loc := mc.location
	mc.mu.Unlock()

	mc.logger.Info(component, "save folder selected", map[string]interface{}{
		"save_dir":   loc.SaveDir,
		"backup_dir": loc.BackupDir,
	})

	mc.view.SetSaveDir(loc.SaveDir)
	mc.view.SetStatus(fmt.Sprintf("Selected folder: %s", filepath.Base(loc.SaveDir)))
	mc.RefreshSummary()
	mc.emitEvent(EventFolderChanged, loc)
}

// Backup copies the profile files into the backup folder
func (mc *MainController) Backup() {
	loc := mc.Locations()

	report, err := mc.service.Backup(mc.ctx, loc)
	mc.RefreshSummary()
	if err != nil {
		mc.logger.Error(component, err, map[string]interface{}{
			"operation": models.OperationBackup.String(),
			"save_dir":  loc.SaveDir,
			"copied":    report.Count(),
		})
		mc.view.SetStatus("Backup failed.")
		if services.Classify(err) == services.SeverityWarning {
			mc.view.ShowWarning("No Files Found", err.Error())
			return
		}
		mc.view.ShowError("Backup Failed", err)
		return
	}

	count := models.FileCount(report.Count())
	mc.view.SetStatus(fmt.Sprintf("%s backed up.", count))
	mc.view.ShowInfo("Backup Complete",
		fmt.Sprintf("Backed up %s to the %q folder.", count, models.BackupDirName))
	mc.emitEvent(EventBackupCompleted, report)
}

// Restore asks for confirmation and then copies every backup file back
func (mc *MainController) Restore() {
	loc := mc.Locations()

	plan, err := mc.service.PlanRestore(loc)
	if err != nil {
		mc.logger.Error(component, err, map[string]interface{}{
			"operation":  models.OperationRestore.String(),
			"backup_dir": loc.BackupDir,
		})
		mc.view.SetStatus("Restore failed.")
		mc.view.ShowError("Restore Failed", err)
		return
	}

	message := fmt.Sprintf("Restore %s?\nThis will overwrite existing files in the save folder.",
		models.FileCount(plan.Count()))
	mc.view.Confirm("Confirm Restore", message, func(confirmed bool) {
		if !confirmed {
			mc.logger.Debug(component, "restore declined", map[string]interface{}{
				"files": plan.Count(),
			})
			return
		}
		mc.applyRestore(plan)
	})
}

func (mc *MainController) applyRestore(plan models.RestorePlan) {
	report, err := mc.service.ApplyRestore(mc.ctx, plan)
	mc.RefreshSummary()
	if err != nil {
		mc.logger.Error(component, err, map[string]interface{}{
			"operation": models.OperationRestore.String(),
			"save_dir":  plan.Locations.SaveDir,
			"copied":    report.Count(),
		})
		mc.view.SetStatus("Restore failed.")
		mc.view.ShowError("Restore Failed", err)
		return
	}

	count := models.FileCount(report.Count())
	mc.view.SetStatus(fmt.Sprintf("%s restored.", count))
	mc.view.ShowInfo("Restore Complete", fmt.Sprintf("Restored %s.", count))
	mc.emitEvent(EventRestoreCompleted, report)
}

// OpenBackupFolder shows the backup folder in the system file browser
func (mc *MainController) OpenBackupFolder() {
	dir := mc.Locations().BackupDir
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		mc.logger.Warning(component, "backup folder missing", map[string]interface{}{"folder": dir})
		mc.view.ShowError("Open Backup Folder", fmt.Errorf("%w: %s", errNoBackupFolder, dir))
		return
	}
	if err := mc.view.OpenFolder(dir); err != nil {
		mc.logger.Error(component, err, map[string]interface{}{"folder": dir})
		mc.view.ShowError("Open Backup Folder", err)
	}
}

// RefreshSummary recounts both folders and pushes the result to the view
func (mc *MainController) RefreshSummary() {
	if mc.view == nil {
		return
	}
	mc.view.SetSummary(mc.service.Summarize(mc.Locations()))
}

// AddEventListener registers handler for eventType
func (mc *MainController) AddEventListener(eventType string, handler EventHandler) {
	mc.eventMu.Lock()
	defer mc.eventMu.Unlock()
	mc.eventHandlers[eventType] = append(mc.eventHandlers[eventType], handler)
}

func (mc *MainController) emitEvent(eventType string, data interface{}) {
	mc.eventMu.RLock()
	handlers := append([]EventHandler(nil), mc.eventHandlers[eventType]...)
	mc.eventMu.RUnlock()

	for _, handler := range handlers {
		if err := handler(data); err != nil {
			mc.logger.Warning(component, "event handler failed", map[string]interface{}{
				"event": eventType,
				"error": err.Error(),
			})
		}
	}
}
