package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

type ControlsPanel struct {
	container     *fyne.Container
	BackupButton  *widget.Button
	RestoreButton *widget.Button

	backupHandler  func()
	restoreHandler func()
}

func NewControlsPanel() *ControlsPanel {
	panel := &ControlsPanel{}
	panel.setupControls()
	return panel
}

func (cp *ControlsPanel) setupControls() {
	cp.BackupButton = widget.NewButtonWithIcon("Back Up", theme.DocumentSaveIcon(), cp.onBackup)
	cp.BackupButton.Importance = widget.HighImportance

	cp.RestoreButton = widget.NewButtonWithIcon("Restore", theme.HistoryIcon(), cp.onRestore)
	cp.RestoreButton.Importance = widget.HighImportance

	cp.container = container.NewGridWithColumns(2,
		cp.BackupButton,
		cp.RestoreButton,
	)
}

func (cp *ControlsPanel) GetContainer() *fyne.Container {
	return cp.container
}

func (cp *ControlsPanel) SetBackupHandler(handler func()) {
	cp.backupHandler = handler
}

func (cp *ControlsPanel) SetRestoreHandler(handler func()) {
	cp.restoreHandler = handler
}

func (cp *ControlsPanel) onBackup() {
	if cp.backupHandler != nil {
		cp.backupHandler()
	}
}

func (cp *ControlsPanel) onRestore() {
	if cp.restoreHandler != nil {
		cp.restoreHandler()
	}
}
