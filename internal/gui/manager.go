package gui

import (
	"net/url"

	"hades-save-manager/internal/gui/components"
	"hades-save-manager/internal/logger"
	"hades-save-manager/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const component = "GUIManager"

// Manager owns the window content and renders every dialog
type Manager struct {
	app    fyne.App
	window fyne.Window
	logger logger.Logger

	title          *widget.Label
	folderSelector *components.FolderSelector
	controls       *components.ControlsPanel
	statusBar      *components.StatusBar
	mainContainer  *fyne.Container
}

func NewManager(app fyne.App, window fyne.Window, log logger.Logger) *Manager {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	title := widget.NewLabelWithStyle("Hades II Save Manager", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	title.SizeName = theme.SizeNameHeadingText
	title.Importance = widget.HighImportance

	m := &Manager{
		app:            app,
		window:         window,
		logger:         log,
		title:          title,
		folderSelector: components.NewFolderSelector(),
		controls:       components.NewControlsPanel(),
		statusBar:      components.NewStatusBar(),
	}

	m.mainContainer = container.NewPadded(container.NewVBox(
		m.title,
		m.folderSelector.GetContainer(),
		widget.NewSeparator(),
		m.controls.GetContainer(),
		m.statusBar.GetContainer(),
	))

	return m
}

func (m *Manager) GetMainContainer() *fyne.Container {
	return m.mainContainer
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) SetBrowseHandler(handler func()) {
	m.folderSelector.SetBrowseHandler(handler)
}

func (m *Manager) SetBackupHandler(handler func()) {
	m.controls.SetBackupHandler(func() {
		m.logger.Debug(component, "backup requested", nil)
		handler()
	})
}

func (m *Manager) SetRestoreHandler(handler func()) {
	m.controls.SetRestoreHandler(func() {
		m.logger.Debug(component, "restore requested", nil)
		handler()
	})
}

func (m *Manager) SetSaveDir(path string) {
	m.folderSelector.SetPath(path)
}

func (m *Manager) SetStatus(status string) {
	m.statusBar.SetStatus(status)
	m.logger.Debug(component, "status updated", map[string]interface{}{
		"status": status,
	})
}

func (m *Manager) SetSummary(summary models.Summary) {
	m.statusBar.SetSummary(summary)
}

func (m *Manager) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, m.window)
}

func (m *Manager) ShowWarning(title, message string) {
	content := container.NewHBox(
		widget.NewIcon(theme.WarningIcon()),
		widget.NewLabel(message),
	)
	dialog.ShowCustom(title, "OK", content, m.window)
}

// ShowError only displays err; callers log it
func (m *Manager) ShowError(title string, err error) {
	d := dialog.NewError(err, m.window)
	d.Show()
}

func (m *Manager) Confirm(title, message string, onResult func(bool)) {
	d := dialog.NewConfirm(title, message, onResult, m.window)
	d.SetDismissText("No")
	d.SetConfirmText("Yes")
	d.Show()
}

func (m *Manager) ChooseFolder(start string, onChosen func(string)) {
	d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			m.ShowError("Choose Folder", err)
			return
		}
		if uri == nil {
			onChosen("")
			return
		}
		onChosen(uri.Path())
	}, m.window)

	if start != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(start)); err == nil {
			d.SetLocation(lister)
		}
	}
	d.Show()
}

// OpenFolder hands the folder to the platform file browser
func (m *Manager) OpenFolder(path string) error {
	u, err := url.Parse(storage.NewFileURI(path).String())
	if err != nil {
		return err
	}
	return m.app.OpenURL(u)
}
