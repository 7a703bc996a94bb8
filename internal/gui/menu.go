package gui

import "fyne.io/fyne/v2"

// MenuActions are the callbacks behind the main menu entries
type MenuActions struct {
	SelectFolder     func()
	Backup           func()
	Restore          func()
	OpenBackupFolder func()
	Quit             func()
}

func NewMainMenu(actions MenuActions) *fyne.MainMenu {
	quit := fyne.NewMenuItem("Quit", actions.Quit)
	quit.IsQuit = true

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Choose Save Folder...", actions.SelectFolder),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Back Up", actions.Backup),
		fyne.NewMenuItem("Restore", actions.Restore),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Open Backup Folder", actions.OpenBackupFolder),
		fyne.NewMenuItemSeparator(),
		quit,
	)

	return fyne.NewMainMenu(fileMenu)
}
