package controllers

import "hades-save-manager/internal/models"

//go:generate mockgen -source=view.go -destination=mock_view_test.go -package=controllers

// View is the window as seen by the controller. Implementations render
// dialogs; the controller decides which one to show.
type View interface {
	SetSaveDir(path string)
	SetStatus(status string)
	SetSummary(summary models.Summary)

	ShowInfo(title, message string)
	ShowWarning(title, message string)
	ShowError(title string, err error)
	Confirm(title, message string, onResult func(bool))

	// ChooseFolder asks for a folder starting at start. onChosen receives
	// an empty string when the user cancels.
	ChooseFolder(start string, onChosen func(string))
	OpenFolder(path string) error
}
