package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// FolderSelector shows the current save folder next to a browse button.
// The path entry is read-only; the folder only changes through the dialog.
type FolderSelector struct {
	container    *fyne.Container
	PathEntry    *widget.Entry
	BrowseButton *widget.Button

	browseHandler func()
}

func NewFolderSelector() *FolderSelector {
	fs := &FolderSelector{}

	fs.PathEntry = widget.NewEntry()
	fs.PathEntry.SetPlaceHolder("Choose the Hades II save folder...")
	fs.PathEntry.Disable()

	fs.BrowseButton = widget.NewButtonWithIcon("Browse...", theme.FolderOpenIcon(), fs.onBrowse)

	fs.container = container.NewBorder(nil, nil, nil, fs.BrowseButton, fs.PathEntry)
	return fs
}

func (fs *FolderSelector) GetContainer() *fyne.Container {
	return fs.container
}

func (fs *FolderSelector) SetPath(path string) {
	fs.PathEntry.SetText(path)
}

func (fs *FolderSelector) SetBrowseHandler(handler func()) {
	fs.browseHandler = handler
}

func (fs *FolderSelector) onBrowse() {
	if fs.browseHandler != nil {
		fs.browseHandler()
	}
}
