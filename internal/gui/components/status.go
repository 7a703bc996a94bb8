package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"hades-save-manager/internal/models"
)

type StatusBar struct {
	container    *fyne.Container
	statusLabel  *widget.Label
	summaryLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabelWithStyle("Ready", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	summaryLabel := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	summaryLabel.Importance = widget.LowImportance

	mainContainer := container.NewVBox(
		statusLabel,
		summaryLabel,
	)

	return &StatusBar{
		container:    mainContainer,
		statusLabel:  statusLabel,
		summaryLabel: summaryLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) Status() string {
	return sb.statusLabel.Text
}

func (sb *StatusBar) SetSummary(summary models.Summary) {
	sb.summaryLabel.SetText(FormatSummary(summary))
}

func (sb *StatusBar) Summary() string {
	return sb.summaryLabel.Text
}
