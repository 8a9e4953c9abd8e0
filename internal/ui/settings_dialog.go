package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// showSettingsDialog edits the sync configuration. The whole record is
// rewritten on save; there are no partial updates.
func (ui *RootUI) showSettingsDialog() {
	current := ui.settings.Get()

	tokenEntry := widget.NewPasswordEntry()
	tokenEntry.SetPlaceHolder("GitHub personal access token")
	tokenEntry.SetText(current.GithubToken)

	gistEntry := widget.NewEntry()
	gistEntry.SetPlaceHolder("Assigned automatically on first push")
	gistEntry.SetText(current.GithubGistID)

	form := container.NewVBox(
		widget.NewLabel("Cloud Sync"),
		widget.NewSeparator(),

		widget.NewLabel("GitHub Token:"),
		tokenEntry,

		widget.NewLabel("Gist ID:"),
		gistEntry,
	)

	d := dialog.NewCustomConfirm("Settings", "Save", "Cancel", form, func(confirmed bool) {
		if !confirmed {
			return
		}
		record := ui.settings.Get()
		record.GithubToken = tokenEntry.Text
		record.GithubGistID = gistEntry.Text
		if err := ui.settings.Save(record); err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		dialog.ShowInformation("Settings", "Settings saved.", ui.window)
	}, ui.window)

	d.Resize(fyne.NewSize(460, 300))
	d.Show()
}
