package ui

import (
	"TaskManager/internal/session"
	"errors"
	"TaskManager/pkg/translator"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// dialogs shows session prompts and notices as modal fyne dialogs.
type dialogs struct {
	window fyne.Window
	tr     *translator.Translator

	// afterConfirm runs once the user has answered a prompt, with the answer.
	afterConfirm func(ok bool)
}

var (
	_ session.Confirmer = (*dialogs)(nil)
	_ session.Notifier  = (*dialogs)(nil)
)

func (d *dialogs) Confirm(messageID string, onResult func(bool)) {
	dialog.ShowConfirm(d.tr.T("dialog_delete"), d.tr.T(messageID), func(ok bool) {
		d.answered(ok, onResult)
	}, d.window)
}

func (d *dialogs) answered(ok bool, onResult func(bool)) {
	onResult(ok)
	if d.afterConfirm != nil {
		d.afterConfirm(ok)
	}
}

func (d *dialogs) NotifyError(err error) {
	dialog.ShowError(errors.New(d.tr.T(session.MessageID(err))), d.window)
}
