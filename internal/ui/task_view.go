package ui

import (
	"TaskManager/internal/models"
	"TaskManager/internal/session"
	"TaskManager/pkg/translator"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// TaskView is the task tab: the ordered list on the left, the form on the right.
type TaskView struct {
	session *session.Session
	tr      *translator.Translator

	list      *widget.List
	title     *widget.Entry
	priority  *widget.Select
	dueDate   *widget.Entry
	completed *widget.Check

	// lastRow is the highlighted row backing the session selection, -1 for none.
	lastRow   int
	restoring bool

	container *fyne.Container
}

func NewTaskView(sess *session.Session, tr *translator.Translator) *TaskView {
	v := &TaskView{
		session: sess,
		tr:      tr,
		lastRow: -1,
	}
	v.setup()
	v.fillForm(sess.Form())
	return v
}

func (v *TaskView) setup() {
	header := widget.NewLabelWithStyle(v.tr.T("tab_tasks"), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	v.list = widget.NewList(
		func() int {
			return len(v.session.Tasks())
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			tasks := v.session.Tasks()
			if id < len(tasks) {
				obj.(*widget.Label).SetText(tasks[id].Label())
			}
		},
	)
	v.list.OnSelected = v.onSelected

	newBtn := widget.NewButtonWithIcon(v.tr.T("button_new"), theme.ContentAddIcon(), v.onNew)
	deleteBtn := widget.NewButtonWithIcon(v.tr.T("button_delete"), theme.DeleteIcon(), v.onDelete)

	sidebar := container.NewBorder(
		header,
		container.NewHBox(newBtn, deleteBtn),
		nil, nil,
		v.list,
	)

	v.title = widget.NewEntry()
	options := make([]string, 0, len(models.Priorities))
	for _, p := range models.Priorities {
		options = append(options, p.String())
	}
	v.priority = widget.NewSelect(options, nil)
	v.dueDate = widget.NewEntry()
	v.dueDate.SetPlaceHolder("YYYY-MM-DD")
	v.completed = widget.NewCheck(v.tr.T("label_completed"), nil)

	saveBtn := widget.NewButtonWithIcon(v.tr.T("button_save"), theme.DocumentSaveIcon(), v.onSave)
	saveBtn.Importance = widget.HighImportance

	form := container.NewVBox(
		widget.NewLabel(v.tr.T("label_title")),
		v.title,
		widget.NewLabel(v.tr.T("label_priority")),
		v.priority,
		widget.NewLabel(v.tr.T("label_due_date")),
		v.dueDate,
		v.completed,
		container.NewHBox(saveBtn),
	)

	split := container.NewHSplit(sidebar, container.NewPadded(form))
	split.Offset = 0.3
	v.container = container.NewStack(split)
}

func (v *TaskView) readForm() models.Form {
	return models.Form{
		Title:     v.title.Text,
		Priority:  models.Priority(v.priority.Selected),
		DueDate:   v.dueDate.Text,
		Completed: v.completed.Checked,
	}
}

func (v *TaskView) fillForm(f models.Form) {
	v.title.SetText(f.Title)
	v.priority.SetSelected(f.Priority.String())
	v.dueDate.SetText(f.DueDate)
	v.completed.SetChecked(f.Completed)
}

func (v *TaskView) onSelected(id widget.ListItemID) {
	if v.restoring {
		return
	}
	if err := v.session.Select(id); err != nil {
		v.restoreHighlight()
		return
	}
	v.lastRow = id
	v.fillForm(v.session.Form())
}

// restoreHighlight puts the list highlight back on the row the session still
// targets after a failed selection, so Save never updates an unhighlighted task.
func (v *TaskView) restoreHighlight() {
	if _, selected := v.session.SelectedID(); !selected || v.lastRow < 0 {
		v.lastRow = -1
		v.list.UnselectAll()
		return
	}
	v.restoring = true
	v.list.Select(v.lastRow)
	v.restoring = false
}

func (v *TaskView) onNew() {
	v.session.New()
	v.lastRow = -1
	v.list.UnselectAll()
	v.fillForm(v.session.Form())
}

func (v *TaskView) onSave() {
	if err := v.session.Save(v.readForm()); err != nil {
		return
	}
	v.refresh()
}

func (v *TaskView) onDelete() {
	// The list is refreshed from the confirm dialog callback.
	_ = v.session.Delete()
}

// afterDelete runs once the delete prompt is answered. A declined delete
// leaves the form as the user left it, unsaved edits included.
func (v *TaskView) afterDelete(ok bool) {
	if !ok {
		return
	}
	v.refresh()
}

// refresh redraws the list and form from the session state.
func (v *TaskView) refresh() {
	if _, selected := v.session.SelectedID(); !selected {
		v.lastRow = -1
		v.list.UnselectAll()
	}
	v.list.Refresh()
	v.fillForm(v.session.Form())
}
