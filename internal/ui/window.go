package ui

import (
	"TaskManager/internal/config"
	"TaskManager/internal/session"
	"TaskManager/internal/storage"
	"TaskManager/pkg/translator"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"go.uber.org/zap"
)

type MainWindow struct {
	window fyne.Window
	tasks  *TaskView
	stats  *StatsView
}

func NewMainWindow(app fyne.App, cfg *config.Config, db *storage.Database, tr *translator.Translator, logger *zap.Logger) (*MainWindow, error) {
	mode, err := session.ParseSelectionMode(cfg.Selection.Mode)
	if err != nil {
		return nil, err
	}

	w := &MainWindow{
		window: app.NewWindow(tr.T("app_title")),
	}

	prompts := &dialogs{window: w.window, tr: tr}
	sess, err := session.New(db, prompts, prompts,
		session.WithSelectionMode(mode),
		session.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	w.tasks = NewTaskView(sess, tr)
	w.stats = NewStatsView(db, tr)
	prompts.afterConfirm = w.tasks.afterDelete

	w.setup(tr)
	return w, nil
}

func (w *MainWindow) SetSize(width, height float32) {
	w.window.Resize(fyne.NewSize(width, height))
}

func (w *MainWindow) setup(tr *translator.Translator) {
	statsTab := container.NewTabItem(tr.T("tab_stats"), w.stats.Container())
	tabs := container.NewAppTabs(
		container.NewTabItem(tr.T("tab_tasks"), w.tasks.container),
		statsTab,
	)
	tabs.OnSelected = func(tab *container.TabItem) {
		if tab == statsTab {
			w.stats.Refresh()
		}
	}

	w.window.SetContent(tabs)
}

func (w *MainWindow) Show() {
	w.window.ShowAndRun()
}
