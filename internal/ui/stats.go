package ui

import (
	"TaskManager/internal/storage"
	"TaskManager/pkg/translator"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"
)

type StatsView struct {
	container  *fyne.Container
	db         *storage.Database
	tr         *translator.Translator
	taskStats  *widget.Label
	refreshBtn *widget.Button
	now        func() time.Time
}

func NewStatsView(db *storage.Database, tr *translator.Translator) *StatsView {
	sv := &StatsView{
		db:        db,
		tr:        tr,
		taskStats: widget.NewLabel(""),
		now:       time.Now,
	}
	sv.setup()
	return sv
}

func (sv *StatsView) setup() {
	title := widget.NewLabelWithStyle(sv.tr.T("tab_stats"), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	sv.refreshBtn = widget.NewButtonWithIcon(sv.tr.T("button_refresh"), theme.ViewRefreshIcon(), sv.Refresh)

	sv.container = container.NewVBox(
		title,
		container.NewHBox(sv.refreshBtn),
		sv.taskStats,
	)
	sv.Refresh()
}

// Refresh re-reads the counters from the database.
func (sv *StatsView) Refresh() {
	stats, err := sv.db.GetTaskStats(sv.now())
	if err != nil {
		zap.L().Error("failed to load task stats", zap.Error(err))
		sv.taskStats.SetText(sv.tr.T("error_storage"))
		return
	}

	sv.taskStats.SetText(sv.tr.TData("stats_summary", map[string]any{
		"Total":     stats.TotalTasks,
		"Completed": stats.CompletedTasks,
		"Open":      stats.OpenTasks,
		"Rate":      fmt.Sprintf("%.1f", stats.CompletionRate()),
		"High":      stats.HighOpen,
		"Medium":    stats.MediumOpen,
		"Low":       stats.LowOpen,
		"Overdue":   stats.OverdueTasks,
	}))
}

func (sv *StatsView) Container() *fyne.Container {
	return sv.container
}
