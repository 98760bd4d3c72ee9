package translator_test

import (
	"TaskManager/pkg/translator"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT_English(t *testing.T) {
	tr := translator.New(translator.LanguageEn)
	assert.Equal(t, "Delete this task?", tr.T("confirm_delete"))
	assert.Equal(t, "en", tr.Language())
}

func TestT_Chinese(t *testing.T) {
	tr := translator.New(translator.LanguageZh)
	assert.Equal(t, "任务标题不能为空", tr.T("error_title_required"))
}

func TestT_UnsupportedLanguageFallsBackToEnglish(t *testing.T) {
	tr := translator.New("de")
	assert.Equal(t, "Save Task", tr.T("button_save"))
}

func TestT_EmptyLanguageIsEnglish(t *testing.T) {
	tr := translator.New("")
	assert.Equal(t, "en", tr.Language())
	assert.Equal(t, "New", tr.T("button_new"))
}

func TestT_UnknownKeyReturnsKey(t *testing.T) {
	tr := translator.New(translator.LanguageEn)
	assert.Equal(t, "unknown_key", tr.T("unknown_key"))
}

func TestTData(t *testing.T) {
	tr := translator.New(translator.LanguageEn)
	msg := tr.TData("stats_summary", map[string]any{
		"Total": 4, "Completed": 1, "Open": 3, "Rate": "25.0",
		"High": 2, "Medium": 0, "Low": 1, "Overdue": 1,
	})
	assert.Contains(t, msg, "Total Tasks: 4")
	assert.Contains(t, msg, "Completion Rate: 25.0%")
	assert.Contains(t, msg, "Overdue: 1")
}
