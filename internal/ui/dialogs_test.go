package ui

import (
	"TaskManager/internal/models"
	"TaskManager/pkg/translator"
	"fmt"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestDialogs_AnsweredPassesAnswerOn(t *testing.T) {
	for _, reply := range []bool{true, false} {
		var gotResult, gotAfter []bool
		d := &dialogs{afterConfirm: func(ok bool) { gotAfter = append(gotAfter, ok) }}

		d.answered(reply, func(ok bool) { gotResult = append(gotResult, ok) })

		assert.Equal(t, []bool{reply}, gotResult)
		assert.Equal(t, []bool{reply}, gotAfter)
	}
}

func TestDialogs_NotifyErrorShowsErrorDialog(t *testing.T) {
	test.NewApp()
	w := test.NewWindow(nil)
	defer w.Close()

	d := &dialogs{window: w, tr: translator.New(translator.LanguageEn)}
	d.NotifyError(fmt.Errorf("%w: task title is required", models.ErrValidation))

	assert.NotNil(t, w.Canvas().Overlays().Top())
}
