// Package dialogs provides application dialogs.
package dialogs

import (
	"fmt"

	"circuit-sketch/pkg/geometry"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// TextPrompt asks for label text in a modal form.
type TextPrompt struct {
	window fyne.Window

	entry *widget.Entry
	form  dialog.Dialog
	done  func(text string, ok bool)
}

// NewTextPrompt creates a prompt parented to window.
func NewTextPrompt(window fyne.Window) *TextPrompt {
	return &TextPrompt{window: window}
}

// Prompt shows the form. done is called once, when the form is confirmed or
// dismissed.
func (tp *TextPrompt) Prompt(at geometry.Point2D, done func(text string, ok bool)) {
	tp.entry = widget.NewEntry()
	tp.entry.SetPlaceHolder("Label text")
	tp.done = done

	items := []*widget.FormItem{
		widget.NewFormItem("Text", tp.entry),
	}
	tp.form = dialog.NewForm(fmt.Sprintf("Add Text at (%.0f, %.0f)", at.X, at.Y),
		"Add", "Cancel", items, tp.finish, tp.window)
	tp.entry.OnSubmitted = func(string) {
		tp.finish(true)
		tp.form.Hide()
	}
	tp.form.Show()
	tp.window.Canvas().Focus(tp.entry)
}

func (tp *TextPrompt) finish(ok bool) {
	if tp.done == nil {
		return
	}
	done := tp.done
	tp.done = nil
	done(tp.entry.Text, ok)
}
