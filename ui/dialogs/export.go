package dialogs

import (
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// ShowExportDialog asks where to save the PNG export. The dialog opens in
// dir when it exists and suggests the base name of defaultPath. onPath
// receives the chosen path with a .png extension.
func ShowExportDialog(window fyne.Window, dir, defaultPath string, onPath func(path string)) {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, window)
			return
		}
		if writer == nil {
			return
		}
		writer.Close()
		onPath(WithPNGExt(writer.URI().Path()))
	}, window)

	fd.SetFileName(filepath.Base(defaultPath))
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
	if dir == "" {
		dir = filepath.Dir(defaultPath)
	}
	if loc := listableDir(dir); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

// WithPNGExt appends .png unless path already ends with it.
func WithPNGExt(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return path
	}
	return path + ".png"
}

// listableDir returns dir as a ListableURI, or nil if it is not a directory.
func listableDir(dir string) fyne.ListableURI {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil
	}
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		return nil
	}
	listable, err := storage.ListerForURI(storage.NewFileURI(abs))
	if err != nil {
		return nil
	}
	return listable
}
