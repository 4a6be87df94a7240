package report

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"pcoslens/domain/dataset"
	"pcoslens/internal/errors"
)

// DocumentWriter persists an AnalysisResult as an indented JSON document
type DocumentWriter struct {
	path string
}

// NewDocumentWriter creates a writer for path, relative to the working directory unless absolute
func NewDocumentWriter(path string) *DocumentWriter {
	return &DocumentWriter{path: path}
}

// Path returns the destination of the document
func (w *DocumentWriter) Path() string {
	return w.path
}

// Write replaces the document with result. The content goes to a temporary
// file beside the destination first, so a failure leaves any previous document intact.
// When the directory refuses new files but the document already exists, it is
// rewritten in place instead.
func (w *DocumentWriter) Write(result *dataset.AnalysisResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errors.ReportWrite("failed to encode analysis results", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(w.path), "."+filepath.Base(w.path)+".*.tmp")
	if err != nil {
		if stderrors.Is(err, fs.ErrPermission) && w.existsAsFile() {
			return w.writeInPlace(data)
		}
		return errors.ReportWrite(fmt.Sprintf("failed to create %s", w.path), err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.ReportWrite(fmt.Sprintf("failed to write %s", w.path), err)
	}
	if err := tmp.Close(); err != nil {
		return errors.ReportWrite(fmt.Sprintf("failed to write %s", w.path), err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return errors.ReportWrite(fmt.Sprintf("failed to write %s", w.path), err)
	}
	if err := os.Rename(tmpName, w.path); err != nil {
		return errors.ReportWrite(fmt.Sprintf("failed to replace %s", w.path), err)
	}
	committed = true

	return nil
}

func (w *DocumentWriter) existsAsFile() bool {
	info, err := os.Stat(w.path)
	return err == nil && info.Mode().IsRegular()
}

// writeInPlace truncates and rewrites the existing document
func (w *DocumentWriter) writeInPlace(data []byte) error {
	if err := os.WriteFile(w.path, data, 0644); err != nil {
		return errors.ReportWrite(fmt.Sprintf("failed to write %s", w.path), err)
	}
	return nil
}
