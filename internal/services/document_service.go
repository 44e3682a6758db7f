package services

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/imehub/maritime-assistant-web/internal/models"
)

// ErrNoValidFiles is surfaced to the user as a blocking alert when an entire
// upload batch is disallowed.
var ErrNoValidFiles = errors.New("none of the selected files are a supported document type")

// FileUpload is one file as received from the browser, before processing.
type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

var allowedMIMETypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain":               true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
}

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
	".xls":  true,
	".xlsx": true,
}

// DocumentService simulates the document pipeline: type validation, then a
// sequential pass that fabricates extracted text with artificial delays.
// Real extraction lives behind the backend; this stands in for it so the
// dashboard flow works end to end.
type DocumentService struct {
	ItemDelay  time.Duration // pause after each processed file
	BatchDelay time.Duration // pause after the whole batch, "analysis" phase
	now        func() time.Time
}

func NewDocumentService() *DocumentService {
	return &DocumentService{
		ItemDelay:  500 * time.Millisecond,
		BatchDelay: 1 * time.Second,
		now:        time.Now,
	}
}

// Validate keeps the files matching the allow-list. When nothing passes the
// whole batch is rejected with ErrNoValidFiles.
func (s *DocumentService) Validate(files []FileUpload) ([]FileUpload, error) {
	accepted := make([]FileUpload, 0, len(files))
	for _, f := range files {
		if allowedMIMETypes[f.ContentType] || allowedExtensions[strings.ToLower(filepath.Ext(f.Name))] {
			accepted = append(accepted, f)
		}
	}
	if len(files) > 0 && len(accepted) == 0 {
		return nil, ErrNoValidFiles
	}
	return accepted, nil
}

// Process walks the accepted files one at a time, advancing progress after
// each and once more after the trailing analysis delay. Any failure abandons
// the batch: progress resets to zero and no documents are returned.
func (s *DocumentService) Process(files []FileUpload, progress func(pct int)) ([]models.UploadedDocument, error) {
	if progress == nil {
		progress = func(int) {}
	}

	docs := make([]models.UploadedDocument, 0, len(files))
	for i, f := range files {
		content, err := s.extract(f)
		if err != nil {
			progress(0)
			return nil, fmt.Errorf("processing %s: %w", f.Name, err)
		}

		docs = append(docs, models.UploadedDocument{
			Name:       f.Name,
			Type:       f.ContentType,
			Content:    content,
			UploadedAt: s.now(),
			Size:       int64(len(f.Data)),
		})

		time.Sleep(s.ItemDelay)
		progress((i + 1) * 90 / len(files))
	}

	time.Sleep(s.BatchDelay)
	progress(100)
	return docs, nil
}

// extract is a placeholder for the backend's real text extraction: plain
// text is passed through verbatim, every other supported type yields a
// canned summary naming the file.
func (s *DocumentService) extract(f FileUpload) (string, error) {
	if f.Name == "" {
		return "", errors.New("file has no name")
	}

	ext := strings.ToLower(filepath.Ext(f.Name))
	if ext == ".txt" || f.ContentType == "text/plain" {
		return string(f.Data), nil
	}

	return fmt.Sprintf(
		"Extracted content from %s: cargo specifications, port details, voyage requirements, commercial terms and operational constraints as found in the document.",
		f.Name,
	), nil
}
