package services

import (
	"errors"
	"strings"
	"testing"
)

func newFastDocumentService() *DocumentService {
	svc := NewDocumentService()
	svc.ItemDelay = 0
	svc.BatchDelay = 0
	return svc
}

func TestValidateKeepsAllowedSubset(t *testing.T) {
	svc := newFastDocumentService()

	files := []FileUpload{
		{Name: "charter.pdf", ContentType: "application/pdf"},
		{Name: "virus.exe", ContentType: "application/octet-stream"},
		{Name: "notes.txt", ContentType: "text/plain"},
		{Name: "movie.mp4", ContentType: "video/mp4"},
	}

	accepted, err := svc.Validate(files)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if len(accepted) != 2 {
		t.Fatalf("expected 2 accepted files, got %d", len(accepted))
	}
	if accepted[0].Name != "charter.pdf" || accepted[1].Name != "notes.txt" {
		t.Fatalf("wrong subset kept: %v", accepted)
	}
}

func TestValidateRejectsWholeBatchWhenNothingAllowed(t *testing.T) {
	svc := newFastDocumentService()

	accepted, err := svc.Validate([]FileUpload{
		{Name: "payload.exe", ContentType: "application/octet-stream"},
	})
	if !errors.Is(err, ErrNoValidFiles) {
		t.Fatalf("expected ErrNoValidFiles, got %v", err)
	}
	if len(accepted) != 0 {
		t.Fatalf("expected no accepted files, got %d", len(accepted))
	}
}

func TestValidateByExtensionWithoutMIME(t *testing.T) {
	svc := newFastDocumentService()

	accepted, err := svc.Validate([]FileUpload{
		{Name: "stowage.XLSX", ContentType: "application/octet-stream"},
	})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if len(accepted) != 1 {
		t.Fatal("extension alone should be enough")
	}
}

func TestProcessPlainTextVerbatim(t *testing.T) {
	svc := newFastDocumentService()

	docs, err := svc.Process([]FileUpload{
		{Name: "note.txt", ContentType: "text/plain", Data: []byte("hello")},
	}, nil)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	if docs[0].Content != "hello" {
		t.Fatalf("plain text must pass through verbatim, got %q", docs[0].Content)
	}
	if docs[0].Size != 5 {
		t.Fatalf("size = %d, want 5", docs[0].Size)
	}
}

func TestProcessPlaceholderForBinaryTypes(t *testing.T) {
	svc := newFastDocumentService()

	docs, err := svc.Process([]FileUpload{
		{Name: "charter-party.pdf", ContentType: "application/pdf", Data: []byte{0x25, 0x50}},
	}, nil)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if !strings.Contains(docs[0].Content, "charter-party.pdf") {
		t.Fatalf("placeholder should name the file, got %q", docs[0].Content)
	}
}

func TestProcessProgressAdvancesAndFinishesAt100(t *testing.T) {
	svc := newFastDocumentService()

	var updates []int
	_, err := svc.Process([]FileUpload{
		{Name: "a.txt", ContentType: "text/plain", Data: []byte("a")},
		{Name: "b.txt", ContentType: "text/plain", Data: []byte("b")},
		{Name: "c.txt", ContentType: "text/plain", Data: []byte("c")},
	}, func(pct int) { updates = append(updates, pct) })
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if len(updates) != 4 {
		t.Fatalf("expected one update per item plus the final one, got %v", updates)
	}
	for i := 1; i < len(updates); i++ {
		if updates[i] <= updates[i-1] {
			t.Fatalf("progress not monotonic: %v", updates)
		}
	}
	if updates[len(updates)-1] != 100 {
		t.Fatalf("final progress = %d, want 100", updates[len(updates)-1])
	}
}

func TestProcessFailureAbandonsBatch(t *testing.T) {
	svc := newFastDocumentService()

	var last int
	docs, err := svc.Process([]FileUpload{
		{Name: "good.txt", ContentType: "text/plain", Data: []byte("fine")},
		{Name: "", ContentType: "text/plain", Data: []byte("nameless")},
	}, func(pct int) { last = pct })

	if err == nil {
		t.Fatal("expected processing error")
	}
	if docs != nil {
		t.Fatalf("a failed batch must produce no documents, got %d", len(docs))
	}
	if last != 0 {
		t.Fatalf("progress should reset to zero on failure, got %d", last)
	}
}
