package domain

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestSelectedFileFromBytes(t *testing.T) {
	f := NewSelectedFileFromBytes("a.pdf", PDFMimeType, []byte("%PDF"))

	if f.Size != 4 || !f.IsPDF() {
		t.Fatalf("unexpected file: %+v", f)
	}

	// Open can be called once per submission.
	for i := 0; i < 2; i++ {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		data, _ := io.ReadAll(rc)
		rc.Close()
		if string(data) != "%PDF" {
			t.Fatalf("unexpected content: %q", data)
		}
	}
}

func TestSelectedFileFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "certidao.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.7"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := NewSelectedFileFromPath(path, PDFMimeType)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Name != "certidao.pdf" || f.Size != 8 {
		t.Fatalf("unexpected file: %+v", f)
	}

	if _, err := NewSelectedFileFromPath(dir, PDFMimeType); err == nil {
		t.Fatalf("expected directory to be rejected")
	}
	if _, err := NewSelectedFileFromPath(filepath.Join(dir, "missing.pdf"), PDFMimeType); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestIsPDF_ExactMatch(t *testing.T) {
	cases := map[string]bool{
		"application/pdf":                 true,
		"APPLICATION/PDF":                 false,
		"application/pdf; charset=binary": false,
		"application/x-pdf":               false,
		"":                                false,
	}
	for mimeType, want := range cases {
		f := NewSelectedFileFromBytes("x", mimeType, nil)
		if got := f.IsPDF(); got != want {
			t.Fatalf("IsPDF(%q) = %v, want %v", mimeType, got, want)
		}
	}

	var nilFile *SelectedFile
	if nilFile.IsPDF() {
		t.Fatalf("nil file is not a pdf")
	}
	if _, err := nilFile.Open(); !errors.Is(err, ErrNoFileSelected) {
		t.Fatalf("expected ErrNoFileSelected, got %v", err)
	}
}

func TestViewCard(t *testing.T) {
	v := &View{Cards: []Card{{Slot: SlotAddress, Text: "Endereço: Rua A"}}}

	if c, ok := v.Card(SlotAddress); !ok || c.Text != "Endereço: Rua A" {
		t.Fatalf("expected address card, got %+v", c)
	}
	if _, ok := v.Card(SlotOwners); ok {
		t.Fatalf("did not expect owners card")
	}
	var nilView *View
	if _, ok := nilView.Card(SlotAddress); ok {
		t.Fatalf("nil view has no cards")
	}
}
