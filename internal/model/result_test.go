package model

import "testing"

func TestDeriveOutputName(t *testing.T) {
	tests := []struct {
		source   string
		target   Format
		expected string
	}{
		{"IMG_0001.heic", FormatJPEG, "IMG_0001.jpg"},
		{"IMG_0001.HEIF", FormatPNG, "IMG_0001.png"},
		{"holiday.photo.png", FormatJPEG, "holiday.photo.jpg"},
		{"scan.jpeg", FormatWebP, "scan.webp"},
		{"noext", FormatPNG, "noext.png"},
		{".hidden", FormatJPEG, ".hidden.jpg"},
	}

	for _, test := range tests {
		result := DeriveOutputName(test.source, test.target)
		if result != test.expected {
			t.Errorf("DeriveOutputName(%s, %s) = %s, expected %s", test.source, test.target, result, test.expected)
		}
	}
}

func TestConversionResult_Failed(t *testing.T) {
	ok := ConversionResult{OutputName: "a.jpg", Data: []byte{1, 2, 3}}
	if ok.Failed() {
		t.Error("Expected result with data and no reason to not be failed")
	}

	failed := ConversionResult{OutputName: "b.jpg", ErrorReason: "failed to convert file"}
	if !failed.Failed() {
		t.Error("Expected result with an error reason to be failed")
	}
	if failed.Size() != 0 {
		t.Errorf("Expected failed result to carry no data, got %d bytes", failed.Size())
	}
}

func TestBatchState_Transitions(t *testing.T) {
	bs := NewBatchState()
	if bs.Status != BatchStatusIdle {
		t.Errorf("Expected new batch to be Idle, got %s", bs.Status)
	}

	bs.AddPending(SourceFile{Name: "a.png"}, SourceFile{Name: "b.png"})
	if len(bs.Pending) != 2 {
		t.Fatalf("Expected 2 pending files, got %d", len(bs.Pending))
	}

	bs.BeginRun()
	if !bs.Status.IsActive() {
		t.Errorf("Expected running batch to be active, got %s", bs.Status)
	}

	// Pending files stay visible while converting.
	if len(bs.Pending) != 2 {
		t.Errorf("Expected pending files to survive a run, got %d", len(bs.Pending))
	}

	results := []ConversionResult{
		{OutputName: "a.jpg", Data: []byte{1}},
		{OutputName: "b.jpg", ErrorReason: "failed to convert file"},
	}
	bs.CompleteRun(results)

	if !bs.Status.IsFinished() {
		t.Errorf("Expected completed batch to be finished, got %s", bs.Status)
	}
	if bs.Percent != 100 {
		t.Errorf("Expected percent 100 after completion, got %d", bs.Percent)
	}
	if got := len(bs.Succeeded()); got != 1 {
		t.Errorf("Expected 1 successful result, got %d", got)
	}

	// A new run supersedes prior results.
	bs.BeginRun()
	if bs.Results != nil {
		t.Error("Expected results to be discarded on a new run")
	}
}

func TestBatchState_RemovePending(t *testing.T) {
	bs := NewBatchState()
	bs.AddPending(SourceFile{Name: "a.png"}, SourceFile{Name: "b.png"}, SourceFile{Name: "c.png"})

	bs.RemovePending(1)
	if len(bs.Pending) != 2 {
		t.Fatalf("Expected 2 pending files after removal, got %d", len(bs.Pending))
	}
	if bs.Pending[0].Name != "a.png" || bs.Pending[1].Name != "c.png" {
		t.Errorf("Unexpected pending list after removal: %v, %v", bs.Pending[0].Name, bs.Pending[1].Name)
	}

	// Out-of-range indexes are ignored.
	bs.RemovePending(-1)
	bs.RemovePending(5)
	if len(bs.Pending) != 2 {
		t.Errorf("Expected out-of-range removal to be ignored, got %d files", len(bs.Pending))
	}
}
