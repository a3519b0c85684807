package convert

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kaanaksulu/heic-flip/internal/model"
)

// stubConverter converts by echoing the input bytes, failing for any source
// name present in failOn.
type stubConverter struct {
	failOn map[string]bool
	calls  []string
}

func (sc *stubConverter) Convert(data []byte, sourceName string, cfg model.ConversionConfig) ([]byte, error) {
	sc.calls = append(sc.calls, sourceName)
	if sc.failOn[sourceName] {
		return nil, errors.New("decoder exploded")
	}
	out := append([]byte("converted:"), data...)
	return out, nil
}

func newTestService(sc *stubConverter) *Service {
	s := NewService(sc)
	s.SetStages(nil) // no cosmetic pauses in tests
	return s
}

func testFiles(names ...string) []model.SourceFile {
	files := make([]model.SourceFile, 0, len(names))
	for _, name := range names {
		files = append(files, model.SourceFile{Name: name, Data: []byte(name)})
	}
	return files
}

func TestConvertBatch_AllSucceed(t *testing.T) {
	sc := &stubConverter{}
	s := newTestService(sc)
	cfg := model.ConversionConfig{OutputFormat: model.FormatJPEG, Quality: 85}

	files := testFiles("a.heic", "b.heic")
	results := s.ConvertBatch(context.Background(), files, cfg, nil)

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Failed() {
			t.Errorf("Result %d unexpectedly failed: %s", i, r.ErrorReason)
		}
		if r.SourceName != files[i].Name {
			t.Errorf("Result %d out of order: got %s, expected %s", i, r.SourceName, files[i].Name)
		}
	}

	if results[0].OutputName != "a.jpg" || results[1].OutputName != "b.jpg" {
		t.Errorf("Unexpected output names: %s, %s", results[0].OutputName, results[1].OutputName)
	}
}

func TestConvertBatch_MiddleFailureIsIsolated(t *testing.T) {
	sc := &stubConverter{failOn: map[string]bool{"two.heic": true}}
	s := newTestService(sc)
	cfg := model.ConversionConfig{OutputFormat: model.FormatPNG, Quality: 85}

	var finalPercent int
	results := s.ConvertBatch(context.Background(), testFiles("one.heic", "two.heic", "three.heic"), cfg,
		func(percent int, stage string) {
			finalPercent = percent
		})

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	if results[0].Failed() {
		t.Errorf("Result 0 unexpectedly failed: %s", results[0].ErrorReason)
	}
	if !results[1].Failed() {
		t.Error("Expected result 1 to fail")
	}
	if results[1].ErrorReason != FailureReason {
		t.Errorf("Expected generic failure reason %q, got %q", FailureReason, results[1].ErrorReason)
	}
	if results[2].Failed() {
		t.Errorf("Result 2 unexpectedly failed: %s", results[2].ErrorReason)
	}

	// ErrorReason is set iff the output is empty.
	for i, r := range results {
		if r.Failed() != (r.Size() == 0) {
			t.Errorf("Result %d violates the empty-output invariant: failed=%v size=%d", i, r.Failed(), r.Size())
		}
	}

	if finalPercent != 100 {
		t.Errorf("Expected final progress 100, got %d", finalPercent)
	}

	// All three files were attempted despite the middle failure.
	if len(sc.calls) != 3 {
		t.Errorf("Expected 3 converter calls, got %d", len(sc.calls))
	}
}

func TestConvertBatch_ProgressIsMonotone(t *testing.T) {
	sc := &stubConverter{}
	s := newTestService(sc)
	cfg := model.ConversionConfig{OutputFormat: model.FormatJPEG, Quality: 85}

	var percents []int
	s.ConvertBatch(context.Background(), testFiles("a.png", "b.png", "c.png", "d.png", "e.png", "f.png", "g.png"), cfg,
		func(percent int, stage string) {
			percents = append(percents, percent)
		})

	if len(percents) == 0 {
		t.Fatal("Expected progress callbacks")
	}
	for i := 1; i < len(percents); i++ {
		if percents[i] < percents[i-1] {
			t.Fatalf("Progress went backwards at %d: %v", i, percents)
		}
	}
	if percents[len(percents)-1] != 100 {
		t.Errorf("Expected final progress 100, got %d", percents[len(percents)-1])
	}
}

func TestConvertBatch_StageLabels(t *testing.T) {
	sc := &stubConverter{}
	s := NewService(sc)
	s.SetStages([]Stage{
		{Label: "Preparing conversion..."},
		{Label: "Analyzing source files..."},
	})
	cfg := model.ConversionConfig{OutputFormat: model.FormatJPEG, Quality: 85}

	var stages []string
	s.ConvertBatch(context.Background(), testFiles("a.heic"), cfg, func(percent int, stage string) {
		if stage != "" {
			if percent != 0 {
				t.Errorf("Stage %q emitted at percent %d, expected 0", stage, percent)
			}
			stages = append(stages, stage)
		}
	})

	if len(stages) != 2 || stages[0] != "Preparing conversion..." || stages[1] != "Analyzing source files..." {
		t.Errorf("Unexpected stage sequence: %v", stages)
	}
}

func TestConvertBatch_EmptyInput(t *testing.T) {
	s := newTestService(&stubConverter{})
	cfg := model.ConversionConfig{OutputFormat: model.FormatJPEG, Quality: 85}

	results := s.ConvertBatch(context.Background(), nil, cfg, nil)
	if len(results) != 0 {
		t.Errorf("Expected no results for empty input, got %d", len(results))
	}
}

func TestConvertBatch_Cancellation(t *testing.T) {
	sc := &stubConverter{}
	s := newTestService(sc)
	cfg := model.ConversionConfig{OutputFormat: model.FormatJPEG, Quality: 85}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	files := testFiles("a.heic", "b.heic", "c.heic")
	results := s.ConvertBatch(ctx, files, cfg, nil)

	// The one-result-per-file invariant holds even when cancelled.
	if len(results) != 3 {
		t.Fatalf("Expected 3 results after cancellation, got %d", len(results))
	}
	for i, r := range results {
		if !r.Failed() {
			t.Errorf("Result %d should be failed after cancellation", i)
		}
		if !strings.Contains(r.ErrorReason, "cancelled") {
			t.Errorf("Result %d reason %q should mention cancellation", i, r.ErrorReason)
		}
	}
	if len(sc.calls) != 0 {
		t.Errorf("Expected no converter calls after cancellation, got %d", len(sc.calls))
	}
}

func TestGenerateResultID(t *testing.T) {
	id1 := generateResultID()
	id2 := generateResultID()

	if id1 == id2 {
		t.Error("Expected different result IDs")
	}
	if !strings.HasPrefix(id1, resultIDPrefix) {
		t.Errorf("Expected ID to start with %q, got: %s", resultIDPrefix, id1)
	}
}
