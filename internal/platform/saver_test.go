package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirectorySaverWritesFile(t *testing.T) {
	dir := t.TempDir()
	saver := NewDirectorySaver(func() string { return dir })

	path, err := saver.Save("photo.jpg", []byte("jpeg-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != filepath.Join(dir, "photo.jpg") {
		t.Errorf("unexpected path %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved file: %v", err)
	}
	if string(data) != "jpeg-bytes" {
		t.Errorf("unexpected file contents %q", data)
	}
}

func TestDirectorySaverCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "not-yet-created")
	saver := NewDirectorySaver(func() string { return dir })

	if _, err := saver.Save("photo.png", []byte("png")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("output directory was not created: %v", err)
	}
}

func TestDirectorySaverAvoidsCollisions(t *testing.T) {
	dir := t.TempDir()
	saver := NewDirectorySaver(func() string { return dir })

	first, err := saver.Save("photo.jpg", []byte("one"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := saver.Save("photo.jpg", []byte("two"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if second == first {
		t.Fatal("expected a distinct path for the second save")
	}
	if want := filepath.Join(dir, "photo (1).jpg"); second != want {
		t.Errorf("expected %s, got %s", want, second)
	}

	data, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("failed to read first file: %v", err)
	}
	if string(data) != "one" {
		t.Error("first file was overwritten")
	}
}

func TestDirectorySaverStripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	saver := NewDirectorySaver(func() string { return dir })

	path, err := saver.Save("../escape/photo.jpg", []byte("data"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != filepath.Join(dir, "photo.jpg") {
		t.Errorf("expected path inside the output directory, got %s", path)
	}
}
