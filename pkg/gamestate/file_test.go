package gamestate

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestFileBridge_WriteAndRead(t *testing.T) {
	dir := t.TempDir()
	b := NewFileBridge(dir, testLogger())
	ctx := context.Background()

	if err := b.WriteGameInfo(ctx, KeyAggro, "1"); err != nil {
		t.Fatalf("Failed to write game info: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, KeyAggro+".txt"))
	if err != nil {
		t.Fatalf("Expected file to be written: %v", err)
	}
	if string(data) != "1" {
		t.Errorf("Expected file content '1', got %q", string(data))
	}

	got, err := b.ReadGameInfo(ctx, KeyAggro)
	if err != nil {
		t.Fatalf("Failed to read game info: %v", err)
	}
	if got != "1" {
		t.Errorf("Expected '1', got %q", got)
	}

	// Second write replaces the first
	if err := b.WriteGameInfo(ctx, KeyAggro, "0"); err != nil {
		t.Fatalf("Failed to overwrite game info: %v", err)
	}
	got, _ = b.ReadGameInfo(ctx, KeyAggro)
	if got != "0" {
		t.Errorf("Expected '0' after overwrite, got %q", got)
	}
}

func TestFileBridge_ReadTrimsWhitespace(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, KeyCurrentLocation+".txt"), []byte("Whiterun\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	b := NewFileBridge(dir, testLogger())
	got, err := b.ReadGameInfo(context.Background(), KeyCurrentLocation)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "Whiterun" {
		t.Errorf("Expected 'Whiterun', got %q", got)
	}
}

func TestFileBridge_ReadMissingKey(t *testing.T) {
	b := NewFileBridge(t.TempDir(), testLogger())

	got, err := b.ReadGameInfo(context.Background(), KeyPlayerName)
	if err != nil {
		t.Fatalf("Expected no error for missing key, got: %v", err)
	}
	if got != "" {
		t.Errorf("Expected empty value, got %q", got)
	}
}

func TestFileBridge_InvalidKey(t *testing.T) {
	b := NewFileBridge(t.TempDir(), testLogger())
	ctx := context.Background()

	for _, key := range []string{"", "../escape", `sub\key`, ".."} {
		if err := b.WriteGameInfo(ctx, key, "x"); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("WriteGameInfo(%q): expected ErrInvalidKey, got %v", key, err)
		}
		if _, err := b.ReadGameInfo(ctx, key); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("ReadGameInfo(%q): expected ErrInvalidKey, got %v", key, err)
		}
	}
}

func TestFileBridge_MissingDirectory(t *testing.T) {
	b := NewFileBridge(filepath.Join(t.TempDir(), "not-there"), testLogger())

	if err := b.WriteGameInfo(context.Background(), KeyAggro, "1"); err == nil {
		t.Error("Expected error writing into a missing directory")
	}
}

func TestFileBridge_CancelledContext(t *testing.T) {
	b := NewFileBridge(t.TempDir(), testLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := b.WriteGameInfo(ctx, KeyAggro, "1"); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
