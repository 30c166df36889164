package database

import (
	"context"
	"testing"
)

func TestSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if _, ok := db.GetSetting(ctx, "theme"); ok {
		t.Fatalf("expected missing setting to report !ok")
	}
	if err := db.SetSetting(ctx, "theme", "dracula"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if v, ok := db.GetSetting(ctx, "theme"); !ok || v != "dracula" {
		t.Fatalf("GetSetting = %q, %v", v, ok)
	}
	if err := db.SetSetting(ctx, "theme", "default"); err != nil {
		t.Fatalf("SetSetting overwrite failed: %v", err)
	}
	if v, _ := db.GetSetting(ctx, "theme"); v != "default" {
		t.Fatalf("expected overwrite to win, got %q", v)
	}
}
