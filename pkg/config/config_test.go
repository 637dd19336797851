package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	_, err := Load("/nonexistent/path/retaildb.yaml")
	if err == nil {
		t.Fatal("expected error for nonexistent path")
	}
	// Load with empty path uses default search (may use defaults if no config file)
	cfg, _ := Load("")
	if cfg.Index.Ordered != "bst" {
		t.Errorf("default ordered: got %s", cfg.Index.Ordered)
	}
	if !cfg.Index.FallbackSearch {
		t.Errorf("default fallback_search: got false")
	}
	if cfg.Index.BTreeDegree != 32 {
		t.Errorf("default btree_degree: got %d", cfg.Index.BTreeDegree)
	}
	if cfg.Storage.Codec != "json" {
		t.Errorf("default codec: got %s", cfg.Storage.Codec)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("default log format: got %s", cfg.Log.Format)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	content := `
index:
  ordered: btree
  btree_degree: 8
  fallback_search: false
  verify_writes: true
storage:
  path: "test_data/snap.db"
  codec: bson
log:
  level: debug
  format: dev
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Index.Ordered != "btree" {
		t.Errorf("ordered: got %s", cfg.Index.Ordered)
	}
	if cfg.Index.BTreeDegree != 8 {
		t.Errorf("btree_degree: got %d", cfg.Index.BTreeDegree)
	}
	if cfg.Index.FallbackSearch {
		t.Errorf("fallback_search: expected explicit false to stick")
	}
	if !cfg.Index.VerifyWrites {
		t.Errorf("verify_writes: got false")
	}
	if cfg.Storage.Path != "test_data/snap.db" {
		t.Errorf("path: got %s", cfg.Storage.Path)
	}
	if cfg.Storage.Codec != "bson" {
		t.Errorf("codec: got %s", cfg.Storage.Codec)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "dev" {
		t.Errorf("log: got level=%s format=%s", cfg.Log.Level, cfg.Log.Format)
	}
}

func TestLoadRepairsInvalidDegree(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("index:\n  btree_degree: 1\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Index.BTreeDegree != 32 {
		t.Errorf("btree_degree: expected repair to 32, got %d", cfg.Index.BTreeDegree)
	}
	if cfg.Index.Ordered != "bst" {
		t.Errorf("ordered: got %s", cfg.Index.Ordered)
	}
}
