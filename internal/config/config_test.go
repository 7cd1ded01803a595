package config

import (
	"os"
	"reflect"
	"testing"
	"time"
)

func TestConfigLoad_Defaults(t *testing.T) {
	// clear env vars, prefixed and the unprefixed fallbacks envconfig also reads
	for _, k := range []string{"URL", "TIMEOUT", "WAIT", "QUERY", "PLATFORMS", "MAX_RESULTS", "OUTPUT", "LOG_FORMAT", "DEBUG", "METRICS_FILE"} {
		_ = os.Unsetenv(Prefix + "_" + k)
		_ = os.Unsetenv(k)
	}

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if !reflect.DeepEqual(cfg, NewForTesting()) {
		t.Fatalf("defaults drifted from NewForTesting: %+v", cfg)
	}
}

func TestConfigLoad_EnvOverride(t *testing.T) {
	t.Setenv("SHOPSEARCH_URL", "http://search.internal:8080")
	t.Setenv("SHOPSEARCH_PLATFORMS", "alibaba,temu,daraz")
	t.Setenv("SHOPSEARCH_MAX_RESULTS", "25")
	t.Setenv("SHOPSEARCH_TIMEOUT", "3s")

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.URL != "http://search.internal:8080" || cfg.MaxResults != 25 || cfg.Timeout != 3*time.Second {
		t.Fatalf("env override failed: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.Platforms, []string{"alibaba", "temu", "daraz"}) {
		t.Fatalf("platforms = %v", cfg.Platforms)
	}
}

func TestConfigLoad_InvalidOutput(t *testing.T) {
	t.Setenv("SHOPSEARCH_OUTPUT", "xml")
	if _, err := New(); err == nil {
		t.Fatal("expected error for unsupported output")
	}
}

func TestValidate(t *testing.T) {
	cfg := NewForTesting()
	cfg.MaxResults = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative max results")
	}
	cfg = NewForTesting()
	cfg.LogFormat = "logfmt"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported log format")
	}
}
