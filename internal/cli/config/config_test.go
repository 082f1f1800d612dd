package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad(t *testing.T) {
	cases := []struct {
		name, content string
		out           Config
	}{
		{"config.yaml", "output_format: json\nencoding: hex\nlog: true\n", Config{"json", "hex", true}},
		{"config.yml", "encoding: base64\n", Config{"table", "base64", false}},
		{"config.toml", "output_format = \"yaml\"\nlog = true\n", Config{"yaml", "", true}},
		{"CONFIG.TOML", "encoding = \"ascii\"\n", Config{"table", "ascii", false}},
	}

	for _, c := range cases {
		cfg, err := Load(write(t, c.name, c.content))
		if err != nil {
			t.Errorf("%s: %v", c.name, err)
			continue
		}

		if *cfg != c.out {
			t.Errorf("%s: expected %+v, got %+v", c.name, c.out, *cfg)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.OutputFormat != "table" || cfg.Encoding != "" || cfg.Log {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	for _, name := range []string{"bad.yaml", "bad.toml"} {
		if _, err := Load(write(t, name, "output_format: [\n= =")); err == nil {
			t.Errorf("%s: expected a parse error", name)
		}
	}
}

func TestDefaultPath(t *testing.T) {
	p := DefaultPath()
	if !strings.HasSuffix(p, filepath.Join(".cursorbuf", "config.yaml")) {
		t.Errorf("unexpected default path %s", p)
	}
}
