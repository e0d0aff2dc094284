package s3

import "testing"

func TestS3Backend_ObjectNames(t *testing.T) {
	sb, err := NewS3Backend(&S3BackendConfig{
		Endpoint: "localhost:9000",
		Bucket:   "dumpargs",
		Prefix:   "team/presets",
	})
	if err != nil {
		t.Fatalf("NewS3Backend failed: %v", err)
	}

	if got := sb.objectName("psx-cd"); got != "team/presets/psx-cd.json" {
		t.Errorf("Expected team/presets/psx-cd.json, got %s", got)
	}

	tests := map[string]struct {
		name string
		ok   bool
	}{
		"team/presets/psx-cd.json":    {name: "psx-cd", ok: true},
		"team/presets/nested/cd.json": {ok: false},
		"team/presets/.json":          {ok: false},
		"team/presets/readme.txt":     {ok: false},
		"other/psx-cd.json":           {ok: false},
	}

	for object, test := range tests {
		name, ok := sb.presetName(object)
		if ok != test.ok || (ok && name != test.name) {
			t.Errorf("presetName(%q): expected %q (%v), got %q (%v)", object, test.name, test.ok, name, ok)
		}
	}
}

func TestS3Backend_DefaultPrefix(t *testing.T) {
	sb, err := NewS3Backend(&S3BackendConfig{Endpoint: "localhost:9000", Bucket: "dumpargs"})
	if err != nil {
		t.Fatalf("NewS3Backend failed: %v", err)
	}

	if got := sb.objectName("dvd"); got != "presets/dvd.json" {
		t.Errorf("Expected presets/dvd.json, got %s", got)
	}
}
