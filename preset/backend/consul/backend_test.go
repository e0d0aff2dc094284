package consul

import "testing"

func TestConsulBackend_Keys(t *testing.T) {
	tests := map[string]struct {
		prefix   string
		expected string
	}{
		"default":        {prefix: "", expected: "dumpargs/presets/psx-cd"},
		"leading slash":  {prefix: "/lab/presets", expected: "lab/presets/psx-cd"},
		"trailing slash": {prefix: "lab/", expected: "lab/psx-cd"},
	}

	for name, test := range tests {
		t.Run(name, func(tst *testing.T) {
			cb, err := NewConsulBackend(&ConsulBackendConfig{Prefix: test.prefix})
			if err != nil {
				tst.Fatalf("NewConsulBackend failed: %v", err)
			}

			key := cb.buildKey("psx-cd")
			if key != test.expected {
				tst.Errorf("Expected %s, got %s", test.expected, key)
			}
			if got := cb.presetName(key); got != "psx-cd" {
				tst.Errorf("Expected psx-cd, got %s", got)
			}
		})
	}
}

func TestConsulBackend_Capabilities(t *testing.T) {
	cb, err := NewConsulBackend(nil)
	if err != nil {
		t.Fatalf("NewConsulBackend failed: %v", err)
	}

	caps := cb.GetCapabilities()
	if caps.Fits(600 * 1024) {
		t.Errorf("Expected values above the consul limit to be rejected")
	}
	if cb.config.Address != "127.0.0.1:8500" {
		t.Errorf("Expected default address, got %s", cb.config.Address)
	}
}
