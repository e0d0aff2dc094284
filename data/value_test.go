package data_test

import (
	"testing"

	"github.com/mwantia/dumpargs/data"
)

func TestParseValue(t *testing.T) {
	tests := map[string]struct {
		kind     data.FlagKind
		token    string
		expected data.Value
		fail     bool
	}{
		"int8":           {kind: data.KindInt8, token: "127", expected: data.Int8Value(127)},
		"int8 overflow":  {kind: data.KindInt8, token: "128", fail: true},
		"int16 negative": {kind: data.KindInt16, token: "-3", expected: data.Int16Value(-3)},
		"int32":          {kind: data.KindInt32, token: "2048", expected: data.Int32Value(2048)},
		"int64":          {kind: data.KindInt64, token: "1099511627776", expected: data.Int64Value(1 << 40)},
		"not a number":   {kind: data.KindInt64, token: "abc", fail: true},
		"fraction":       {kind: data.KindInt32, token: "1.5", fail: true},
		"string":         {kind: data.KindString, token: "hello world", expected: data.StringValue("hello world")},
		"boolean":        {kind: data.KindBoolean, token: "true", expected: data.BoolValue(true)},
	}

	for name, test := range tests {
		t.Run(name, func(tst *testing.T) {
			got, err := data.ParseValue(test.kind, test.token)
			if test.fail {
				if err == nil {
					tst.Fatalf("Expected failure, got %+v", got)
				}
				return
			}
			if err != nil {
				tst.Fatalf("ParseValue failed: %v", err)
			}
			if got != test.expected {
				tst.Errorf("Expected %+v, got %+v", test.expected, got)
			}
			if got.String() != test.token {
				tst.Errorf("Expected %q, got %q", test.token, got.String())
			}
		})
	}
}
