package defaults

import (
	"encoding/json"
	"testing"
)

func TestEmbeddedConfigsParse(t *testing.T) {
	sys, err := SystemConfig()
	if err != nil {
		t.Fatalf("SystemConfig: %v", err)
	}
	var v map[string]interface{}
	if err := json.Unmarshal(sys, &v); err != nil {
		t.Fatalf("system config is not valid JSON: %v", err)
	}

	app, err := AppConfig("pixelgrid")
	if err != nil {
		t.Fatalf("AppConfig: %v", err)
	}
	if err := json.Unmarshal(app, &v); err != nil {
		t.Fatalf("pixelgrid config is not valid JSON: %v", err)
	}
	if _, ok := v["pixelgrid.palette"]; !ok {
		t.Fatalf("expected palette section in pixelgrid defaults")
	}

	if _, err := AppConfig(""); err == nil {
		t.Fatalf("expected error for empty app name")
	}
	if _, err := AppConfig("missing"); err == nil {
		t.Fatalf("expected error for unknown app")
	}
}
