package savefile

import (
	"errors"
	"testing"
)

func TestParseRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "Not JSON", text: "hello there"},
		{name: "Truncated JSON", text: `{"playerData":`},
		{name: "Array Root", text: `[1,2,3]`},
		{name: "Scalar Root", text: `42`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			if err == nil {
				t.Fatal("Parse() expected an error")
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Errorf("Parse() error = %T, want *FormatError", err)
			}
		})
	}
}

func TestDocumentCasingVariants(t *testing.T) {
	doc, err := Parse(`{
		"playerData": {
			"hasDash": true,
			"NailUpgrades": 3,
			"Tools": {"savedData": [{"Name": "Tack", "Data": {"IsUnlocked": true}}]}
		},
		"SceneData": {"persistentBools": {"SerializedList": []}}
	}`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{name: "Exact Case", got: doc.Bool("playerData.hasDash"), want: true},
		{name: "Upper First Requested", got: doc.Bool("PlayerData.HasDash"), want: true},
		{name: "Lower First Requested", got: doc.Int("playerData.nailUpgrades"), want: 3},
		{name: "Mixed Depth", got: doc.Str("playerData.tools.SavedData.0.name"), want: "Tack"},
		{name: "Scene Root", got: len(doc.List("sceneData.persistentBools.serializedList")), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestDocumentMissingStructureDefaults(t *testing.T) {
	doc, err := Parse(`{"playerData":{"silk": "not a list"}}`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := doc.Str("playerData.profileName"); got != "" {
		t.Errorf("Str on missing field = %q, want empty", got)
	}
	if got := doc.Bool("playerData.hasDash"); got {
		t.Error("Bool on missing field = true, want false")
	}
	if got := doc.Int("playerData.nailUpgrades"); got != 0 {
		t.Errorf("Int on missing field = %d, want 0", got)
	}
	if got := doc.List("playerData.silk"); len(got) != 0 {
		t.Errorf("List on non-array = %d elements, want 0", len(got))
	}
	if got := doc.List("no.such.subtree.at.all"); len(got) != 0 {
		t.Errorf("List on missing subtree = %d elements, want 0", len(got))
	}
}

func TestLookupEscapesAwkwardKeys(t *testing.T) {
	doc, err := Parse(`{"playerData":{"Heart*Piece":true,"what?":1}}`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !doc.Bool("playerData.Heart*Piece") {
		t.Error("Lookup treated a literal * as a wildcard")
	}
	if doc.Int("playerData.what?") != 1 {
		t.Error("Lookup treated a literal ? as a wildcard")
	}
}
