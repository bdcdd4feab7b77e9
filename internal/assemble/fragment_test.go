package assemble

import (
	"encoding/json"
	"testing"
)

func raw(s string) json.RawMessage { return json.RawMessage(s) }

func TestDescribed_NameAndDescription(t *testing.T) {
	frags := Produce(TypeCharacter, raw(`{"name":"Mira","description":"tall woman, cybernetic eye"}`))
	if len(frags) != 1 {
		t.Fatalf("expected 1 fragment, got %d", len(frags))
	}
	if frags[0].Text != "Mira: tall woman, cybernetic eye" {
		t.Errorf("got %q", frags[0].Text)
	}
	if frags[0].Category != CategoryCharacter {
		t.Errorf("got category %d", frags[0].Category)
	}
}

func TestDescribed_PartialFields(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{"name only", `{"name":"Mira"}`, "Mira"},
		{"description only", `{"description":"tall woman"}`, "tall woman"},
		{"whitespace trimmed", `{"name":"  Mira  ","description":" tall "}`, "Mira: tall"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frags := Produce(TypeSetting, raw(tt.payload))
			if len(frags) != 1 || frags[0].Text != tt.want {
				t.Errorf("got %+v, want text %q", frags, tt.want)
			}
		})
	}
}

func TestDescribed_EmptyProducesNothing(t *testing.T) {
	if frags := Produce(TypeProp, raw(`{}`)); frags != nil {
		t.Errorf("empty payload should produce nothing, got %+v", frags)
	}
}

func TestDescribed_CategoriesPerType(t *testing.T) {
	payload := raw(`{"name":"x"}`)
	tests := []struct {
		nodeType string
		category Category
	}{
		{TypeCharacter, CategoryCharacter},
		{TypeOutfit, CategoryOutfit},
		{TypeSetting, CategorySetting},
		{TypeProp, CategoryProp},
		{TypeExtras, CategoryExtras},
		{TypeStyle, CategoryStyle},
	}
	for _, tt := range tests {
		frags := Produce(tt.nodeType, payload)
		if len(frags) != 1 || frags[0].Category != tt.category {
			t.Errorf("%s: got %+v, want category %d", tt.nodeType, frags, tt.category)
		}
	}
}

func TestShot_PresetLabel(t *testing.T) {
	frags := Produce(TypeShot, raw(`{"preset":"closeup"}`))
	if len(frags) != 1 || frags[0].Text != "Close-up" {
		t.Errorf("got %+v", frags)
	}
	if frags[0].Category != CategoryShot {
		t.Errorf("got category %d", frags[0].Category)
	}
}

func TestShot_PresetWithNote(t *testing.T) {
	frags := Produce(TypeShot, raw(`{"preset":"wide","note":"from behind"}`))
	if len(frags) != 1 || frags[0].Text != "Wide shot, from behind" {
		t.Errorf("got %+v", frags)
	}
}

func TestShot_UnknownPresetPassedThrough(t *testing.T) {
	frags := Produce(TypeShot, raw(`{"preset":"dutch angle"}`))
	if len(frags) != 1 || frags[0].Text != "dutch angle" {
		t.Errorf("got %+v", frags)
	}
}

func TestShot_EmptyProducesNothing(t *testing.T) {
	if frags := Produce(TypeShot, raw(`{}`)); frags != nil {
		t.Errorf("got %+v", frags)
	}
}

func TestTimePeriod_EraLabel(t *testing.T) {
	frags := Produce(TypeTimePeriod, raw(`{"era":"victorian"}`))
	if len(frags) != 1 || frags[0].Text != "Victorian era" {
		t.Fatalf("got %+v", frags)
	}
	if frags[0].Category != CategoryTimePeriod {
		t.Errorf("got category %d", frags[0].Category)
	}
}

func TestTimePeriod_WithRegion(t *testing.T) {
	frags := Produce(TypeTimePeriod, raw(`{"era":"twenties","region":"New York"}`))
	if len(frags) != 1 || frags[0].Text != "1920s, New York" {
		t.Errorf("got %+v", frags)
	}
}

func TestTimePeriod_CustomEra(t *testing.T) {
	frags := Produce(TypeTimePeriod, raw(`{"era":"custom","custom":"post-apocalyptic 2200s"}`))
	if len(frags) != 1 || frags[0].Text != "post-apocalyptic 2200s" {
		t.Errorf("got %+v", frags)
	}
}

func TestTimePeriod_AutoNegative(t *testing.T) {
	frags := Produce(TypeTimePeriod, raw(`{"era":"victorian","autoNegative":true}`))
	if len(frags) != 2 {
		t.Fatalf("expected era + negative fragments, got %+v", frags)
	}
	if frags[1].Category != CategoryNegative {
		t.Errorf("second fragment should be negative, got %d", frags[1].Category)
	}
	if frags[1].Text == "" {
		t.Error("negative terms should not be empty")
	}
}

func TestTimePeriod_AutoNegativeModernEraHasNone(t *testing.T) {
	frags := Produce(TypeTimePeriod, raw(`{"era":"modern","autoNegative":true}`))
	if len(frags) != 1 {
		t.Errorf("modern era has no anachronism terms, got %+v", frags)
	}
}

func TestText_Categories(t *testing.T) {
	payload := raw(`{"text":"she turns toward the window"}`)
	tests := []struct {
		nodeType string
		category Category
	}{
		{TypeAction, CategoryAction},
		{TypeEdit, CategoryEdit},
		{TypeNegative, CategoryNegative},
		{TypeText, CategoryText},
	}
	for _, tt := range tests {
		frags := Produce(tt.nodeType, payload)
		if len(frags) != 1 || frags[0].Category != tt.category {
			t.Errorf("%s: got %+v", tt.nodeType, frags)
		}
	}
}

func TestIntercept_EffectiveOutput(t *testing.T) {
	frags := Produce(TypePrompt, raw(`{
		"prompt": {"assembled":"A","edited":"B","isEdited":true},
		"negative": {"assembled":"blurry","edited":"blurry","isEdited":false}
	}`))
	if len(frags) != 2 {
		t.Fatalf("got %+v", frags)
	}
	if frags[0].Text != "B" || frags[0].Category != CategoryText {
		t.Errorf("edited prompt should win: %+v", frags[0])
	}
	if frags[1].Text != "blurry" || frags[1].Category != CategoryNegative {
		t.Errorf("negative pass-through: %+v", frags[1])
	}
}

func TestProduce_UnknownTypeIsNoop(t *testing.T) {
	if frags := Produce("hologram", raw(`{"text":"x"}`)); frags != nil {
		t.Errorf("unknown type should produce nothing, got %+v", frags)
	}
}

func TestProduce_ParametersAndReferenceProduceNoText(t *testing.T) {
	if frags := Produce(TypeParameters, raw(`{"model":"x"}`)); frags != nil {
		t.Errorf("parameters: got %+v", frags)
	}
	if frags := Produce(TypeReference, raw(`{"imageId":"i1"}`)); frags != nil {
		t.Errorf("reference: got %+v", frags)
	}
}

func TestProduce_MalformedPayloadDegrades(t *testing.T) {
	tests := []string{`not json`, `[]`, `{"name":42}`, ``}
	for _, payload := range tests {
		// Must not panic; missing fields behave as absent.
		frags := Produce(TypeCharacter, raw(payload))
		if frags != nil {
			t.Errorf("payload %q: expected nothing, got %+v", payload, frags)
		}
	}
}
