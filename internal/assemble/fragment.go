package assemble

import (
	"encoding/json"
	"strings"
)

// Category orders fragments in the composed prompt. The numeric order IS the
// precedence: composition walks categories from shot to edit regardless of
// where their nodes sit in the graph.
type Category int

const (
	CategoryShot Category = iota
	CategoryCharacter
	CategoryOutfit
	CategorySetting
	CategoryProp
	CategoryExtras
	CategoryTimePeriod
	CategoryStyle
	CategoryText
	CategoryAction
	CategoryEdit
	CategoryNegative // separate stream, never part of the positive order
)

// Fragment is one categorized piece of text produced by a node's payload.
type Fragment struct {
	Category Category
	Text     string
}

// producerFunc turns a node payload into zero or more fragments. Producers
// never fail: malformed payloads decode to zero values and the missing
// fields are treated as absent.
type producerFunc func(payload json.RawMessage) []Fragment

var producers = map[string]producerFunc{
	TypeCharacter:  describedProducer(CategoryCharacter),
	TypeOutfit:     describedProducer(CategoryOutfit),
	TypeSetting:    describedProducer(CategorySetting),
	TypeProp:       describedProducer(CategoryProp),
	TypeExtras:     describedProducer(CategoryExtras),
	TypeStyle:      describedProducer(CategoryStyle),
	TypeShot:       shotProducer,
	TypeTimePeriod: timePeriodProducer,
	TypeAction:     textProducer(CategoryAction),
	TypeEdit:       textProducer(CategoryEdit),
	TypeNegative:   textProducer(CategoryNegative),
	TypeText:       textProducer(CategoryText),
	TypePrompt:     interceptProducer,
	// parameters and reference nodes produce no text: they are consumed by
	// the parameter resolver and the reference-asset path.
}

// Produce maps a node to its fragments. Unknown node types yield nil.
func Produce(nodeType string, payload json.RawMessage) []Fragment {
	producer, ok := producers[nodeType]
	if !ok {
		return nil
	}
	return producer(payload)
}

func describedProducer(category Category) producerFunc {
	return func(payload json.RawMessage) []Fragment {
		var p DescribedPayload
		_ = json.Unmarshal(payload, &p)
		name := strings.TrimSpace(p.Name)
		desc := strings.TrimSpace(p.Description)

		var text string
		switch {
		case name != "" && desc != "":
			text = name + ": " + desc
		case name != "":
			text = name
		case desc != "":
			text = desc
		default:
			return nil
		}
		return []Fragment{{Category: category, Text: text}}
	}
}

// shotLabels maps framing presets to their prompt wording.
var shotLabels = map[string]string{
	"closeup":      "Close-up",
	"medium":       "Medium shot",
	"wide":         "Wide shot",
	"overhead":     "Overhead shot",
	"low-angle":    "Low-angle shot",
	"pov":          "POV shot",
	"establishing": "Establishing shot",
	"two-shot":     "Two-shot",
}

func shotProducer(payload json.RawMessage) []Fragment {
	var p ShotPayload
	_ = json.Unmarshal(payload, &p)

	label := shotLabels[p.Preset]
	if label == "" {
		label = strings.TrimSpace(p.Preset)
	}
	note := strings.TrimSpace(p.Note)

	switch {
	case label != "" && note != "":
		return []Fragment{{Category: CategoryShot, Text: label + ", " + note}}
	case label != "":
		return []Fragment{{Category: CategoryShot, Text: label}}
	case note != "":
		return []Fragment{{Category: CategoryShot, Text: note}}
	default:
		return nil
	}
}

// eraLabels maps era presets to prompt wording. "custom" is resolved from
// the payload's Custom field instead.
var eraLabels = map[string]string{
	"ancient":     "ancient world",
	"medieval":    "medieval period",
	"renaissance": "Renaissance era",
	"victorian":   "Victorian era",
	"twenties":    "1920s",
	"fifties":     "1950s",
	"eighties":    "1980s",
	"modern":      "present day",
	"nearfuture":  "near future",
	"farfuture":   "distant future",
}

// eraNegatives holds the auto-negative terms discouraging anachronisms.
// Contemporary and future eras have none.
var eraNegatives = map[string]string{
	"ancient":     "modern buildings, electricity, cars, contemporary clothing",
	"medieval":    "modern technology, cars, electric lighting, plastic",
	"renaissance": "modern technology, cars, skyscrapers, synthetic fabrics",
	"victorian":   "cars, smartphones, modern clothing, plastic, neon signs",
	"twenties":    "modern cars, smartphones, contemporary fashion, LED lighting",
	"fifties":     "smartphones, flat-screen displays, modern architecture",
	"eighties":    "smartphones, flat-screen displays, electric cars",
}

// timePeriodProducer is the one producer that can feed both streams: an era
// fragment for the prompt and, when enabled, anachronism terms for the
// negative prompt.
func timePeriodProducer(payload json.RawMessage) []Fragment {
	var p TimePeriodPayload
	_ = json.Unmarshal(payload, &p)

	label := eraLabels[p.Era]
	if p.Era == "custom" {
		label = strings.TrimSpace(p.Custom)
	}
	region := strings.TrimSpace(p.Region)

	var frags []Fragment
	switch {
	case label != "" && region != "":
		frags = append(frags, Fragment{Category: CategoryTimePeriod, Text: label + ", " + region})
	case label != "":
		frags = append(frags, Fragment{Category: CategoryTimePeriod, Text: label})
	case region != "":
		frags = append(frags, Fragment{Category: CategoryTimePeriod, Text: region})
	}

	if p.AutoNegative {
		if terms := eraNegatives[p.Era]; terms != "" {
			frags = append(frags, Fragment{Category: CategoryNegative, Text: terms})
		}
	}
	return frags
}

func textProducer(category Category) producerFunc {
	return func(payload json.RawMessage) []Fragment {
		var p TextPayload
		_ = json.Unmarshal(payload, &p)
		text := strings.TrimSpace(p.Text)
		if text == "" {
			return nil
		}
		return []Fragment{{Category: category, Text: text}}
	}
}

// interceptProducer surfaces a prompt node's effective output, so a sink
// downstream of an intercept picks up the user's edits rather than the raw
// assembled baseline.
func interceptProducer(payload json.RawMessage) []Fragment {
	var state Intercept
	_ = json.Unmarshal(payload, &state)

	var frags []Fragment
	if text := state.Prompt.Effective(); text != "" {
		frags = append(frags, Fragment{Category: CategoryText, Text: text})
	}
	if text := state.Negative.Effective(); text != "" {
		frags = append(frags, Fragment{Category: CategoryNegative, Text: text})
	}
	return frags
}
