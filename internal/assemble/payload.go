package assemble

// Node type tags. The set is closed; unrecognized tags contribute nothing
// so node types added by a newer canvas degrade to no-ops here.
const (
	TypeCharacter  = "character"
	TypeOutfit     = "outfit"
	TypeSetting    = "setting"
	TypeProp       = "prop"
	TypeExtras     = "extras"
	TypeStyle      = "style"
	TypeShot       = "shot"
	TypeTimePeriod = "timeperiod"
	TypeAction     = "action"
	TypeEdit       = "edit"
	TypeNegative   = "negative"
	TypeText       = "text"
	TypeParameters = "parameters"
	TypeReference  = "reference"
	TypePrompt     = "prompt"   // intercept: editable shadow of assembled output
	TypeGenerate   = "generate" // sink: turns assembled output into a generation request
)

// IsSinkType reports whether nodes of this type terminate assembly.
func IsSinkType(nodeType string) bool {
	return nodeType == TypeGenerate || nodeType == TypePrompt
}

// DescribedPayload is shared by character, outfit, setting, prop, extras
// and style nodes.
type DescribedPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ShotPayload selects a framing preset with an optional free-text note.
type ShotPayload struct {
	Preset string `json:"preset"`
	Note   string `json:"note"`
}

// TimePeriodPayload places the scene in an era. Custom is used when the era
// preset is "custom". AutoNegative enables the era's anachronism terms in
// the negative stream.
type TimePeriodPayload struct {
	Era          string `json:"era"`
	Region       string `json:"region"`
	Custom       string `json:"custom"`
	AutoNegative bool   `json:"autoNegative"`
}

// TextPayload is shared by action, edit, negative and free-text nodes.
type TextPayload struct {
	Text string `json:"text"`
}

// ParamsPayload holds user-set generation parameters. Nil means unset.
type ParamsPayload struct {
	Model       string   `json:"model"`
	AspectRatio string   `json:"aspectRatio"`
	Seed        *int64   `json:"seed"`
	Temperature *float64 `json:"temperature"`
	ImageCount  *int     `json:"imageCount"`
}

// ReferencePayload points at a stored image used as visual guidance.
type ReferencePayload struct {
	ImageID  string `json:"imageId"`
	Category string `json:"category"` // "character", "style", "composition", ...
}
