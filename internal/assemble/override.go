package assemble

// Field is the user-editable shadow of one assembled string. It is a
// two-state machine: Auto (IsEdited=false, Edited tracks Assembled) and
// Edited (IsEdited=true, Edited diverges and survives reassembly).
//
// The struct round-trips through a prompt node's payload JSON, so the
// persistence layer can serialize override state without knowing the rules.
type Field struct {
	Assembled string `json:"assembled"`
	Edited    string `json:"edited"`
	IsEdited  bool   `json:"isEdited"`
}

// Reassemble applies a new assembled value. In Auto the shadow follows; in
// Edited only the baseline moves and the user's divergence is preserved.
// IsEdited is never recomputed here, even if the new baseline happens to
// equal the edit — only UserEdit and Reset change state.
func (f *Field) Reassemble(assembled string) {
	f.Assembled = assembled
	if !f.IsEdited {
		f.Edited = assembled
	}
}

// UserEdit records typed text. Editing back to exactly the assembled value
// returns the field to Auto.
func (f *Field) UserEdit(text string) {
	f.Edited = text
	f.IsEdited = text != f.Assembled
}

// Reset discards the edit and returns to Auto.
func (f *Field) Reset() {
	f.Edited = f.Assembled
	f.IsEdited = false
}

// Effective is the value consumers see: the edit, falling back to the
// assembled baseline when the edit is empty.
func (f *Field) Effective() string {
	if f.Edited != "" {
		return f.Edited
	}
	return f.Assembled
}

// Intercept holds the override state of one prompt node: an editable shadow
// for each tracked field.
type Intercept struct {
	Prompt   Field `json:"prompt"`
	Negative Field `json:"negative"`
}

// Reassemble applies a fresh assembly to both fields, preserving edits.
func (i *Intercept) Reassemble(result Result) {
	i.Prompt.Reassemble(result.Prompt)
	i.Negative.Reassemble(result.NegativePrompt)
}

// Refresh forces a reassemble and resets both fields, discarding any
// pending edits.
func (i *Intercept) Refresh(result Result) {
	i.Prompt.Assembled = result.Prompt
	i.Negative.Assembled = result.NegativePrompt
	i.Prompt.Reset()
	i.Negative.Reset()
}
