package typecast

import (
	"encoding/json"
	"fmt"
)

// Discriminator literals for the prompt union. The basic variant carries no
// discriminator on the wire.
const (
	promptTypePreset = "preset"
	promptTypeSmart  = "smart"
)

// Prompt is the basic emotion shape, compatible with ssfm-v21.
type Prompt struct {
	// EmotionPreset is the emotion preset to apply.
	EmotionPreset EmotionPreset `json:"emotion_preset,omitempty"`
	// EmotionIntensity is the emotion strength (0.0 to 2.0, API default 1.0).
	EmotionIntensity *float64 `json:"emotion_intensity,omitempty"`
}

// NewPrompt returns an empty basic prompt.
func NewPrompt() Prompt {
	return Prompt{}
}

// WithEmotionPreset sets the emotion preset.
func (p Prompt) WithEmotionPreset(preset EmotionPreset) Prompt {
	p.EmotionPreset = preset
	return p
}

// WithEmotionIntensity sets the emotion strength, clamped to [0.0, 2.0].
func (p Prompt) WithEmotionIntensity(intensity float64) Prompt {
	intensity = min(max(intensity, 0.0), 2.0)
	p.EmotionIntensity = &intensity
	return p
}

// PresetPrompt is the explicit preset-based emotion shape for ssfm-v30.
// On the wire it carries `"emotion_type": "preset"`.
type PresetPrompt struct {
	// EmotionPreset is the emotion preset to apply.
	EmotionPreset EmotionPreset `json:"emotion_preset,omitempty"`
	// EmotionIntensity is the emotion strength (0.0 to 2.0, API default 1.0).
	EmotionIntensity *float64 `json:"emotion_intensity,omitempty"`
}

// NewPresetPrompt returns an empty preset prompt.
func NewPresetPrompt() PresetPrompt {
	return PresetPrompt{}
}

// WithEmotionPreset sets the emotion preset.
func (p PresetPrompt) WithEmotionPreset(preset EmotionPreset) PresetPrompt {
	p.EmotionPreset = preset
	return p
}

// WithEmotionIntensity sets the emotion strength, clamped to [0.0, 2.0].
func (p PresetPrompt) WithEmotionIntensity(intensity float64) PresetPrompt {
	intensity = min(max(intensity, 0.0), 2.0)
	p.EmotionIntensity = &intensity
	return p
}

// SmartPrompt is the context-aware emotion shape for ssfm-v30. On the wire
// it carries `"emotion_type": "smart"`.
type SmartPrompt struct {
	// PreviousText is the text preceding the main text (API limit 2000 chars).
	PreviousText string `json:"previous_text,omitempty"`
	// NextText is the text following the main text (API limit 2000 chars).
	NextText string `json:"next_text,omitempty"`
}

// NewSmartPrompt returns an empty smart prompt.
func NewSmartPrompt() SmartPrompt {
	return SmartPrompt{}
}

// WithPreviousText sets the preceding context text.
func (p SmartPrompt) WithPreviousText(text string) SmartPrompt {
	p.PreviousText = text
	return p
}

// WithNextText sets the following context text.
func (p SmartPrompt) WithNextText(text string) SmartPrompt {
	p.NextText = text
	return p
}

// TTSPrompt is the closed union of the three prompt shapes. Exactly one
// variant is set; the union codec owns the emotion_type discriminator, which
// is present for the preset and smart shapes and absent for the basic one.
type TTSPrompt struct {
	basic  *Prompt
	preset *PresetPrompt
	smart  *SmartPrompt
}

// NewTTSPromptBasic wraps a basic prompt.
func NewTTSPromptBasic(p Prompt) *TTSPrompt {
	return &TTSPrompt{basic: &p}
}

// NewTTSPromptPreset wraps a preset prompt.
func NewTTSPromptPreset(p PresetPrompt) *TTSPrompt {
	return &TTSPrompt{preset: &p}
}

// NewTTSPromptSmart wraps a smart prompt.
func NewTTSPromptSmart(p SmartPrompt) *TTSPrompt {
	return &TTSPrompt{smart: &p}
}

// Basic returns the basic variant, if set.
func (u *TTSPrompt) Basic() (Prompt, bool) {
	if u == nil || u.basic == nil {
		return Prompt{}, false
	}
	return *u.basic, true
}

// Preset returns the preset variant, if set.
func (u *TTSPrompt) Preset() (PresetPrompt, bool) {
	if u == nil || u.preset == nil {
		return PresetPrompt{}, false
	}
	return *u.preset, true
}

// Smart returns the smart variant, if set.
func (u *TTSPrompt) Smart() (SmartPrompt, bool) {
	if u == nil || u.smart == nil {
		return SmartPrompt{}, false
	}
	return *u.smart, true
}

// MarshalJSON writes the active variant, injecting the discriminator for
// the preset and smart shapes. An empty union marshals as an empty basic
// prompt.
func (u TTSPrompt) MarshalJSON() ([]byte, error) {
	switch {
	case u.preset != nil:
		return json.Marshal(struct {
			EmotionType string `json:"emotion_type"`
			PresetPrompt
		}{promptTypePreset, *u.preset})
	case u.smart != nil:
		return json.Marshal(struct {
			EmotionType string `json:"emotion_type"`
			SmartPrompt
		}{promptTypeSmart, *u.smart})
	case u.basic != nil:
		return json.Marshal(*u.basic)
	default:
		return []byte("{}"), nil
	}
}

// UnmarshalJSON picks the variant by probing the emotion_type field:
// "smart" and "preset" select their shapes, an absent or empty value selects
// the basic shape, anything else is an error. The basic wire shape is a
// subset of the preset one, so field-shape inference alone cannot decide;
// the discriminator is the only decision point.
func (u *TTSPrompt) UnmarshalJSON(data []byte) error {
	var probe struct {
		EmotionType string `json:"emotion_type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	switch probe.EmotionType {
	case promptTypeSmart:
		var p SmartPrompt
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		*u = TTSPrompt{smart: &p}
	case promptTypePreset:
		var p PresetPrompt
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		*u = TTSPrompt{preset: &p}
	case "":
		var p Prompt
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		*u = TTSPrompt{basic: &p}
	default:
		return fmt.Errorf("unknown prompt emotion_type %q", probe.EmotionType)
	}
	return nil
}
