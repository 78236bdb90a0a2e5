package typecast

import (
	"encoding/json"
	"testing"
)

func TestBasicPromptOmitsDiscriminator(t *testing.T) {
	u := NewTTSPromptBasic(NewPrompt().WithEmotionPreset(EmotionHappy).WithEmotionIntensity(1.2))
	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := fields["emotion_type"]; ok {
		t.Errorf("basic prompt must not emit emotion_type: %s", data)
	}
	if fields["emotion_preset"] != "happy" {
		t.Errorf("emotion_preset: got %v", fields["emotion_preset"])
	}
}

func TestPresetPromptDiscriminator(t *testing.T) {
	u := NewTTSPromptPreset(NewPresetPrompt().WithEmotionPreset(EmotionWhisper))
	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if fields["emotion_type"] != "preset" {
		t.Errorf("emotion_type: got %v, want preset", fields["emotion_type"])
	}
	if fields["emotion_preset"] != "whisper" {
		t.Errorf("emotion_preset: got %v", fields["emotion_preset"])
	}
}

func TestSmartPromptDiscriminator(t *testing.T) {
	u := NewTTSPromptSmart(NewSmartPrompt().WithPreviousText("a").WithNextText("b"))
	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if fields["emotion_type"] != "smart" {
		t.Errorf("emotion_type: got %v, want smart", fields["emotion_type"])
	}
	if fields["previous_text"] != "a" || fields["next_text"] != "b" {
		t.Errorf("context texts: got %s", data)
	}
}

func TestPromptRoundTrip(t *testing.T) {
	variants := []*TTSPrompt{
		NewTTSPromptBasic(NewPrompt().WithEmotionPreset(EmotionSad).WithEmotionIntensity(0.5)),
		NewTTSPromptPreset(NewPresetPrompt().WithEmotionPreset(EmotionAngry).WithEmotionIntensity(2.0)),
		NewTTSPromptSmart(NewSmartPrompt().WithPreviousText("prev").WithNextText("next")),
	}
	for i, in := range variants {
		data, err := json.Marshal(in)
		if err != nil {
			t.Fatalf("variant %d marshal: %v", i, err)
		}
		var out TTSPrompt
		if err := json.Unmarshal(data, &out); err != nil {
			t.Fatalf("variant %d unmarshal: %v", i, err)
		}

		if basic, ok := in.Basic(); ok {
			got, ok := out.Basic()
			if !ok {
				t.Fatalf("variant %d: decoded as wrong shape", i)
			}
			if got.EmotionPreset != basic.EmotionPreset || *got.EmotionIntensity != *basic.EmotionIntensity {
				t.Errorf("variant %d: got %+v, want %+v", i, got, basic)
			}
		}
		if preset, ok := in.Preset(); ok {
			got, ok := out.Preset()
			if !ok {
				t.Fatalf("variant %d: decoded as wrong shape", i)
			}
			if got.EmotionPreset != preset.EmotionPreset || *got.EmotionIntensity != *preset.EmotionIntensity {
				t.Errorf("variant %d: got %+v, want %+v", i, got, preset)
			}
		}
		if smart, ok := in.Smart(); ok {
			got, ok := out.Smart()
			if !ok {
				t.Fatalf("variant %d: decoded as wrong shape", i)
			}
			if got != smart {
				t.Errorf("variant %d: got %+v, want %+v", i, got, smart)
			}
		}
	}
}

func TestPromptUnknownDiscriminator(t *testing.T) {
	var u TTSPrompt
	if err := json.Unmarshal([]byte(`{"emotion_type":"mystery"}`), &u); err == nil {
		t.Fatal("expected error for unknown emotion_type")
	}
}

func TestPromptIntensityClamping(t *testing.T) {
	if p := NewPrompt().WithEmotionIntensity(5.0); *p.EmotionIntensity != 2.0 {
		t.Errorf("basic intensity: got %v, want 2.0", *p.EmotionIntensity)
	}
	if p := NewPrompt().WithEmotionIntensity(-1.0); *p.EmotionIntensity != 0.0 {
		t.Errorf("basic intensity: got %v, want 0.0", *p.EmotionIntensity)
	}
	if p := NewPresetPrompt().WithEmotionIntensity(3.5); *p.EmotionIntensity != 2.0 {
		t.Errorf("preset intensity: got %v, want 2.0", *p.EmotionIntensity)
	}
}
