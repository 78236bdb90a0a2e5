package typecast

// TTSModel selects the synthesis model version.
type TTSModel string

const (
	// ModelSSFMV30 is the latest model with improved prosody and the
	// extended emotion preset set.
	ModelSSFMV30 TTSModel = "ssfm-v30"
	// ModelSSFMV21 is the stable production model.
	ModelSSFMV21 TTSModel = "ssfm-v21"
)

// EmotionPreset is a named expressive style applied to synthesis.
type EmotionPreset string

const (
	EmotionNormal   EmotionPreset = "normal"
	EmotionHappy    EmotionPreset = "happy"
	EmotionSad      EmotionPreset = "sad"
	EmotionAngry    EmotionPreset = "angry"
	EmotionWhisper  EmotionPreset = "whisper"  // ssfm-v30 only
	EmotionToneUp   EmotionPreset = "toneup"   // ssfm-v30 only
	EmotionToneDown EmotionPreset = "tonedown" // ssfm-v30 only
)

// AudioFormat is the synthesized audio container format.
type AudioFormat string

const (
	AudioFormatWAV AudioFormat = "wav"
	AudioFormatMP3 AudioFormat = "mp3"
)

// Gender classifies a voice by gender.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Age classifies a voice by age group.
type Age string

const (
	AgeChild      Age = "child"
	AgeTeenager   Age = "teenager"
	AgeYoungAdult Age = "young_adult"
	AgeMiddleAge  Age = "middle_age"
	AgeElder      Age = "elder"
)

// UseCase is a voice use-case category.
type UseCase string

const (
	UseCaseAnnouncer      UseCase = "Announcer"
	UseCaseAnime          UseCase = "Anime"
	UseCaseAudiobook      UseCase = "Audiobook"
	UseCaseConversational UseCase = "Conversational"
	UseCaseDocumentary    UseCase = "Documentary"
	UseCaseELearning      UseCase = "E-learning"
	UseCaseRapper         UseCase = "Rapper"
	UseCaseGame           UseCase = "Game"
	UseCaseTikTokReels    UseCase = "Tiktok/Reels"
	UseCaseNews           UseCase = "News"
	UseCasePodcast        UseCase = "Podcast"
	UseCaseVoicemail      UseCase = "Voicemail"
	UseCaseAds            UseCase = "Ads"
)

// Output holds audio output settings. Unset fields are omitted from the
// request so the API applies its own defaults. Values set through the With*
// setters are clamped to their documented ranges.
type Output struct {
	// Volume is the volume level (0-200, API default 100).
	Volume *int `json:"volume,omitempty"`
	// AudioPitch is the pitch adjustment in semitones (-12 to +12).
	AudioPitch *int `json:"audio_pitch,omitempty"`
	// AudioTempo is the speech speed multiplier (0.5 to 2.0).
	AudioTempo *float64 `json:"audio_tempo,omitempty"`
	// AudioFormat is the output format (wav or mp3, API default wav).
	AudioFormat AudioFormat `json:"audio_format,omitempty"`
}

// NewOutput returns an empty Output.
func NewOutput() Output {
	return Output{}
}

// WithVolume sets the volume level, clamped to [0, 200].
func (o Output) WithVolume(volume int) Output {
	volume = min(max(volume, 0), 200)
	o.Volume = &volume
	return o
}

// WithAudioPitch sets the pitch adjustment, clamped to [-12, 12] semitones.
func (o Output) WithAudioPitch(pitch int) Output {
	pitch = min(max(pitch, -12), 12)
	o.AudioPitch = &pitch
	return o
}

// WithAudioTempo sets the speed multiplier, clamped to [0.5, 2.0].
func (o Output) WithAudioTempo(tempo float64) Output {
	tempo = min(max(tempo, 0.5), 2.0)
	o.AudioTempo = &tempo
	return o
}

// WithAudioFormat sets the output audio format.
func (o Output) WithAudioFormat(format AudioFormat) Output {
	o.AudioFormat = format
	return o
}

// TTSRequest describes a single text-to-speech call.
//
// Text length and voice id format are not validated locally; the API is the
// source of truth for those rules and reports violations as 400/422.
type TTSRequest struct {
	// VoiceID is the voice identifier, conventionally prefixed with "tc_".
	VoiceID string `json:"voice_id"`
	// Text is the text to synthesize (API limit 2000 characters).
	Text string `json:"text"`
	// Model is the TTS model to use.
	Model TTSModel `json:"model"`
	// Language is an ISO 639-3 code; auto-detected when empty.
	Language string `json:"language,omitempty"`
	// Prompt controls emotional/contextual delivery.
	Prompt *TTSPrompt `json:"prompt,omitempty"`
	// Output holds audio output settings.
	Output *Output `json:"output,omitempty"`
	// Seed makes synthesis reproducible.
	Seed *int `json:"seed,omitempty"`
}

// NewTTSRequest builds a request with the required fields.
func NewTTSRequest(voiceID, text string, model TTSModel) *TTSRequest {
	return &TTSRequest{
		VoiceID: voiceID,
		Text:    text,
		Model:   model,
	}
}

// WithLanguage sets the ISO 639-3 language code.
func (r *TTSRequest) WithLanguage(language string) *TTSRequest {
	r.Language = language
	return r
}

// WithPrompt sets a basic emotion prompt.
func (r *TTSRequest) WithPrompt(p Prompt) *TTSRequest {
	r.Prompt = NewTTSPromptBasic(p)
	return r
}

// WithPresetPrompt sets a preset-based emotion prompt.
func (r *TTSRequest) WithPresetPrompt(p PresetPrompt) *TTSRequest {
	r.Prompt = NewTTSPromptPreset(p)
	return r
}

// WithSmartPrompt sets a context-aware emotion prompt.
func (r *TTSRequest) WithSmartPrompt(p SmartPrompt) *TTSRequest {
	r.Prompt = NewTTSPromptSmart(p)
	return r
}

// WithOutput sets the audio output settings.
func (r *TTSRequest) WithOutput(o Output) *TTSRequest {
	r.Output = &o
	return r
}

// WithSeed sets the random seed.
func (r *TTSRequest) WithSeed(seed int) *TTSRequest {
	r.Seed = &seed
	return r
}

// TTSResponse is the result of a successful synthesis call.
type TTSResponse struct {
	// AudioData is the complete audio payload.
	AudioData []byte
	// Duration is the audio length in seconds, 0 when the API omits it.
	Duration float64
	// Format is the audio format, derived from the response Content-Type.
	Format AudioFormat
}

// ModelInfo lists the emotions a voice supports on one model version.
type ModelInfo struct {
	Version  TTSModel `json:"version"`
	Emotions []string `json:"emotions"`
}

// VoiceV1 is a voice as returned by the V1 API.
//
// Deprecated: use VoiceV2 via GetVoicesV2/GetVoiceV2.
type VoiceV1 struct {
	VoiceID   string   `json:"voice_id"`
	VoiceName string   `json:"voice_name"`
	Model     TTSModel `json:"model"`
	Emotions  []string `json:"emotions"`
}

// VoiceV2 is a voice with the V2 API's extended metadata.
type VoiceV2 struct {
	VoiceID   string      `json:"voice_id"`
	VoiceName string      `json:"voice_name"`
	Models    []ModelInfo `json:"models"`
	Gender    *Gender     `json:"gender,omitempty"`
	Age       *Age        `json:"age,omitempty"`
	UseCases  []string    `json:"use_cases,omitempty"`
}

// VoicesV2Filter narrows the V2 voice listing. Zero-valued fields are
// omitted from the query string.
type VoicesV2Filter struct {
	Model    TTSModel
	Gender   Gender
	Age      Age
	UseCases UseCase
}

// NewVoicesV2Filter returns an empty filter.
func NewVoicesV2Filter() *VoicesV2Filter {
	return &VoicesV2Filter{}
}

// WithModel filters by model version.
func (f *VoicesV2Filter) WithModel(model TTSModel) *VoicesV2Filter {
	f.Model = model
	return f
}

// WithGender filters by gender.
func (f *VoicesV2Filter) WithGender(gender Gender) *VoicesV2Filter {
	f.Gender = gender
	return f
}

// WithAge filters by age group.
func (f *VoicesV2Filter) WithAge(age Age) *VoicesV2Filter {
	f.Age = age
	return f
}

// WithUseCases filters by use case.
func (f *VoicesV2Filter) WithUseCases(useCase UseCase) *VoicesV2Filter {
	f.UseCases = useCase
	return f
}

// ErrorResponse is the API's error body shape.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
