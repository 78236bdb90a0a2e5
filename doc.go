// Package typecast is a Go client for the Typecast text-to-speech API.
//
// It covers speech synthesis with emotion control and voice discovery:
//   - TextToSpeech: synthesize text with a chosen voice and model
//   - GetVoicesV2 / GetVoiceV2: list and inspect voices with metadata
//     (gender, age, supported emotions), with optional filtering
//
// Basic usage:
//
//	client, err := typecast.NewClientFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	req := typecast.NewTTSRequest("tc_60e5426de8b95f1d3000d7b5", "Hello, world!", typecast.ModelSSFMV30).
//	    WithPresetPrompt(typecast.NewPresetPrompt().
//	        WithEmotionPreset(typecast.EmotionHappy).
//	        WithEmotionIntensity(1.5)).
//	    WithOutput(typecast.NewOutput().
//	        WithVolume(120).
//	        WithAudioFormat(typecast.AudioFormatMP3))
//
//	resp, err := client.TextToSpeech(ctx, req)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hello.mp3", resp.AudioData, 0o644)
//
// Authentication uses the X-API-KEY header. NewClientFromEnv reads the key
// from TYPECAST_API_KEY and an optional host override from
// TYPECAST_API_HOST; NewClient accepts an explicit ClientConfig.
//
// API failures are returned as *APIError with a kind derived from the
// status code; network and parsing failures are *TransportError and
// *DecodeError. The client never retries — handle *APIError with
// IsRateLimited or IsServerError externally if retry behavior is needed.
package typecast
