package typecast

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// Client calls the Typecast API. It holds only immutable configuration and
// a reusable HTTP transport, so it is safe for concurrent use. Calls are
// independent request/response round trips; no retries are performed.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client from the given config. A nil config uses the
// defaults. The API key is validated as a header value before any network
// activity.
func NewClient(config *ClientConfig) (*Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		apiKey:     config.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
	}, nil
}

// NewClientFromEnv builds a client from TYPECAST_API_KEY and
// TYPECAST_API_HOST.
func NewClientFromEnv() (*Client, error) {
	return NewClient(ConfigFromEnv())
}

// BaseURL returns the configured API host.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// APIKeyMasked returns the API key with all but its first and last four
// characters hidden, for logging.
func (c *Client) APIKeyMasked() string {
	if len(c.apiKey) > 8 {
		return c.apiKey[:4] + "..." + c.apiKey[len(c.apiKey)-4:]
	}
	return "****"
}

// doRequest serializes body (when non-nil), attaches the auth headers and
// performs the round trip. The base URL is concatenated with path verbatim.
func (c *Client) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &DecodeError{Op: "marshal request body", Err: err}
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: method + " " + path, Err: err}
	}
	return resp, nil
}

// errorFromResponse reads a non-2xx body as an ErrorResponse, tolerating a
// missing or malformed body, and classifies the status code.
func (c *Client) errorFromResponse(resp *http.Response) error {
	var errResp ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		return NewAPIError(resp.StatusCode, "")
	}
	return NewAPIError(resp.StatusCode, errResp.Detail)
}

func isSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode <= 299
}

// TextToSpeech synthesizes speech for the given request. The whole audio
// payload is buffered before returning; the format comes from the response
// Content-Type and the duration from the X-Audio-Duration header.
func (c *Client) TextToSpeech(ctx context.Context, request *TTSRequest) (*TTSResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/text-to-speech", request)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, c.errorFromResponse(resp)
	}

	audioData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "read audio data", Err: err}
	}

	contentType := resp.Header.Get("Content-Type")
	format := AudioFormatWAV
	if strings.Contains(contentType, "mp3") || strings.Contains(contentType, "mpeg") {
		format = AudioFormatMP3
	}

	var duration float64
	if v := resp.Header.Get("X-Audio-Duration"); v != "" {
		duration, _ = strconv.ParseFloat(v, 64)
	}

	return &TTSResponse{
		AudioData: audioData,
		Duration:  duration,
		Format:    format,
	}, nil
}

// GetVoicesV2 lists voices with the V2 API's extended metadata, optionally
// narrowed by filter.
func (c *Client) GetVoicesV2(ctx context.Context, filter *VoicesV2Filter) ([]VoiceV2, error) {
	path := "/v2/voices"
	if query := buildQuery(filter.queryParams()); query != "" {
		path += "?" + query
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, c.errorFromResponse(resp)
	}

	var voices []VoiceV2
	if err := json.NewDecoder(resp.Body).Decode(&voices); err != nil {
		return nil, &DecodeError{Op: "decode voices response", Err: err}
	}
	return voices, nil
}

// GetVoiceV2 fetches a single voice by id with the V2 API's extended
// metadata.
func (c *Client) GetVoiceV2(ctx context.Context, voiceID string) (*VoiceV2, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v2/voices/"+voiceID, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, c.errorFromResponse(resp)
	}

	var voice VoiceV2
	if err := json.NewDecoder(resp.Body).Decode(&voice); err != nil {
		return nil, &DecodeError{Op: "decode voice response", Err: err}
	}
	return &voice, nil
}

// GetVoices lists voices from the V1 API, optionally filtered by model.
//
// Deprecated: use GetVoicesV2 for extended metadata and filtering.
func (c *Client) GetVoices(ctx context.Context, model TTSModel) ([]VoiceV1, error) {
	path := "/v1/voices"
	if model != "" {
		path += "?model=" + queryEscape(string(model))
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, c.errorFromResponse(resp)
	}

	var voices []VoiceV1
	if err := json.NewDecoder(resp.Body).Decode(&voices); err != nil {
		return nil, &DecodeError{Op: "decode voices response", Err: err}
	}
	return voices, nil
}

// GetVoice fetches a voice by id from the V1 API, optionally filtered by
// model.
//
// Deprecated: use GetVoiceV2 for extended metadata.
func (c *Client) GetVoice(ctx context.Context, voiceID string, model TTSModel) ([]VoiceV1, error) {
	path := "/v1/voices/" + voiceID
	if model != "" {
		path += "?model=" + queryEscape(string(model))
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, c.errorFromResponse(resp)
	}

	var voices []VoiceV1
	if err := json.NewDecoder(resp.Body).Decode(&voices); err != nil {
		return nil, &DecodeError{Op: "decode voice response", Err: err}
	}
	return voices, nil
}

type queryParam struct {
	key   string
	value string
}

// queryParams lists the filter's set fields in declaration order. A nil
// filter carries no parameters.
func (f *VoicesV2Filter) queryParams() []queryParam {
	if f == nil {
		return nil
	}
	var params []queryParam
	if f.Model != "" {
		params = append(params, queryParam{"model", string(f.Model)})
	}
	if f.Gender != "" {
		params = append(params, queryParam{"gender", string(f.Gender)})
	}
	if f.Age != "" {
		params = append(params, queryParam{"age", string(f.Age)})
	}
	if f.UseCases != "" {
		params = append(params, queryParam{"use_cases", string(f.UseCases)})
	}
	return params
}

func buildQuery(params []queryParam) string {
	if len(params) == 0 {
		return ""
	}
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.key+"="+queryEscape(p.value))
	}
	return strings.Join(parts, "&")
}

// queryEscape percent-encodes s per RFC 3986: unreserved characters
// (letters, digits, -_.~) pass through, every other byte of the UTF-8
// encoding is escaped. Unlike url.Values.Encode, space becomes %20, not +.
func queryEscape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9',
			c == '-', c == '_', c == '.', c == '~':
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}
