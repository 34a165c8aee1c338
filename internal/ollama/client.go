package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	tagsEndpointPathConstant          = "/api/tags"
	generateEndpointPathConstant      = "/api/generate"
	requestContentTypeConstant        = "application/json"
	defaultHealthCheckTimeoutConstant = 5 * time.Second
	samplingTemperatureConstant       = 0.1
	samplingTopPConstant              = 0.9

	requestEncodeErrorTemplateConstant  = "unable to encode generation request: %w"
	requestBuildErrorTemplateConstant   = "unable to build generation request: %w"
	requestTransportErrorTemplate       = "generation request failed: %w"
	responseDecodeErrorTemplateConstant = "unable to decode generation response: %w"
	statusErrorTemplateConstant         = "backend returned status %d: %s"
	timeoutErrorTemplateConstant        = "generation request timed out after %s; audit could not complete - blocking for safety"
)

// GenerateRequest models the JSON body accepted by the backend generation endpoint.
// Temperature and TopP bias the model toward deterministic verdicts.
type GenerateRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	Stream      bool    `json:"stream"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

// GenerateResponse models the JSON body returned by the backend generation endpoint.
type GenerateResponse struct {
	Response string `json:"response"`
}

// StatusError reports a non-success response status from the generation endpoint.
type StatusError struct {
	StatusCode int
	Body       string
}

// Error renders the status code and response body for diagnosis.
func (statusError *StatusError) Error() string {
	return fmt.Sprintf(statusErrorTemplateConstant, statusError.StatusCode, statusError.Body)
}

// TimeoutError reports a generation request exceeding the configured duration.
type TimeoutError struct {
	Timeout time.Duration
}

// Error renders the configured timeout duration.
func (timeoutError *TimeoutError) Error() string {
	return fmt.Sprintf(timeoutErrorTemplateConstant, timeoutError.Timeout)
}

// Client issues liveness and generation requests against an Ollama-compatible backend.
type Client struct {
	baseURL            string
	modelName          string
	requestTimeout     time.Duration
	healthCheckTimeout time.Duration
	httpClient         *http.Client
}

// NewClient constructs a Client for the provided backend address, model identifier, and generation timeout.
func NewClient(baseURL string, modelName string, requestTimeout time.Duration) *Client {
	return &Client{
		baseURL:            strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		modelName:          modelName,
		requestTimeout:     requestTimeout,
		healthCheckTimeout: defaultHealthCheckTimeoutConstant,
		httpClient:         &http.Client{},
	}
}

// BaseURL returns the configured backend address.
func (client *Client) BaseURL() string {
	return client.baseURL
}

// ModelName returns the configured model identifier.
func (client *Client) ModelName() string {
	return client.modelName
}

// HealthCheck reports whether the backend liveness endpoint answers with a success status.
// Any transport failure or non-success status yields false; it never returns an error.
func (client *Client) HealthCheck(executionContext context.Context) bool {
	checkContext, cancelCheck := context.WithTimeout(executionContext, client.healthCheckTimeout)
	defer cancelCheck()

	request, requestError := http.NewRequestWithContext(checkContext, http.MethodGet, client.baseURL+tagsEndpointPathConstant, nil)
	if requestError != nil {
		return false
	}

	response, responseError := client.httpClient.Do(request)
	if responseError != nil {
		return false
	}
	defer response.Body.Close()

	return response.StatusCode == http.StatusOK
}

// Generate issues a single-shot, non-streaming generation request carrying the prompt.
// It returns the trimmed response text on success, a *StatusError on non-success
// statuses, a *TimeoutError when the configured timeout elapses, and a wrapped
// transport error otherwise.
func (client *Client) Generate(executionContext context.Context, prompt string) (string, error) {
	requestBody := GenerateRequest{
		Model:       client.modelName,
		Prompt:      prompt,
		Stream:      false,
		Temperature: samplingTemperatureConstant,
		TopP:        samplingTopPConstant,
	}

	encodedBody, encodeError := json.Marshal(requestBody)
	if encodeError != nil {
		return "", fmt.Errorf(requestEncodeErrorTemplateConstant, encodeError)
	}

	generationContext, cancelGeneration := context.WithTimeout(executionContext, client.requestTimeout)
	defer cancelGeneration()

	request, requestError := http.NewRequestWithContext(generationContext, http.MethodPost, client.baseURL+generateEndpointPathConstant, bytes.NewReader(encodedBody))
	if requestError != nil {
		return "", fmt.Errorf(requestBuildErrorTemplateConstant, requestError)
	}
	request.Header.Set("Content-Type", requestContentTypeConstant)

	response, responseError := client.httpClient.Do(request)
	if responseError != nil {
		if errors.Is(responseError, context.DeadlineExceeded) || generationContext.Err() == context.DeadlineExceeded {
			return "", &TimeoutError{Timeout: client.requestTimeout}
		}
		return "", fmt.Errorf(requestTransportErrorTemplate, responseError)
	}
	defer response.Body.Close()

	responseBody, readError := io.ReadAll(response.Body)
	if readError != nil {
		if generationContext.Err() == context.DeadlineExceeded {
			return "", &TimeoutError{Timeout: client.requestTimeout}
		}
		return "", fmt.Errorf(requestTransportErrorTemplate, readError)
	}

	if response.StatusCode != http.StatusOK {
		return "", &StatusError{StatusCode: response.StatusCode, Body: strings.TrimSpace(string(responseBody))}
	}

	decodedResponse := GenerateResponse{}
	if decodeError := json.Unmarshal(responseBody, &decodedResponse); decodeError != nil {
		return "", fmt.Errorf(responseDecodeErrorTemplateConstant, decodeError)
	}

	return strings.TrimSpace(decodedResponse.Response), nil
}
