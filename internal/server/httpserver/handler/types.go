package handler

import "time"

// Response is the standard API response envelope.
// All JSON responses use this format (except /metrics which uses
// Prometheus exposition format).
type Response struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp int64  `json:"timestamp"`
	Data      any    `json:"data,omitempty"`
	Details   any    `json:"details,omitempty"` // Additional error details
}

// NewResponse creates a success response.
func NewResponse(requestID string, data any) *Response {
	return &Response{
		Code:      "OK",
		Message:   "Success",
		RequestID: requestID,
		Timestamp: time.Now().UnixMilli(),
		Data:      data,
	}
}

// NewErrorResponse creates an error response.
func NewErrorResponse(requestID, code, message string, details any) *Response {
	return &Response{
		Code:      code,
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now().UnixMilli(),
		Details:   details,
	}
}

// IssueRTCTokenRequest is the request body for POST /v1/tokens/rtc.
type IssueRTCTokenRequest struct {
	// ChannelName is the channel to authorize. Required.
	ChannelName string `json:"channel_name"`

	// UID is the numeric user identity. Ignored when UserAccount is set.
	UID uint32 `json:"uid,omitempty"`

	// UserAccount is the string user identity.
	UserAccount string `json:"user_account,omitempty"`

	// Role is "publisher" (default) or "subscriber".
	Role string `json:"role,omitempty"`

	// TTLSeconds is the token lifetime. Zero applies the server default.
	TTLSeconds uint32 `json:"ttl_seconds,omitempty"`
}

// IssueRTMTokenRequest is the request body for POST /v1/tokens/rtm.
type IssueRTMTokenRequest struct {
	// UserID is the messaging identity. Required.
	UserID string `json:"user_id"`

	// TTLSeconds is the token lifetime. Zero applies the server default.
	TTLSeconds uint32 `json:"ttl_seconds,omitempty"`
}

// TokenResponse is the response body for both issuance endpoints.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt uint32 `json:"expires_at"`
	Format    string `json:"format"`
}
