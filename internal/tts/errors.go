package tts

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a synthesis failure for the endpoint boundary.
type ErrorKind int

const (
	// KindFailed is a synthesis failure with no more specific class.
	KindFailed ErrorKind = iota
	// KindTransient is an upstream internal error worth retrying manually.
	KindTransient
	// KindQuotaExhausted means every configured model tier rejected the
	// request for quota reasons.
	KindQuotaExhausted
	// KindInvalidResponse means the model returned no audio payload.
	KindInvalidResponse
	// KindInvalidCredentials means the API key was rejected.
	KindInvalidCredentials
	// KindConfiguration means the API key is missing entirely.
	KindConfiguration
	// KindTimeout means the synthesis call exceeded its deadline.
	KindTimeout
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransient:
		return "transient"
	case KindQuotaExhausted:
		return "quota_exhausted"
	case KindInvalidResponse:
		return "invalid_response"
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindConfiguration:
		return "configuration"
	case KindTimeout:
		return "timeout"
	default:
		return "failed"
	}
}

// SynthesisError carries the classified failure of a Synthesize call.
type SynthesisError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *SynthesisError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("synthesis %s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("synthesis %s: %s", e.Kind, e.Message)
}

func (e *SynthesisError) Unwrap() error {
	return e.Err
}

// AsSynthesisError unwraps err into a SynthesisError if one is in the chain.
func AsSynthesisError(err error) (*SynthesisError, bool) {
	var synthErr *SynthesisError
	if errors.As(err, &synthErr) {
		return synthErr, true
	}
	return nil, false
}
