package response

import (
	"encoding/json"
	"time"
)

const (
	// MessageSuccess is the message attached to every OK response.
	MessageSuccess = "success"

	// DefaultErrorMessage hides internal details from clients.
	DefaultErrorMessage = "something went wrong"

	// InternalServerErrorCode is the envelope error code for unexpected failures.
	InternalServerErrorCode = 500

	// DateFormat renders Date values.
	DateFormat = "2006-01-02"
	// DateTimeFormat renders DateTime values.
	DateTimeFormat = "2006-01-02 15:04:05"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Date is a date that marshals as DateFormat.
type Date time.Time

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateFormat))
}

// DateTime is a datetime that marshals as DateTimeFormat.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateTimeFormat))
}
