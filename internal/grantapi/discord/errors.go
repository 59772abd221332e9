package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
)

// apiError wraps a Discord REST failure with its retry classification.
type apiError struct {
	op        string
	err       error
	transient bool
}

func (e *apiError) Error() string   { return fmt.Sprintf("%s: %v", e.op, e.err) }
func (e *apiError) Unwrap() error   { return e.err }
func (e *apiError) Transient() bool { return e.transient }

// classify maps a discordgo error onto the transient/permanent taxonomy.
// Rate limits and upstream 5xx are transient, as are plain network failures.
// 4xx responses (missing permissions, unknown role or member) and context
// cancellation are permanent: retrying them cannot help.
func classify(op string, err error) error {
	return &apiError{op: op, err: err, transient: isRetryable(err)}
}

func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var rateErr *discordgo.RateLimitError
	if errors.As(err, &rateErr) {
		return true
	}

	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) {
		if restErr.Response == nil {
			return true
		}
		code := restErr.Response.StatusCode
		return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
	}

	// transport-level failure without a Discord response
	return true
}
