package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// validate checks struct tags on decoded items. One instance is safe for
// concurrent use.
var validate = validator.New()

// CallFailure marks an error as a provider call failure: network error,
// deadline, missing candidates. It distinguishes "the call never produced
// text" from "the text was unusable", which downstream strategies treat
// differently.
type CallFailure struct {
	Cause error
}

func (e *CallFailure) Error() string {
	return fmt.Sprintf("model call failed: %v", e.Cause)
}

func (e *CallFailure) Unwrap() error {
	return e.Cause
}

// IsCallFailure reports whether err is (or wraps) a call failure.
func IsCallFailure(err error) bool {
	var cf *CallFailure
	return errors.As(err, &cf)
}

// CallJSON issues a JSON-mode call bounded by JSONCallTimeout. Any error,
// including a deadline, is returned as a *CallFailure.
func CallJSON(ctx context.Context, client Client, prompt string, tier ModelTier) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, JSONCallTimeout)
	defer cancel()

	text, err := client.GenerateJSON(ctx, prompt, tier)
	if err != nil {
		return "", &CallFailure{Cause: err}
	}
	return text, nil
}

// CallText issues a plain-text call bounded by TextCallTimeout. Any error is
// returned as a *CallFailure.
func CallText(ctx context.Context, client Client, prompt string, tier ModelTier) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, TextCallTimeout)
	defer cancel()

	text, err := client.GenerateContent(ctx, prompt, tier)
	if err != nil {
		return "", &CallFailure{Cause: err}
	}
	return text, nil
}

// Result carries the outcome of a structured multi-item extraction.
type Result[T any] struct {
	// Items are the decoded entries that passed validation
	Items []T
	// Dropped counts entries discarded by validation
	Dropped int
	// Elapsed is the wall time of the call plus decoding
	Elapsed time.Duration
}

// ExtractItems runs a JSON-mode call and decodes the response into a list of
// T. The response may be a bare JSON array, an object wrapping an array under
// any key, or a single object; entries failing struct validation are dropped
// rather than failing the extraction. A zero-item result is a valid success.
//
// Errors are either *CallFailure (the call itself failed) or a plain decode
// error (the payload was not JSON in any accepted shape).
func ExtractItems[T any](ctx context.Context, client Client, prompt string, tier ModelTier) (Result[T], error) {
	start := time.Now()

	text, err := CallJSON(ctx, client, prompt, tier)
	if err != nil {
		return Result[T]{}, err
	}

	raw, err := decodeItems(text)
	if err != nil {
		return Result[T]{}, err
	}

	result := Result[T]{Items: make([]T, 0, len(raw))}
	for _, msg := range raw {
		var item T
		if err := json.Unmarshal(msg, &item); err != nil {
			result.Dropped++
			continue
		}
		if err := validate.Struct(item); err != nil {
			result.Dropped++
			continue
		}
		result.Items = append(result.Items, item)
	}

	result.Elapsed = time.Since(start)
	return result, nil
}

// ExtractObject runs a JSON-mode call and decodes the response into a single
// T. Unknown extra keys are ignored; validation failures are returned as
// decode errors.
func ExtractObject[T any](ctx context.Context, client Client, prompt string, tier ModelTier) (T, error) {
	var out T

	text, err := CallJSON(ctx, client, prompt, tier)
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal([]byte(CleanJSONBlock(text)), &out); err != nil {
		return out, fmt.Errorf("failed to decode response: %w", err)
	}
	if err := validate.Struct(out); err != nil {
		return out, fmt.Errorf("response failed validation: %w", err)
	}
	return out, nil
}

// decodeItems accepts the JSON shapes models actually return for "a list of
// things": a bare array, an object with an array under some key, or a single
// object standing in for a one-element list.
func decodeItems(text string) ([]json.RawMessage, error) {
	data := []byte(CleanJSONBlock(text))

	var arr []json.RawMessage
	if err := json.Unmarshal(data, &arr); err == nil {
		return arr, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("response is neither a JSON array nor an object")
	}

	// Prefer an array value if the object wraps one.
	for _, v := range obj {
		var inner []json.RawMessage
		if err := json.Unmarshal(v, &inner); err == nil {
			return inner, nil
		}
	}

	// A single object is a one-element list.
	return []json.RawMessage{json.RawMessage(data)}, nil
}
