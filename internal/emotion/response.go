package emotion

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Neutral is the label returned whenever the classifier does not produce a usable prediction.
const Neutral = "neutral"

// ErrMalformedResponse is returned when the classifier body is not valid JSON.
var ErrMalformedResponse = errors.New("malformed classifier response")

// Kind identifies which shape a classifier response had.
type Kind int

const (
	// KindUnrecognized covers every shape that is neither an object nor a list of predictions.
	KindUnrecognized Kind = iota
	// KindErrorOrPending is a top-level JSON object: an error or "model loading" payload.
	KindErrorOrPending
	// KindClassification is a list whose first element is a list of label/score pairs.
	KindClassification
)

func (k Kind) String() string {
	switch k {
	case KindErrorOrPending:
		return "error-or-pending"
	case KindClassification:
		return "classification"
	default:
		return "unrecognized"
	}
}

// Prediction is a single label/score pair.
type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Response is the decoded classifier response.
// Predictions is only populated for KindClassification and keeps the service's order.
type Response struct {
	Kind        Kind
	Predictions []Prediction
}

// Label returns the primary predicted label, or Neutral for any other kind.
func (r Response) Label() string {
	if r.Kind != KindClassification || len(r.Predictions) == 0 {
		return Neutral
	}
	return r.Predictions[0].Label
}

// ParseResponse maps a raw classifier body onto a Response.
// Only bodies that are not JSON at all produce an error.
func ParseResponse(body []byte) (Response, error) {
	var top any
	if err := json.Unmarshal(body, &top); err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	switch v := top.(type) {
	case map[string]any:
		// Fields are deliberately not inspected.
		return Response{Kind: KindErrorOrPending}, nil
	case []any:
		return parsePredictionList(v), nil
	default:
		return Response{Kind: KindUnrecognized}, nil
	}
}

// parsePredictionList handles the [[{label, score}, ...]] shape.
func parsePredictionList(list []any) Response {
	if len(list) == 0 {
		return Response{Kind: KindUnrecognized}
	}

	inner, ok := list[0].([]any)
	if !ok || len(inner) == 0 {
		return Response{Kind: KindUnrecognized}
	}

	first, ok := inner[0].(map[string]any)
	if !ok {
		return Response{Kind: KindUnrecognized}
	}
	if label, ok := first["label"].(string); !ok || label == "" {
		return Response{Kind: KindUnrecognized}
	}

	predictions := make([]Prediction, 0, len(inner))
	for _, item := range inner {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		label, _ := obj["label"].(string)
		score, _ := obj["score"].(float64)
		predictions = append(predictions, Prediction{Label: label, Score: score})
	}

	return Response{Kind: KindClassification, Predictions: predictions}
}
