package sentiment

import "context"

// MockBinaryClassifier is a deterministic BinaryClassifier for testing.
type MockBinaryClassifier struct {
	// Prediction is returned by Classify when Error is nil.
	Prediction Prediction

	// Error, if set, is returned by Classify instead of a prediction.
	Error error

	// LastText stores the most recent text passed to Classify.
	LastText string

	// Calls counts Classify invocations.
	Calls int
}

// NewMockBinaryClassifier creates a mock returning the given label and score.
func NewMockBinaryClassifier(label string, score float64) *MockBinaryClassifier {
	return &MockBinaryClassifier{Prediction: Prediction{Label: label, Score: score}}
}

// Classify records the call and returns the configured prediction or error.
func (m *MockBinaryClassifier) Classify(ctx context.Context, text string) (Prediction, error) {
	m.LastText = text
	m.Calls++
	if m.Error != nil {
		return Prediction{}, m.Error
	}
	return m.Prediction, nil
}

// MockRemoteClassifier is a deterministic RemoteClassifier for testing.
type MockRemoteClassifier struct {
	// Result is returned by every Classify call.
	Result Result

	// LastText stores the most recent text passed to Classify.
	LastText string

	// Calls counts Classify invocations.
	Calls int
}

// NewMockRemoteClassifier creates a mock returning the given result.
func NewMockRemoteClassifier(result Result) *MockRemoteClassifier {
	return &MockRemoteClassifier{Result: result}
}

// Classify records the call and returns the configured result.
func (m *MockRemoteClassifier) Classify(ctx context.Context, text string) Result {
	m.LastText = text
	m.Calls++
	return m.Result
}
