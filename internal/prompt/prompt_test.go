package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scripted map[string]string

func (s scripted) Input(_ context.Context, name string) (string, error) {
	if v, ok := s[name]; ok {
		return v, nil
	}
	return "", ErrAborted
}

func TestAsk(t *testing.T) {
	answers, err := Ask(context.Background(), scripted{"a": "1", "b": ""}, []string{"a", "b"})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"a": "1", "b": ""}, answers)
}

func TestAskStopsOnError(t *testing.T) {
	_, err := Ask(context.Background(), scripted{"a": "1"}, []string{"a", "b"})

	assert.ErrorIs(t, err, ErrAborted)
}

func TestSurveyInputHonoursCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSurvey().Input(ctx, "a")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestTranslateSurveyErr(t *testing.T) {
	assert.ErrorIs(t, translateSurveyErr(terminal.InterruptErr), ErrAborted)

	other := errors.New("boom")
	assert.Equal(t, other, translateSurveyErr(other))
}
