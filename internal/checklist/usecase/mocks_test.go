package usecase_test

import (
	"context"
	"errors"
	"time"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockStore is an in-memory remote note.
type mockStore struct {
	text       string
	fetchErr   error
	replaceErr error
	fetches    int
	pushes     []string
}

func (m *mockStore) FetchText(ctx context.Context) (string, error) {
	m.fetches++
	if m.fetchErr != nil {
		return "", m.fetchErr
	}
	return m.text, nil
}

func (m *mockStore) ReplaceText(ctx context.Context, blob string) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.pushes = append(m.pushes, blob)
	m.text = blob
	return nil
}

func (m *mockStore) lastPush() string {
	if len(m.pushes) == 0 {
		return ""
	}
	return m.pushes[len(m.pushes)-1]
}

var errNetwork = errors.New("connection refused")

type mockCache struct {
	blob    string
	loadErr error
	saves   int
}

func (m *mockCache) Load(ctx context.Context) (string, error) { return m.blob, m.loadErr }

func (m *mockCache) Save(ctx context.Context, blob string) error {
	m.saves++
	m.blob = blob
	return nil
}

type mockSettings struct {
	hidePanel bool
	hidePopup bool
}

func (m *mockSettings) HideCompletedInPanel() bool      { return m.hidePanel }
func (m *mockSettings) HideCompletedInPopup() bool      { return m.hidePopup }
func (m *mockSettings) RotationInterval() time.Duration { return 5 * time.Second }
func (m *mockSettings) FetchInterval() time.Duration    { return 10 * time.Minute }
func (m *mockSettings) AllHiddenText() string           { return "All tasks completed!" }
