package config

import (
	"sync/atomic"
	"time"
)

// Settings exposes WidgetConfig to the checklist core. The value can be
// swapped at runtime from the config watcher goroutine.
type Settings struct {
	cur atomic.Pointer[WidgetConfig]
}

// NewSettings returns Settings initialised with w.
func NewSettings(w WidgetConfig) *Settings {
	s := &Settings{}
	s.Store(w)
	return s
}

// Store replaces the current widget configuration.
func (s *Settings) Store(w WidgetConfig) {
	s.cur.Store(&w)
}

func (s *Settings) load() WidgetConfig {
	if w := s.cur.Load(); w != nil {
		return *w
	}
	return WidgetConfig{
		RotationIntervalSeconds: defaultRotationSeconds,
		FetchIntervalMinutes:    defaultFetchMinutes,
		AllHiddenMessage:        DefaultAllHiddenText,
	}
}

func (s *Settings) HideCompletedInPanel() bool { return s.load().HideCompletedPanel }
func (s *Settings) HideCompletedInPopup() bool { return s.load().HideCompletedPopup }

func (s *Settings) RotationInterval() time.Duration {
	return time.Duration(s.load().RotationIntervalSeconds) * time.Second
}

func (s *Settings) FetchInterval() time.Duration {
	return time.Duration(s.load().FetchIntervalMinutes) * time.Minute
}

func (s *Settings) AllHiddenText() string {
	if msg := s.load().AllHiddenMessage; msg != "" {
		return msg
	}
	return DefaultAllHiddenText
}
