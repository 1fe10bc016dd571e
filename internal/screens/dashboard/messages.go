package dashboard

import (
	"time"

	"github.com/sarveshai94-commits/academyquest/internal/state"
)

// clockTickMsg is sent every second to drive the clock and bell check.
type clockTickMsg time.Time

// bellRungMsg is sent after the session-end bell has been processed.
type bellRungMsg struct {
	Result state.BellResult
}

// flashDoneMsg clears the XP award flash.
type flashDoneMsg struct{}
