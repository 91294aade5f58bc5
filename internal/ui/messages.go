package ui

import (
	"time"

	"magicbook/internal/content"
)

// navStateMsg tells the model the navigator changed; the model reads the
// current state itself since deliveries may arrive out of order
type navStateMsg struct{}

// tickMsg is sent on a timer for animations
type tickMsg time.Time

// welcomeDoneMsg ends the intro screen
type welcomeDoneMsg struct{}

// submitDoneMsg completes the simulated contact submission with id seq
type submitDoneMsg struct {
	seq int
}

// clearStatusMsg clears the form status if it is still the one set at seq
type clearStatusMsg struct {
	seq int
}

// ContentReloadedMsg delivers a reloaded portfolio, or the reload error
type ContentReloadedMsg struct {
	Portfolio *content.Portfolio
	Err       error
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}

// clearNoticeMsg clears the model's notice if it is still the one set at seq
type clearNoticeMsg struct {
	seq int
}
