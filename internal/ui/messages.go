package ui

import (
	"time"

	"colorsearch/internal/domain"
)

// searchResultMsg carries the outcome of one lookup back to Update
type searchResultMsg struct {
	requestID uint64
	query     string
	records   []domain.MatchRecord
	err       error
	elapsed   time.Duration
}

// pagerExitMsg is sent when the result pager closes
type pagerExitMsg struct {
	err error
}
