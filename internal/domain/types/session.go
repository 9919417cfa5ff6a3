package types

import "time"

// Session records the single authenticated operator of this process.
type Session struct {
	ID       string    `json:"id"`
	Username Username  `json:"username"`
	Started  time.Time `json:"started"`
}
