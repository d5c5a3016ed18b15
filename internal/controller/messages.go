package controller

import "time"

// tickMsg drives the matcher/render frame at the configured tick rate.
type tickMsg time.Time
