package vocab

import "time"

// timeNow is the clock used for all timestamp stamping.
// Package tests swap it to pin times.
var timeNow = time.Now
