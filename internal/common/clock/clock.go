package clock

import "time"

type NowFunc func() time.Time
