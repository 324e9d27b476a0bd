package params

import "time"

var DefaultBatchSize = 10_000
var DefaultChannelBufferSize = 100

// CacheTrackerTTL is how long an idle trek keeps its live tracker
// in the CLI's per-trek cache. Expiry is a session boundary:
// a trek quiet for longer than this starts over with fresh state.
var CacheTrackerTTL = 30 * time.Minute
