package events

import (
	"github.com/ethereum/go-ethereum/event"
	"github.com/trailsense/graded/geo/grade"
)

// GradeResultFeed is emitted for every grade result the pipeline
// computes from a qualifying pair of fixes. Telemetry and energy
// consumers subscribe here rather than tapping the engine directly.
var GradeResultFeed = event.FeedOf[grade.Result]{}
