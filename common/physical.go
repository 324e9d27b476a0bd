package common

// All units are metric:
// - Distance and elevation are in meters
// - Grade is a percentage (elevation change over horizontal distance)

const ElevationOfEverest = 8848.0
const ElevationOfDeadSea = -430.0
const ElevationOfTroposphere = 11000.0

// GradeOfSteepSidewalk is about the steepest grade in normal city walking.
const GradeOfSteepSidewalk = 8.0

// GradeOfSteepTrail is a sustained steep hiking trail.
const GradeOfSteepTrail = 20.0

// GradeOfScramble is hands-on-ground territory; anything reported
// beyond this from GPS pairs is far more likely noise than terrain.
const GradeOfScramble = 45.0

// VAccuracyUnknown is the sentinel for missing vertical accuracy.
// Clients that don't report one use a negative value.
const VAccuracyUnknown = -1.0
