package spacedrep

// InitialEasiness is the SM-2 easiness factor of a phrase never reviewed.
const InitialEasiness = 2.5

// MinEasiness is the floor of the easiness factor.
const MinEasiness = 1.3

// FirstIntervalDays and SecondIntervalDays are the fixed intervals after
// the first and second successful reviews. Later intervals grow by the
// easiness factor.
const (
	FirstIntervalDays  = 1
	SecondIntervalDays = 6
)

// MaxIntervalDays caps the review interval.
const MaxIntervalDays = 365

// PassQuality is the lowest quality that counts as a successful review.
const PassQuality = QualityCorrectDifficult

// Mastery thresholds: a phrase is mastered once it has been recalled this
// many times in a row with an interval of at least this many days.
const (
	MasteredRepetitions  = 5
	MasteredIntervalDays = 30
)
