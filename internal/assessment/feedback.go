package assessment

// FeedbackTier is the qualitative band for a submitted score. Five ordered
// bands partition [0,100].
type FeedbackTier int

const (
	TierNeedsWork    FeedbackTier = iota // below 40
	TierGettingThere                     // 40 to 59
	TierGood                             // 60 to 79
	TierGreat                            // 80 to 99
	TierPerfect                          // exactly 100
)

// TierForScore maps a score percentage to its feedback tier.
func TierForScore(scorePercent float64) FeedbackTier {
	switch {
	case scorePercent >= 100:
		return TierPerfect
	case scorePercent >= 80:
		return TierGreat
	case scorePercent >= 60:
		return TierGood
	case scorePercent >= 40:
		return TierGettingThere
	default:
		return TierNeedsWork
	}
}

// Message returns the encouragement line shown with the score.
func (t FeedbackTier) Message() string {
	switch t {
	case TierPerfect:
		return "Perfect score! You really know this article."
	case TierGreat:
		return "Great job! Nearly flawless."
	case TierGood:
		return "Good work. A re-read would push you higher."
	case TierGettingThere:
		return "Getting there. Worth another look at the article."
	default:
		return "Tough one. Read through the explanations and retry."
	}
}

// FeedbackTier returns the tier for the engine's submitted score.
func (e *Engine) FeedbackTier() FeedbackTier {
	return TierForScore(e.ScorePercent())
}
