package donut

// Emotion is the customer's reaction to an offered donut.
type Emotion uint8

const (
	EmotionHeartbroken Emotion = iota
	EmotionAngry
	EmotionSad
	EmotionHappy
	EmotionLove
)

// EmotionFor maps a star rating to a reaction.
func EmotionFor(rank int) Emotion {
	switch rank {
	case MaxRank:
		return EmotionLove
	case 4:
		return EmotionHappy
	case 3:
		return EmotionSad
	case 2:
		return EmotionAngry
	}
	return EmotionHeartbroken
}

func (e Emotion) String() string {
	switch e {
	case EmotionLove:
		return "love"
	case EmotionHappy:
		return "happy"
	case EmotionSad:
		return "sad"
	case EmotionAngry:
		return "angry"
	}
	return "heartbroken"
}
