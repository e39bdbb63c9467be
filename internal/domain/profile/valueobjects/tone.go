package valueobjects

// ToneOfVoice steers the register of generated marketing copy.
type ToneOfVoice string

const (
	ToneCasual   ToneOfVoice = "Casual e Amigável"
	TonePremium  ToneOfVoice = "Premium e Sofisticado"
	ToneZoeira   ToneOfVoice = "Engraçado/Zoeira (Meme)"
	ToneEnergico ToneOfVoice = "Energético e Promocional"
	ToneTioDoZap ToneOfVoice = "Tio do Zap (Emojis e Capslock)"
)

// ValidTones enumerates the known tones of voice.
var ValidTones = map[ToneOfVoice]bool{
	ToneCasual:   true,
	TonePremium:  true,
	ToneZoeira:   true,
	ToneEnergico: true,
	ToneTioDoZap: true,
}

// IsValid reports whether t is a known tone.
func (t ToneOfVoice) IsValid() bool {
	return ValidTones[t]
}
