// Package detect holds the demo voice analyzer. It is a deterministic
// hash-based mock, not real inference; a production deployment would
// call out to the ML model service instead.
package detect

import (
	"math/rand"
	"time"
)

const (
	ClassificationAI    = "AI_GENERATED"
	ClassificationHuman = "HUMAN"

	// the mock only inspects a prefix of the payload
	sampleLen = 200
)

type Result struct {
	Classification string `json:"classification"`
	Confidence     int    `json:"confidence"`
	Language       string `json:"language"`
	Explanation    string `json:"explanation"`
}

var languageLabels = map[string]string{
	"auto": "Auto-detected",
	"en":   "English",
	"hi":   "Hindi",
	"ta":   "Tamil",
	"ml":   "Malayalam",
	"te":   "Telugu",
}

var languageCodes = []string{"en", "hi", "ta", "ml", "te"}

var aiExplanations = []string{
	"Synthetic pitch patterns and uniform spectral characteristics detected. Mel-frequency analysis shows consistent formant spacing typical of AI synthesis.",
	"Abnormal prosody detected. Voice exhibits unnatural stress patterns and breathing inconsistencies. CNN-based model confidence: 92%",
	"Mel-spectrogram analysis reveals periodic artifacts consistent with neural vocoder output. Transformer model flags potential AI generation.",
}

var humanExplanations = []string{
	"Natural vocal characteristics and prosody patterns detected. Voice shows human-like emotion and natural micro-variations in pitch and timbre.",
	"Authentic human speech identified. Detected natural breathing patterns and spontaneous vocal characteristics. Confidence: Human verified.",
	"Human voice confirmed. Analysis shows natural formant transitions and authentic emotional expression patterns typical of human speech.",
}

// ValidLanguage reports whether code is one of the supported language
// codes (including "auto").
func ValidLanguage(code string) bool {
	_, ok := languageLabels[code]
	return ok
}

// SupportedLanguages lists the accepted language codes for error
// messages and the API description.
func SupportedLanguages() []string {
	return []string{"auto", "en", "hi", "ta", "ml", "te"}
}

// Analyzer simulates model latency and classifies a payload from a hash
// of its prefix, so identical uploads always get identical verdicts.
type Analyzer struct {
	baseDelay time.Duration
	jitter    time.Duration
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{baseDelay: 300 * time.Millisecond, jitter: 400 * time.Millisecond}
}

// NewInstantAnalyzer skips the simulated latency.
func NewInstantAnalyzer() *Analyzer {
	return &Analyzer{}
}

func (a *Analyzer) Analyze(audioBase64, language string) *Result {
	if a.baseDelay > 0 || a.jitter > 0 {
		delay := a.baseDelay
		if a.jitter > 0 {
			delay += time.Duration(rand.Int63n(int64(a.jitter)))
		}
		time.Sleep(delay)
	}

	sample := audioBase64
	if len(sample) > sampleLen {
		sample = sample[:sampleLen]
	}

	// byte-wise 32-bit rolling hash, wrapping on overflow
	var hash int32
	for i := 0; i < len(sample); i++ {
		hash = hash*31 + int32(sample[i])
	}

	// widen before negating: -MinInt32 overflows int32
	h := int64(hash)
	if h < 0 {
		h = -h
	}

	variance := h % 100
	isAI := variance < 45
	confidence := 65 + h%35

	code := language
	if code == "auto" {
		code = languageCodes[h%int64(len(languageCodes))]
	}
	label, ok := languageLabels[code]
	if !ok {
		label = "Unknown"
	}

	explanations := humanExplanations
	classification := ClassificationHuman
	if isAI {
		explanations = aiExplanations
		classification = ClassificationAI
	}

	return &Result{
		Classification: classification,
		Confidence:     int(confidence),
		Language:       label,
		Explanation:    explanations[h%int64(len(explanations))],
	}
}
