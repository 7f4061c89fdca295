// Package translate is a pass-through bilingual layer around the analysis
// pipeline. Detection is best-effort and translation failures degrade to
// the original text: availability over fidelity, this layer never blocks
// the pipeline.
package translate

import (
	"context"
	"log"
	"strings"
)

// Service is the external translation collaborator.
type Service interface {
	Detect(ctx context.Context, text string) (string, error)
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// Normalizer routes text to English for analysis and replies back to the
// user's language. A nil Service falls back to the script heuristic and
// pass-through translation.
type Normalizer struct {
	svc Service
}

func NewNormalizer(svc Service) *Normalizer {
	return &Normalizer{svc: svc}
}

// ToEnglish returns the text in English plus the detected language code.
// English input is returned unchanged with language "en"; any detection or
// translation failure also degrades to ("en" / unchanged text).
func (n *Normalizer) ToEnglish(ctx context.Context, text string) (string, string) {
	lang := n.detect(ctx, text)
	if lang == "en" {
		return text, "en"
	}
	if n.svc == nil {
		return text, lang
	}
	translated, err := n.svc.Translate(ctx, text, lang, "en")
	if err != nil || strings.TrimSpace(translated) == "" {
		log.Printf("translation to English failed, passing through: %v", err)
		return text, lang
	}
	return translated, lang
}

// FromEnglish renders an English reply in the target language, passing the
// English text through unchanged on any failure or when the target is
// already English.
func (n *Normalizer) FromEnglish(ctx context.Context, textEN, targetLang string) string {
	if targetLang == "" || targetLang == "en" || n.svc == nil {
		return textEN
	}
	translated, err := n.svc.Translate(ctx, textEN, "en", targetLang)
	if err != nil || strings.TrimSpace(translated) == "" {
		log.Printf("translation to %s failed, passing through: %v", targetLang, err)
		return textEN
	}
	return translated
}

func (n *Normalizer) detect(ctx context.Context, text string) string {
	if n.svc != nil {
		lang, err := n.svc.Detect(ctx, text)
		if err == nil && lang != "" {
			return lang
		}
		log.Printf("language detection failed, assuming heuristic: %v", err)
	}
	return DetectByScript(text)
}

// DetectByScript is the crude zero-dependency detector: any Arabic-block
// codepoint marks the text as Arabic, everything else is treated as
// English.
func DetectByScript(text string) string {
	for _, r := range text {
		if r >= 0x0600 && r <= 0x06FF {
			return "ar"
		}
	}
	return "en"
}
