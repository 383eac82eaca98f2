// Package parse holds the pure text extractors used for data-entry
// convenience: a Portuguese voice-command parser and an OCR expiry-date
// extractor. Both are deterministic and stateless.
package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// VoiceCommand is the structured result of parsing a spoken sentence like
// "Adicionar 5 kg de leite com validade em 3 dias".
type VoiceCommand struct {
	Name       string
	Quantity   string
	Unit       string
	ExpiryDays *int
	ExpiryDate string // YYYY-MM-DD, derived from ExpiryDays
	Category   string
	Homemade   bool
}

// Quantity+unit patterns, tried in order. The liquid pattern resolves its
// unit from the matched text (ml vs L); everything else maps to a fixed unit.
var quantityPatterns = []struct {
	re   *regexp.Regexp
	unit string // empty = resolve from match
}{
	{regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(?:kg|quilogramas?|kilos?)`), "kg"},
	{regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(?:mililitros?|ml|litros?|l\b)`), ""},
	{regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(?:unidades?|uni\b|un\b)`), "un"},
	{regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*peças?`), "un"},
	{regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*pacotes?`), "un"},
	{regexp.MustCompile(`^(\d+(?:[.,]\d+)?)(?:\s|$)`), "un"},
}

var expiryDayPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:em|daqui a|dentro de|válido em|expira em)\s*(\d+)\s*dias?`),
	regexp.MustCompile(`\+(\d+)\s*dias?`),
	regexp.MustCompile(`(?i)(\d+)\s*dias?\s*(?:de validade|para expirar)`),
}

var simpleDaysPattern = regexp.MustCompile(`(?i)(\d+)\s*dias?`)

var (
	reCommandWords = regexp.MustCompile(`(?i)adicionar ao stock|adicionar produto|adicionar|adiciona`)
	reExpiryWords  = regexp.MustCompile(`(?i)com validade|válido até|válido em|válido|expira em|expira daqui|expira`)
	reExpiryDays   = regexp.MustCompile(`(?i)em \d+ dias?|daqui a \d+ dias?|\+?\d+ dias?`)
	reRelativeDays = regexp.MustCompile(`(?i)hoje|amanhã`)
	reHomemade     = regexp.MustCompile(`(?i)feito na casa|feito em casa|caseiro`)
	reCategory     = regexp.MustCompile(`(?i)\b(?:frescos?|congelados?|secos?)\b`)
	reUnitWords    = regexp.MustCompile(`(?i)\b(?:unidades?|un|kg|quilogramas?|litros?|mililitros?|ml)\b`)
	reLeadingDe    = regexp.MustCompile(`^(?i)de\s+`)
	reWhitespace   = regexp.MustCompile(`\s+`)
)

var categoryKeywords = []struct{ keyword, category string }{
	{"fresco", "Frescos"},
	{"congelado", "Congelados"},
	{"seco", "Secos"},
}

// ParseVoiceCommand extracts product information from a voice command.
func ParseVoiceCommand(text string) VoiceCommand {
	return parseVoiceCommandAt(text, time.Now())
}

func parseVoiceCommandAt(text string, now time.Time) VoiceCommand {
	var result VoiceCommand
	lower := strings.ToLower(strings.TrimSpace(text))

	quantityMatch := ""
	for _, p := range quantityPatterns {
		m := p.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		result.Quantity = strings.ReplaceAll(m[1], ",", ".")
		result.Unit = p.unit
		if p.unit == "" {
			full := strings.ToLower(m[0])
			if strings.Contains(full, "ml") || strings.Contains(full, "mililitro") {
				result.Unit = "ml"
			} else {
				result.Unit = "L"
			}
		}
		quantityMatch = m[0]
		break
	}

	if days, ok := extractExpiryDays(lower); ok {
		result.ExpiryDays = &days
		result.ExpiryDate = now.AddDate(0, 0, days).Format("2006-01-02")
	}

	result.Name = extractProductName(lower, quantityMatch)

	result.Homemade = reHomemade.MatchString(lower)

	for _, ck := range categoryKeywords {
		if strings.Contains(lower, ck.keyword) {
			result.Category = ck.category
			break
		}
	}

	return result
}

// extractExpiryDays recognizes relative expiry cues: "hoje", "amanhã",
// "em 3 dias", "daqui a 7 dias", "+2 dias". Offsets outside 0–365 days are
// treated as misrecognitions and ignored.
func extractExpiryDays(text string) (int, bool) {
	if strings.Contains(text, "hoje") {
		return 0, true
	}
	if strings.Contains(text, "amanhã") || strings.Contains(text, "+1 dia") ||
		strings.Contains(text, "em 1 dia") || strings.Contains(text, "daqui a 1 dia") {
		return 1, true
	}

	for _, re := range expiryDayPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if days, err := strconv.Atoi(m[1]); err == nil && days >= 0 && days <= 365 {
			return days, true
		}
	}

	if m := simpleDaysPattern.FindStringSubmatch(text); m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil && days >= 0 && days <= 365 {
			return days, true
		}
	}

	return 0, false
}

// extractProductName strips command words, expiry cues, and the matched
// quantity from the sentence; whatever remains is the product name.
func extractProductName(text, quantityMatch string) string {
	cleaned := text
	cleaned = reCommandWords.ReplaceAllString(cleaned, "")
	cleaned = reExpiryWords.ReplaceAllString(cleaned, "")
	cleaned = reExpiryDays.ReplaceAllString(cleaned, "")
	cleaned = reRelativeDays.ReplaceAllString(cleaned, "")
	cleaned = reHomemade.ReplaceAllString(cleaned, "")
	cleaned = reCategory.ReplaceAllString(cleaned, "")
	if quantityMatch != "" {
		cleaned = strings.Replace(cleaned, quantityMatch, "", 1)
	}
	cleaned = strings.TrimSpace(cleaned)
	cleaned = reLeadingDe.ReplaceAllString(cleaned, "")
	cleaned = reUnitWords.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(reWhitespace.ReplaceAllString(cleaned, " "))

	return titleCase(cleaned)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
