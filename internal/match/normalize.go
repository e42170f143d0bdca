package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent normalizes an identifier for fuzzy matching.
// "preOrderEnabled", "pre_order_enabled" and "PRE-ORDER-ENABLED" all
// normalize to "preorderenabled".
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// SnakeCase converts a wire key to its local attribute name.
// Examples:
//   - "contentStatuses" -> "content_statuses"
//   - "preOrderPublishDate" -> "pre_order_publish_date"
//   - "appStoreURL" -> "app_store_url"
func SnakeCase(s string) string {
	return strings.Join(TokenizeIdent(s), "_")
}

// GoIdent converts a key or an upper snake case token to an exported Go
// identifier. Examples:
//   - "AVAILABLE_FOR_PREORDER" -> "AvailableForPreorder"
//   - "release_date" -> "ReleaseDate"
//   - "territoryAvailabilities" -> "TerritoryAvailabilities"
//
// Tokens that start with a digit get an underscore prefix on the first one.
func GoIdent(s string) string {
	var b strings.Builder

	for i, tok := range TokenizeIdent(s) {
		runes := []rune(tok)
		if i == 0 && unicode.IsDigit(runes[0]) {
			b.WriteRune('_')
		}

		b.WriteRune(unicode.ToUpper(runes[0]))
		b.WriteString(string(runes[1:]))
	}

	return b.String()
}

// TokenizeIdent splits an identifier into normalized lowercase tokens.
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "customerName" -> ["customer", "Name"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "CANNOT_SELL_CASINO" -> ["CANNOT", "SELL", "CASINO"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prevRune := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prevRune)

	// "orderID" splits before 'I'
	if isUpper && !isPrevUpper && !isSeparator(prevRune) {
		return true
	}

	// "XMLParser" splits before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}
