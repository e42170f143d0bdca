package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"preOrderEnabled", "preorderenabled"},
		{"pre_order_enabled", "preorderenabled"},
		{"PRE-ORDER-ENABLED", "preorderenabled"},
		{"releaseDate", "releasedate"},
		{"XMLParser", "xmlparser"},
		{"", ""},
		{"a", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"available", "available"},
		{"contentStatuses", "content_statuses"},
		{"preOrderEnabled", "pre_order_enabled"},
		{"preOrderPublishDate", "pre_order_publish_date"},
		{"releaseDate", "release_date"},
		{"appStoreURL", "app_store_url"},
		{"already_snake", "already_snake"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SnakeCase(tt.input))
		})
	}
}

func TestGoIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"AVAILABLE", "Available"},
		{"AVAILABLE_FOR_PREORDER_ON_DATE", "AvailableForPreorderOnDate"},
		{"CANNOT_SELL_SEVENTEEN_PLUS_APPS", "CannotSellSeventeenPlusApps"},
		{"release_date", "ReleaseDate"},
		{"territoryAvailabilities", "TerritoryAvailabilities"},
		{"4K_ONLY", "_4KOnly"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, GoIdent(tt.input))
		})
	}
}

func TestTokenizeCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"OrderID", []string{"Order", "ID"}},
		{"customerName", []string{"customer", "Name"}},
		{"XMLParser", []string{"XML", "Parser"}},
		{"getHTTPResponse", []string{"get", "HTTP", "Response"}},
		{"order_id", []string{"order", "id"}},
		{"CANNOT_SELL_CASINO", []string{"CANNOT", "SELL", "CASINO"}},
		{"ALLCAPS", []string{"ALLCAPS"}},
		{"", nil},
		{"a", []string{"a"}},
		{"AbC", []string{"Ab", "C"}},
		{"ABcD", []string{"A", "Bc", "D"}},
		{"parseURL", []string{"parse", "URL"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, tokenizeCamelCase(tt.input))
		})
	}
}
