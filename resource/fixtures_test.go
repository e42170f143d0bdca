package resource

import (
	"resource-mapper/mapping"
)

var (
	testContentStatus = mapping.MustConstantSet("ContentStatus",
		"AVAILABLE", "AVAILABLE_FOR_PREORDER", "CANNOT_SELL", "PROCESSING_TO_AVAILABLE")

	territoryAvailabilityType = MustType("territoryAvailabilities",
		mapping.MustTable("territoryAvailabilities",
			mapping.P("available", "available"),
			mapping.P("contentStatuses", "content_statuses"),
			mapping.P("preOrderEnabled", "pre_order_enabled"),
			mapping.P("preOrderPublishDate", "pre_order_publish_date"),
			mapping.P("releaseDate", "release_date"),
		),
		WithConstants("content_statuses", testContentStatus),
	)

	territoryType = MustType("territories",
		mapping.MustTable("territories", mapping.Derived("currency")))

	appAvailabilityType = MustType("appAvailabilities",
		mapping.MustTable("appAvailabilities",
			mapping.Derived("availableInNewTerritories"),
			mapping.Derived("territoryAvailabilities"),
		))
)

func testRegistry() *Registry {
	return MustRegistry(territoryAvailabilityType, territoryType, appAvailabilityType)
}

func territoryPayload() map[string]any {
	return map[string]any{
		"type": "territoryAvailabilities",
		"id":   "ta-1",
		"attributes": map[string]any{
			"available":       true,
			"contentStatuses": []any{"AVAILABLE"},
			"preOrderEnabled": false,
			"releaseDate":     "2023-01-01",
		},
	}
}
