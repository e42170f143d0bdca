package connectapi

import (
	"resource-mapper/resource"
)

// TerritoryAvailability is the availability of an app in one territory.
type TerritoryAvailability struct {
	*resource.Instance
}

// NewTerritoryAvailability returns a territory availability with every
// attribute null.
func NewTerritoryAvailability() TerritoryAvailability {
	return TerritoryAvailability{TerritoryAvailabilityType.New()}
}

// AsTerritoryAvailability wraps inst. ok is false for any other type.
func AsTerritoryAvailability(inst *resource.Instance) (TerritoryAvailability, bool) {
	if inst == nil || inst.ResourceTypeID() != TerritoryAvailabilityType.TypeID() {
		return TerritoryAvailability{}, false
	}

	return TerritoryAvailability{inst}, true
}

func (t TerritoryAvailability) Available() (bool, bool) {
	return resource.Value[bool](t.Instance, "available")
}

func (t TerritoryAvailability) SetAvailable(v bool) {
	mustSet(t.Instance, "available", v)
}

// ContentStatuses returns the reasons for the current availability.
// Values outside ContentStatusSet are returned as-is.
func (t TerritoryAvailability) ContentStatuses() ([]ContentStatus, bool) {
	raw, ok := resource.Strings(t.Instance, "content_statuses")
	if !ok {
		return nil, false
	}

	out := make([]ContentStatus, len(raw))
	for i, s := range raw {
		out[i] = ContentStatus(s)
	}

	return out, true
}

func (t TerritoryAvailability) SetContentStatuses(statuses ...ContentStatus) {
	raw := make([]string, len(statuses))
	for i, s := range statuses {
		raw[i] = string(s)
	}

	mustSet(t.Instance, "content_statuses", raw)
}

func (t TerritoryAvailability) PreOrderEnabled() (bool, bool) {
	return resource.Value[bool](t.Instance, "pre_order_enabled")
}

func (t TerritoryAvailability) SetPreOrderEnabled(v bool) {
	mustSet(t.Instance, "pre_order_enabled", v)
}

// PreOrderPublishDate returns the date as sent by the API, e.g. "2023-01-01".
func (t TerritoryAvailability) PreOrderPublishDate() (string, bool) {
	return resource.Value[string](t.Instance, "pre_order_publish_date")
}

func (t TerritoryAvailability) SetPreOrderPublishDate(date string) {
	mustSet(t.Instance, "pre_order_publish_date", date)
}

func (t TerritoryAvailability) ReleaseDate() (string, bool) {
	return resource.Value[string](t.Instance, "release_date")
}

func (t TerritoryAvailability) SetReleaseDate(date string) {
	mustSet(t.Instance, "release_date", date)
}

// AppAvailability is the availability of an app across territories.
type AppAvailability struct {
	*resource.Instance
}

// NewAppAvailability returns an app availability with every attribute null.
func NewAppAvailability() AppAvailability {
	return AppAvailability{AppAvailabilityType.New()}
}

// AsAppAvailability wraps inst. ok is false for any other type.
func AsAppAvailability(inst *resource.Instance) (AppAvailability, bool) {
	if inst == nil || inst.ResourceTypeID() != AppAvailabilityType.TypeID() {
		return AppAvailability{}, false
	}

	return AppAvailability{inst}, true
}

func (a AppAvailability) AvailableInNewTerritories() (bool, bool) {
	return resource.Value[bool](a.Instance, "available_in_new_territories")
}

func (a AppAvailability) SetAvailableInNewTerritories(v bool) {
	mustSet(a.Instance, "available_in_new_territories", v)
}

// TerritoryAvailabilities returns the nested territory availabilities,
// skipping elements of any other type.
func (a AppAvailability) TerritoryAvailabilities() []TerritoryAvailability {
	var out []TerritoryAvailability

	switch list := a.Attributes()["territory_availabilities"].(type) {
	case []*resource.Instance:
		for _, inst := range list {
			if ta, ok := AsTerritoryAvailability(inst); ok {
				out = append(out, ta)
			}
		}
	case []TerritoryAvailability:
		out = append(out, list...)
	}

	return out
}

func (a AppAvailability) SetTerritoryAvailabilities(items ...TerritoryAvailability) {
	mustSet(a.Instance, "territory_availabilities", items)
}

// mustSet assigns a declared attribute; failure means the generated type
// and the wrapper disagree.
func mustSet(inst *resource.Instance, local string, v any) {
	if err := inst.Set(local, v); err != nil {
		panic(err)
	}
}
