package service

import "qualigo/internal/domain"

// UnitPrice derives the per-unit price of a dish for a set of selected
// options: base price plus the delta of every selected option that still
// resolves within its group. Selection ids that no longer match an option
// are skipped silently, as if the option had been removed from the catalog.
func UnitPrice(dish domain.Dish, selections domain.Selections) float64 {
	price := dish.Price
	for _, group := range dish.Customizations {
		for _, optionID := range selections[group.ID] {
			if option, ok := findOption(group, optionID); ok {
				price += option.Price
			}
		}
	}
	return price
}

// SetOption applies one selection change and returns the updated selections
// without mutating the input. In a single-select group any selection
// replaces the whole group, so picking option B after option A evicts A.
// Applying the same change twice yields the same result.
func SetOption(dish domain.Dish, selections domain.Selections, groupID, optionID string, selected bool) domain.Selections {
	group, ok := findGroup(dish, groupID)
	if !ok {
		return selections
	}

	updated := make(domain.Selections, len(selections))
	for id, optionIDs := range selections {
		updated[id] = append([]string(nil), optionIDs...)
	}

	if !group.MultipleSelect {
		updated[groupID] = []string{optionID}
		return updated
	}

	current := updated[groupID]
	if selected {
		if !contains(current, optionID) {
			updated[groupID] = append(current, optionID)
		}
		return updated
	}

	kept := make([]string, 0, len(current))
	for _, id := range current {
		if id != optionID {
			kept = append(kept, id)
		}
	}
	updated[groupID] = kept
	return updated
}

func findGroup(dish domain.Dish, groupID string) (domain.Customization, bool) {
	for _, group := range dish.Customizations {
		if group.ID == groupID {
			return group, true
		}
	}
	return domain.Customization{}, false
}

func findOption(group domain.Customization, optionID string) (domain.CustomizationOption, bool) {
	for _, option := range group.Options {
		if option.ID == optionID {
			return option, true
		}
	}
	return domain.CustomizationOption{}, false
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
