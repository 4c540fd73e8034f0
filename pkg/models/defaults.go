package models

// DefaultCategories returns the system category set cloned for each new owner.
func DefaultCategories() []Category {
	expense := []struct{ name, icon, color string }{
		{"Food & Dining", "restaurant", "#EF4444"},
		{"Transport", "directions_car", "#F59E0B"},
		{"Shopping", "shopping_bag", "#8B5CF6"},
		{"Bills & Utilities", "receipt", "#3B82F6"},
		{"Entertainment", "movie", "#EC4899"},
		{"Health", "local_hospital", "#10B981"},
		{"Education", "school", "#6366F1"},
		{"Personal Care", "spa", "#F472B6"},
		{"Travel", "flight", "#14B8A6"},
		{"Groceries", "local_grocery_store", "#84CC16"},
		{"Subscriptions", "subscriptions", "#A855F7"},
		{"Other", "more_horiz", "#6B7280"},
	}
	income := []struct{ name, icon, color string }{
		{"Salary", "work", "#10B981"},
		{"Freelance", "laptop", "#3B82F6"},
		{"Investment", "trending_up", "#8B5CF6"},
		{"Refund", "replay", "#F59E0B"},
		{"Gift", "card_giftcard", "#EC4899"},
		{"Other Income", "attach_money", "#6B7280"},
	}

	out := make([]Category, 0, len(expense)+len(income))
	for _, c := range expense {
		out = append(out, Category{Name: c.name, Type: CategoryExpense, Icon: c.icon, Color: c.color, IsSystem: true})
	}
	for _, c := range income {
		out = append(out, Category{Name: c.name, Type: CategoryIncome, Icon: c.icon, Color: c.color, IsSystem: true})
	}
	return out
}
