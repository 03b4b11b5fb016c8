package tests

import (
	"context"

	"qualigo/internal/domain"

	"github.com/stretchr/testify/mock"
)

func anyContext() interface{} {
	return mock.MatchedBy(func(ctx context.Context) bool { return true })
}

func mockAnyItems() interface{} {
	return mock.AnythingOfType("[]domain.CartItem")
}

func matchSingleItem(dishID string) interface{} {
	return mock.MatchedBy(func(items []domain.CartItem) bool {
		return len(items) == 1 && items[0].DishID == dishID
	})
}

func captureItems(dst *[]domain.CartItem) func(mock.Arguments) {
	return func(args mock.Arguments) {
		*dst = args.Get(0).([]domain.CartItem)
	}
}
