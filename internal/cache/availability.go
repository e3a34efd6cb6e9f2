package cache

import (
	"context"
	"fmt"
	"time"
)

const availabilityTTL = 5 * time.Minute

// AvailabilityState 商品可用性缓存载荷
type AvailabilityState struct {
	ProductID          uint   `json:"product_id"`
	Slug               string `json:"slug"`
	Title              string `json:"title"`
	IsPublished        bool   `json:"is_published"`
	BackorderBlocked   bool   `json:"backorder_blocked"`
	AvailableProviders int64  `json:"available_providers"`
	Available          bool   `json:"available"`
	RefreshedAt        int64  `json:"refreshed_at"`
}

func availabilityKey(productID uint) string {
	return fmt.Sprintf("availability:%d", productID)
}

// GetAvailabilityState 读取商品可用性缓存
func GetAvailabilityState(ctx context.Context, productID uint) (*AvailabilityState, bool, error) {
	if !Enabled() {
		return nil, false, nil
	}
	var state AvailabilityState
	hit, err := GetJSON(ctx, availabilityKey(productID), &state)
	if err != nil || !hit {
		return nil, false, err
	}
	return &state, true, nil
}

// SetAvailabilityState 写入商品可用性缓存
func SetAvailabilityState(ctx context.Context, state *AvailabilityState) error {
	if state == nil {
		return nil
	}
	state.RefreshedAt = time.Now().Unix()
	return SetJSON(ctx, availabilityKey(state.ProductID), state, availabilityTTL)
}

// DelAvailabilityState 删除商品可用性缓存
func DelAvailabilityState(ctx context.Context, productID uint) error {
	return Del(ctx, availabilityKey(productID))
}
