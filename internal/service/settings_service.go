package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strconv"

	"github.com/paverbrasil/paveradmin/internal/store"
)

const totalRevenueKey = "totalRevenue"

type SettingsService struct {
	settingStore store.SettingStore
}

func NewSettingsService(s store.SettingStore) *SettingsService {
	return &SettingsService{settingStore: s}
}

// GetTotalRevenue returns 0 when the key is absent or the store is down.
func (s *SettingsService) GetTotalRevenue(ctx context.Context) float64 {
	setting, err := s.settingStore.ReadSetting(ctx, totalRevenueKey)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("warning: reading total revenue: %v", err)
		}
		return 0
	}
	value, err := strconv.ParseFloat(setting.Value, 64)
	if err != nil {
		log.Printf("warning: malformed total revenue %q: %v", setting.Value, err)
		return 0
	}
	return value
}

func (s *SettingsService) SetTotalRevenue(ctx context.Context, totalRevenue float64) error {
	return s.settingStore.WriteSetting(
		ctx,
		totalRevenueKey,
		strconv.FormatFloat(totalRevenue, 'f', -1, 64),
	)
}
