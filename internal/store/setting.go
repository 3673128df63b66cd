package store

import "context"

type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type SettingStore interface {
	ReadSetting(ctx context.Context, key string) (*Setting, error)
	WriteSetting(ctx context.Context, key, value string) error
}
