package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// SchedulePattern matches every cached schedule rendering.
const SchedulePattern = "schedule:*"

// WeekScheduleKey returns the cache key for a rendered week schedule
func (r *CacheKeyStruct) WeekScheduleKey(mode, weekType string, subgroup int) string {
	return fmt.Sprintf("schedule:week:%s:%s:%d", mode, weekType, subgroup)
}

// ChatStateKey returns the key holding a chat's conversation state
func (r *CacheKeyStruct) ChatStateKey(chatID int64) string {
	return fmt.Sprintf("chat:%d:state", chatID)
}

var CacheKey = NewCacheKeyStruct()
