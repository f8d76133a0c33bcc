package ioc

import (
	"time"

	"github.com/patrickmn/go-cache"
)

func InitGoCache() *cache.Cache {
	return cache.New(10*time.Minute, 15*time.Minute)
}
