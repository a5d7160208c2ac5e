package memory

import (
	"github.com/patrickmn/go-cache"
)

// ImageCache is the per-process cache of college image URLs keyed by
// college id. It is the only process-wide mutable state in the service;
// go-cache gives us the concurrent-safe map. Entries never expire on
// their own (NoExpiration) since image URLs are effectively immutable.
type ImageCache struct {
	cache *cache.Cache
}

func NewImageCache() *ImageCache {
	c := cache.New(cache.NoExpiration, 0)
	return &ImageCache{
		cache: c,
	}
}

func (r *ImageCache) Set(collegeId, imageURL string) {
	r.cache.Set(collegeId, imageURL, cache.NoExpiration)
}

func (r *ImageCache) Get(collegeId string) (string, bool) {
	if x, found := r.cache.Get(collegeId); found {
		return x.(string), true
	}
	return "", false
}

func (r *ImageCache) Delete(collegeId string) {
	r.cache.Delete(collegeId)
}
