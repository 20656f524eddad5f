package services

import (
	"os"
	"sync"
)

const maxCacheEntries = 1024

type cacheEntry struct {
	ModTime int64
	Size    int64
	MIME    string
}

// describeCache remembers sniffed MIME types. An entry is reused only while
// the file's size and modification time are unchanged.
type describeCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

func newDescribeCache() *describeCache {
	return &describeCache{entries: make(map[string]cacheEntry)}
}

func (cache *describeCache) lookup(path string, info os.FileInfo) (string, bool) {
	cache.mu.RLock()
	entry, ok := cache.entries[path]
	cache.mu.RUnlock()
	if !ok {
		return "", false
	}
	if entry.ModTime != info.ModTime().UnixNano() || entry.Size != info.Size() {
		return "", false
	}
	return entry.MIME, true
}

func (cache *describeCache) store(path string, info os.FileInfo, mime string) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	if len(cache.entries) >= maxCacheEntries {
		cache.entries = make(map[string]cacheEntry)
	}
	cache.entries[path] = cacheEntry{
		ModTime: info.ModTime().UnixNano(),
		Size:    info.Size(),
		MIME:    mime,
	}
}

func (cache *describeCache) forget(path string) {
	cache.mu.Lock()
	delete(cache.entries, path)
	cache.mu.Unlock()
}

func (cache *describeCache) len() int {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	return len(cache.entries)
}
