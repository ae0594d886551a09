package api

import "time"

// CachePolicy controls when the cached own profile is served.
// The zero value never expires and never invalidates on login.
type CachePolicy struct {
	TTL               time.Duration // 0 - кэш не устаревает
	InvalidateOnLogin bool          // сбрасывать кэш при успешном логине
}

// CacheForever keeps the cached profile until logout
func CacheForever() CachePolicy {
	return CachePolicy{}
}

// CacheTTL serves the cached profile only while it is younger than ttl
func CacheTTL(ttl time.Duration) CachePolicy {
	return CachePolicy{TTL: ttl}
}

// Fresh reports whether a snapshot taken at cachedAt may be served at now
func (p CachePolicy) Fresh(cachedAt, now time.Time) bool {
	if p.TTL <= 0 {
		return true
	}
	return now.Sub(cachedAt) < p.TTL
}
