package timezone

import (
	"sync"
	"time"
)

const DefaultTimezone = "America/Santiago"

var (
	mu  sync.RWMutex
	loc *time.Location
)

// Init fija la zona horaria única del sistema. Toda comparación con
// "ahora" y todo instante almacenado usan esta zona.
func Init(tz string) {
	mu.Lock()
	defer mu.Unlock()

	if l, err := time.LoadLocation(tz); err == nil && tz != "" {
		loc = l
		return
	}

	loc, _ = time.LoadLocation(DefaultTimezone)
}

func Location() *time.Location {
	mu.RLock()
	l := loc
	mu.RUnlock()

	if l == nil {
		Init(DefaultTimezone)
		mu.RLock()
		l = loc
		mu.RUnlock()
	}
	return l
}

func Now() time.Time {
	return time.Now().In(Location())
}
