package paginator

const (
	DefaultPage  = 1
	DefaultLimit = 10
	// MaxLimit caps a page so one request cannot dump the whole catalog.
	MaxLimit = 50
)
