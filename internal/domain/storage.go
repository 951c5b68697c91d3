package domain

// KeyValueStore is the device-local persistent string store backing guest
// favorites. It deliberately mirrors web localStorage semantics: values are
// opaque serialized strings, a missing key is ("", false), and readers treat
// any malformed stored value as absent rather than erroring.
type KeyValueStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}
