package ports

type CachePort[T any] interface {
	Get(key string) (T, bool)
	Set(key string, val T)
	ClearKey(key string)
	ClearAll()
}
