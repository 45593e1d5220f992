package config

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// CategoryMappingKey returns the Redis hash holding the category id -> label mapping.
func (r *CacheKeyStruct) CategoryMappingKey() string {
	return "categories:mapping"
}

var CacheKey = NewCacheKeyStruct()
