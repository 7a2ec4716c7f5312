package search

// Config holds tuning knobs for the indexing passes.
type Config struct {
	// Workers bounds the indexing worker pool.
	Workers int `mapstructure:"workers" default:"8"`
	// ChunkSize is the number of documents per indexing chunk.
	ChunkSize int `mapstructure:"chunk_size" default:"1000"`
	// BatchSize bounds the number of commands per committed store batch.
	BatchSize int `mapstructure:"batch_size" default:"500"`
}

func (c Config) workers() int {
	if c.Workers <= 0 {
		return 8
	}
	return c.Workers
}

func (c Config) chunkSize() int {
	if c.ChunkSize <= 0 {
		return 1000
	}
	return c.ChunkSize
}

func (c Config) batchSize() int {
	if c.BatchSize <= 0 {
		return 500
	}
	return c.BatchSize
}
