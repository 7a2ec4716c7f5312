// Package config provides configuration management for the indexer.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, mode)
//   - Store: key/value store connection details
//   - ObjStore: S3/MinIO credentials and bucket settings for remote corpora
//   - Corpus: locations of the corpus source files
//   - Indexer: worker count and batch sizes for the indexing passes
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
