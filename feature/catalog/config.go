package catalog

// Config holds the locations of the corpus source files.
type Config struct {
	// Source selects where the corpus is read from: dir or bucket.
	Source string `mapstructure:"source" default:"dir"`
	// DataDir is the local directory holding the bulk files.
	DataDir string `mapstructure:"data_dir" default:"./data"`
	// AllPrintingsFile is the card corpus dump.
	AllPrintingsFile string `mapstructure:"all_printings_file" default:"AllPrintings.json"`
	// SkusFile is the Tcgplayer SKU dump, keyed by card uuid.
	SkusFile string `mapstructure:"skus_file" default:"TcgplayerSkus.json"`
	// PricesFile is the cleaned price record dump.
	PricesFile string `mapstructure:"prices_file" default:"TcgplayerPrices.json"`
	// DecksDir is the directory (or object prefix) holding deck dumps.
	DecksDir string `mapstructure:"decks_dir" default:"decks"`
}

const (
	// SourceDir reads the corpus from the local filesystem.
	SourceDir = "dir"
	// SourceBucket reads the corpus from object storage.
	SourceBucket = "bucket"
)
