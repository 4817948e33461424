package config

// StorageConfig contains document blob storage configuration.
type StorageConfig struct {
	// FilesDir is the root directory for stored document files.
	FilesDir string `env:"STORAGE_FILES_DIR" envDefault:"./data/files"`

	// FilesBaseURL is the URL path prefix under which stored files are
	// served. Download redirects point here.
	FilesBaseURL string `env:"STORAGE_FILES_BASE_URL" envDefault:"/files"`
}
