package domain

// Compressor turns a raw dump file into the archive that gets uploaded.
type Compressor interface {
	Compress(sourcePath, destPath string) error
}
