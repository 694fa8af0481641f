package ports

// ImageLibrary copies user-selected image files into the application's
// storage directory and hands back the stored path that gets persisted in
// the images table. The persistence core treats that path as opaque.
type ImageLibrary interface {
	Import(sourcePath string) (string, error)
	Remove(storedPath string) error
}
