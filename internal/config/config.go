package config

import "sync"

// PreviewSettings holds preview rendering configuration
type PreviewSettings struct {
	mu     sync.RWMutex
	size   int // in pixels, square
	zoom   int // source blocks per pixel
	shaded bool
}

var globalPreviewSettings = &PreviewSettings{
	size:   512, // default value
	zoom:   1,
	shaded: false,
}

// GetPreviewSize returns the preview edge length in pixels
func GetPreviewSize() int {
	globalPreviewSettings.mu.RLock()
	defer globalPreviewSettings.mu.RUnlock()
	return globalPreviewSettings.size
}

// SetPreviewSize sets the preview edge length in pixels
func SetPreviewSize(size int) {
	globalPreviewSettings.mu.Lock()
	defer globalPreviewSettings.mu.Unlock()

	// Clamp to reasonable values
	if size < 64 {
		size = 64
	}
	if size > 4096 {
		size = 4096
	}

	globalPreviewSettings.size = size
}

// GetPreviewZoom returns how many source blocks one preview pixel covers
func GetPreviewZoom() int {
	globalPreviewSettings.mu.RLock()
	defer globalPreviewSettings.mu.RUnlock()
	return globalPreviewSettings.zoom
}

// SetPreviewZoom sets how many source blocks one preview pixel covers
func SetPreviewZoom(zoom int) {
	globalPreviewSettings.mu.Lock()
	defer globalPreviewSettings.mu.Unlock()

	if zoom < 1 {
		zoom = 1
	}
	if zoom > 64 {
		zoom = 64
	}

	globalPreviewSettings.zoom = zoom
}

// GetPreviewShaded returns whether previews darken pixels by feature distance
func GetPreviewShaded() bool {
	globalPreviewSettings.mu.RLock()
	defer globalPreviewSettings.mu.RUnlock()
	return globalPreviewSettings.shaded
}

// SetPreviewShaded sets distance shading
func SetPreviewShaded(enabled bool) {
	globalPreviewSettings.mu.Lock()
	defer globalPreviewSettings.mu.Unlock()
	globalPreviewSettings.shaded = enabled
}
