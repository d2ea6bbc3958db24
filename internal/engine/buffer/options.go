package buffer

// DefaultLargeFileThreshold is the span size in bytes above which
// newline counts are left unknown instead of scanned.
const DefaultLargeFileThreshold = 16 << 20 // 16 MiB

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithLargeFileThreshold sets the span size above which newline counts
// are not scanned. Non-positive values keep the default.
func WithLargeFileThreshold(bytes int) Option {
	return func(b *Buffer) {
		if bytes > 0 {
			b.largeThreshold = bytes
		}
	}
}
