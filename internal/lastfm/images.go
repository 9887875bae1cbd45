package lastfm

// ImageSize names a Last.fm image variant.
type ImageSize string

const (
	SizeSmall      ImageSize = "small"
	SizeMedium     ImageSize = "medium"
	SizeLarge      ImageSize = "large"
	SizeExtraLarge ImageSize = "extralarge"
	SizeMega       ImageSize = "mega"
)

// Variants are listed smallest first, so the tier is the index.
var sizeIndex = map[ImageSize]int{
	SizeSmall:      0,
	SizeMedium:     1,
	SizeLarge:      2,
	SizeExtraLarge: 3,
	SizeMega:       4,
}

// SelectImage returns the URL of the requested size. When the list is
// shorter than the tier, the largest available variant is used instead.
// Unknown sizes are treated as SizeLarge.
func SelectImage(images []Image, size ImageSize) (string, bool) {
	if len(images) == 0 {
		return "", false
	}

	idx, ok := sizeIndex[size]
	if !ok {
		idx = sizeIndex[SizeLarge]
	}
	if idx >= len(images) {
		idx = len(images) - 1
	}

	u := images[idx].URL
	return u, u != ""
}
