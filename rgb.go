package termpix

// RGB represents a color in the RGB color space with 8-bit channels,
// where each channel ranges from 0 to 255. It is used both for arbitrary
// image colors and for the restricted set of palette colors.
type RGB struct {
	R, G, B uint8
}

// distanceSq returns the squared Euclidean distance between two RGB
// colors. Squared distance preserves ordering, so nearest-neighbor
// selection never needs the square root.
func (c RGB) distanceSq(other RGB) int {
	dr := int(c.R) - int(other.R)
	dg := int(c.G) - int(other.G)
	db := int(c.B) - int(other.B)
	return dr*dr + dg*dg + db*db
}
