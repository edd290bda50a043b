package rank

const (
	seedMultiplier = 31

	likeCountBase   = 120
	likeCountSpread = 880
)

// Seed is a polynomial string hash (h = h*31 + b over the UTF-8 bytes).
func Seed(s string) uint32 {
	var h uint32
	for i := range len(s) {
		h = h*seedMultiplier + uint32(s[i])
	}

	return h
}

// LikeCount is the cosmetic like counter shown next to an item.
func LikeCount(seed uint32) int {
	return likeCountBase + int(seed%likeCountSpread)
}
