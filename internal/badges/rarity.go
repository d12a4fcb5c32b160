package badges

// Rarity represents how hard a badge is to earn.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AllRarities returns all rarities in order from lowest to highest.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}
}

// DisplayName returns a human-readable label for the rarity.
func (r Rarity) DisplayName() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	default:
		return string(r)
	}
}

// Rank orders rarities; unknown values rank below common.
func (r Rarity) Rank() int {
	for i, known := range AllRarities() {
		if r == known {
			return i
		}
	}
	return -1
}

// StreakRarity returns the rarity of the streak badge for a streak length.
func StreakRarity(days int) Rarity {
	switch {
	case days >= 100:
		return RarityLegendary
	case days >= 30:
		return RarityEpic
	case days >= 7:
		return RarityRare
	default:
		return RarityCommon
	}
}
