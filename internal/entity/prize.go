package entity

const (
	MinPrizeRarity = 1
	MaxPrizeRarity = 5
)

type Prize struct {
	Base

	Name        string `gorm:"index"`
	Description string
	ImageURL    string
	Value       int64
	Rarity      int
	IsActive    bool `gorm:"index"`
}
