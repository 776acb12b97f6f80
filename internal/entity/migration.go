package entity

// Migration records the migrators which already ran on the database.
type Migration struct {
	Version string `gorm:"primarykey"`
}
