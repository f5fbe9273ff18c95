package group

type Group struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:200" json:"title"`
	Slug        string `gorm:"size:40;uniqueIndex" json:"slug"`
	Description string `json:"description"`
}
