package group

import "github.com/MuhammadMLV/Yatube-Back/internal/database"

// GetBySlug récupère un groupe par son slug
func GetBySlug(slug string) (*Group, error) {
	var g Group
	if err := database.DB.Where("slug = ?", slug).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}
