package feed

import "strconv"

// PostsPerPage taille fixe des pages de feed
const PostsPerPage = 10

// ParsePage lit un numéro de page ; absent ou invalide, on retombe sur la page 1
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// PageOffset calcule l'offset correspondant à une page
func PageOffset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * PostsPerPage
}
