package entities

// Book is a single catalog entry. The catalog is persisted as one JSON
// document, so there are no per-row database tags here.
type Book struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Category  string `json:"category"`
	Language  string `json:"language"`
	Available bool   `json:"available"`
	Cover     string `json:"cover"`
}

// DefaultCatalog is the fixed six-book catalog the portal is seeded with on
// first login. Book 5 starts checked out.
func DefaultCatalog() []Book {
	return []Book{
		{ID: 1, Title: "Foundations of Algorithms", Author: "C. Levit", Category: "Computer Science", Language: "English", Available: true, Cover: "https://images.unsplash.com/photo-1519681393784-d120267933ba?q=80&w=800&auto=format&fit=crop"},
		{ID: 2, Title: "Cognitive Science Explained", Author: "L. Hartman", Category: "Psychology", Language: "English", Available: true, Cover: "https://images.unsplash.com/photo-1528207776546-365bb710ee93?q=80&w=800&auto=format&fit=crop"},
		{ID: 3, Title: "Principles of Engineering Physics", Author: "R. Mehta", Category: "Engineering", Language: "English", Available: true, Cover: "https://images.unsplash.com/photo-1509223197845-458d87318791?q=80&w=800&auto=format&fit=crop"},
		{ID: 4, Title: "Kannada Literature", Author: "S. Rao", Category: "Literature", Language: "Kannada", Available: true, Cover: "https://images.unsplash.com/photo-1518933165971-611dbc9c412d?q=80&w=800&auto=format&fit=crop"},
		{ID: 5, Title: "Data Science Essentials", Author: "C. Levit", Category: "Computer Science", Language: "English", Available: false, Cover: "https://images.unsplash.com/photo-1555066931-4365d14bab8c?q=80&w=800&auto=format&fit=crop"},
		{ID: 6, Title: "Introduction to Sociology", Author: "B. Nair", Category: "Social Sciences", Language: "English", Available: true, Cover: "https://images.unsplash.com/photo-1529070538774-1843cb3265df?q=80&w=800&auto=format&fit=crop"},
	}
}
