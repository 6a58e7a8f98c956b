package config

import (
	"log"

	"booklend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedBooks(); err != nil {
		return err
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedBooks seeds the starter catalog. Skipped entirely when any book
// already exists so a restart never duplicates rows.
func (s *Seeder) seedBooks() error {
	var count int64
	if err := s.db.Model(&models.Book{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	books := []models.Book{
		{Title: "The Lord of the Rings", Author: "J.R.R. Tolkien", Quantity: 5},
		{Title: "The Hitchhiker's Guide to the Galaxy", Author: "Douglas Adams", Quantity: 3},
		{Title: "Dune", Author: "Frank Herbert", Quantity: 4},
		{Title: "1984", Author: "George Orwell", Quantity: 2},
		{Title: "Brave New World", Author: "Aldous Huxley", Quantity: 1},
		{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Quantity: 3},
		{Title: "To Kill a Mockingbird", Author: "Harper Lee", Quantity: 0},
		{Title: "Pride and Prejudice", Author: "Jane Austen", Quantity: 5},
		{Title: "The Catcher in the Rye", Author: "J.D. Salinger", Quantity: 2},
		{Title: "Fahrenheit 451", Author: "Ray Bradbury", Quantity: 3},
		{Title: "Moby Dick", Author: "Herman Melville", Quantity: 1},
	}

	// Status is filled in by the Book BeforeSave hook
	if err := s.db.Create(&books).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded %d books", len(books))
	return nil
}
