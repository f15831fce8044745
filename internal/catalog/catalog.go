package catalog

import (
	"bookgraph/internal/book"
)

// Catalog is the ordered, read-only collection of books served by the API.
// It is safe for concurrent use because nothing mutates it after New.
type Catalog struct {
	books []book.Book
}

// New builds a catalog from books, keeping their order. The slice is copied
// so later changes by the caller are not observed.
func New(books []book.Book) *Catalog {
	owned := make([]book.Book, len(books))
	copy(owned, books)
	return &Catalog{books: owned}
}

// Books returns every book in load order.
func (c *Catalog) Books() []book.Book {
	out := make([]book.Book, len(c.books))
	copy(out, c.books)
	return out
}

// FindByID returns the first book whose ID equals id.
// Duplicate ids are not rejected; the earliest entry wins.
func (c *Catalog) FindByID(id int32) (book.Book, bool) {
	for _, b := range c.books {
		if b.ID == id {
			return b, true
		}
	}
	return book.Book{}, false
}

// Len reports how many books were loaded, duplicates included.
func (c *Catalog) Len() int {
	return len(c.books)
}

// DuplicateIDs lists ids that occur more than once, in order of first
// repetition.
func (c *Catalog) DuplicateIDs() []int32 {
	seen := make(map[int32]int, len(c.books))
	var dups []int32
	for _, b := range c.books {
		seen[b.ID]++
		if seen[b.ID] == 2 {
			dups = append(dups, b.ID)
		}
	}
	return dups
}
