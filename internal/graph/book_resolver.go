package graph

import (
	"bookgraph/internal/book"
)

type BookResolver struct {
	book book.Book
}

func (r *BookResolver) ID() *int32 {
	id := r.book.ID
	return &id
}

func (r *BookResolver) Title() *string {
	return r.book.Title
}

// Author is never null; an author with no known attributes still resolves
// to an object with null fields.
func (r *BookResolver) Author() *AuthorResolver {
	return &AuthorResolver{author: r.book.Author}
}

func (r *BookResolver) Pages() *int32 {
	return r.book.Pages
}

func (r *BookResolver) Year() *int32 {
	return r.book.Year
}

func (r *BookResolver) Genre() *string {
	return r.book.Genre
}

type AuthorResolver struct {
	author book.Author
}

func (r *AuthorResolver) Name() *string {
	return r.author.Name
}

func (r *AuthorResolver) Country() *string {
	return r.author.Country
}
