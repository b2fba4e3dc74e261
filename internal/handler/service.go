package handler

import (
	"context"

	"github.com/cloudybookclub/catalog-service/internal/model"
	"github.com/cloudybookclub/catalog-service/internal/service"
	"github.com/cloudybookclub/catalog-service/internal/service/googlebooks"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CatalogService interface {
	ListBooks(ctx context.Context, page, size int) (model.ListBooks, error)
	ListBooksByAuthor(ctx context.Context, author string, page, size int) (model.ListBooks, error)
	ListBooksByGenre(ctx context.Context, genre string, page, size int) (model.ListBooks, error)
	ListBooksByRating(ctx context.Context, rating model.Rating, page, size int) (model.ListBooks, error)
	ListBooksByReader(ctx context.Context, reader string, page, size int) (model.ListBooks, error)
	GetBook(ctx context.Context, id string) (model.Book, error)
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	DeleteBook(ctx context.Context, id string) error
	CountBooksByGenre(ctx context.Context) ([]model.BooksByGenre, error)
	CountBooksByAuthor(ctx context.Context) ([]model.BooksByAuthor, error)
	FindUsersByAuthID(ctx context.Context, serviceID, provider string) ([]model.User, error)
	UpdateUserRoles(ctx context.Context, roles model.ClientRoles) (int64, error)
}

var _ CatalogService = (*service.Service)(nil)

type GoogleBooksService interface {
	SearchByTitle(ctx context.Context, title string) (model.BookSearchResult, error)
	GetByID(ctx context.Context, id string) (model.Item, error)
}

var _ GoogleBooksService = (*googlebooks.Service)(nil)
