package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/cloudybookclub/catalog-service/internal/model"
	"github.com/cloudybookclub/catalog-service/internal/repository"
)

type Service struct {
	log   *zap.Logger
	books repository.BookRepository
	users repository.UserRepository
}

func NewService(books repository.BookRepository, users repository.UserRepository, log *zap.Logger) *Service {
	return &Service{
		log:   log,
		books: books,
		users: users,
	}
}

func (s *Service) ListBooks(ctx context.Context, page, size int) (model.ListBooks, error) {
	return s.books.ListAll(ctx, page, size)
}

func (s *Service) ListBooksByAuthor(ctx context.Context, author string, page, size int) (model.ListBooks, error) {
	return s.books.ListByAuthor(ctx, author, page, size)
}

func (s *Service) ListBooksByGenre(ctx context.Context, genre string, page, size int) (model.ListBooks, error) {
	return s.books.ListByGenre(ctx, genre, page, size)
}

func (s *Service) ListBooksByRating(ctx context.Context, rating model.Rating, page, size int) (model.ListBooks, error) {
	return s.books.ListByRating(ctx, rating, page, size)
}

func (s *Service) ListBooksByReader(ctx context.Context, reader string, page, size int) (model.ListBooks, error) {
	return s.books.ListByReader(ctx, reader, page, size)
}

func (s *Service) GetBook(ctx context.Context, id string) (model.Book, error) {
	return s.books.Get(ctx, id)
}

func (s *Service) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	return s.books.Insert(ctx, book)
}

func (s *Service) DeleteBook(ctx context.Context, id string) error {
	return s.books.Delete(ctx, id)
}

func (s *Service) CountBooksByGenre(ctx context.Context) ([]model.BooksByGenre, error) {
	return s.books.CountByGenre(ctx)
}

func (s *Service) CountBooksByAuthor(ctx context.Context) ([]model.BooksByAuthor, error) {
	return s.books.CountByAuthor(ctx)
}

func (s *Service) FindUsersByAuthID(ctx context.Context, serviceID, provider string) ([]model.User, error) {
	return s.users.FindByAuthID(ctx, serviceID, provider)
}

func (s *Service) UpdateUserRoles(ctx context.Context, roles model.ClientRoles) (int64, error) {
	return s.users.UpdateUserRoles(ctx, roles)
}
