package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/cloudybookclub/catalog-service/internal/errs"
	"github.com/cloudybookclub/catalog-service/internal/model"
)

type BookRepository interface {
	ListAll(ctx context.Context, page, size int) (model.ListBooks, error)
	ListByAuthor(ctx context.Context, author string, page, size int) (model.ListBooks, error)
	ListByGenre(ctx context.Context, genre string, page, size int) (model.ListBooks, error)
	ListByRating(ctx context.Context, rating model.Rating, page, size int) (model.ListBooks, error)
	ListByReader(ctx context.Context, reader string, page, size int) (model.ListBooks, error)
	Get(ctx context.Context, id string) (model.Book, error)
	Insert(ctx context.Context, book model.Book) (model.Book, error)
	Delete(ctx context.Context, id string) error
	CountByGenre(ctx context.Context) ([]model.BooksByGenre, error)
	CountByAuthor(ctx context.Context) ([]model.BooksByAuthor, error)
}

type bookRepository struct {
	col *mongo.Collection
	log *zap.Logger
}

func NewBookRepository(db *mongo.Database, log *zap.Logger) *bookRepository {
	return &bookRepository{
		col: db.Collection(BooksCollection),
		log: log.Named("book-repo"),
	}
}

// listFindOptions builds the find options every book query shares: ordered
// by creation time descending, zero-based page, skip = page*size. A size of
// zero means no paging at all.
func listFindOptions(page, size int) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: "createdDateTime", Value: -1}})
	if size > 0 {
		opts = opts.SetSkip(int64(page) * int64(size)).SetLimit(int64(size))
	}
	return opts
}

// prepareBook fills in the creation defaults. An already-set id or
// createdDateTime is never overwritten: the creation timestamp is immutable
// once assigned.
func prepareBook(book model.Book) model.Book {
	if book.ID == "" {
		book.ID = uuid.NewString()
	}
	if book.CreatedDateTime.IsZero() {
		book.CreatedDateTime = time.Now().UTC()
	}
	return book
}

// list runs filter as a paged query. An out-of-range page is an empty,
// non-error result carrying the real total.
func (r *bookRepository) list(ctx context.Context, filter bson.M, page, size int) (model.ListBooks, error) {
	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return model.ListBooks{}, errors.Wrap(err, "count books")
	}

	cur, err := r.col.Find(ctx, filter, listFindOptions(page, size))
	if err != nil {
		r.log.Error("list books", zap.Any("filter", filter), zap.Error(err))
		return model.ListBooks{}, errors.Wrap(err, "find books")
	}

	books := make([]model.Book, 0)
	if err := cur.All(ctx, &books); err != nil {
		return model.ListBooks{}, errors.Wrap(err, "decode books")
	}

	return model.ListBooks{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: total,
		},
		Items: books,
	}, nil
}

func (r *bookRepository) ListAll(ctx context.Context, page, size int) (model.ListBooks, error) {
	return r.list(ctx, bson.M{}, page, size)
}

func (r *bookRepository) ListByAuthor(ctx context.Context, author string, page, size int) (model.ListBooks, error) {
	return r.list(ctx, bson.M{"author": author}, page, size)
}

func (r *bookRepository) ListByGenre(ctx context.Context, genre string, page, size int) (model.ListBooks, error) {
	return r.list(ctx, bson.M{"genre": genre}, page, size)
}

func (r *bookRepository) ListByRating(ctx context.Context, rating model.Rating, page, size int) (model.ListBooks, error) {
	return r.list(ctx, bson.M{"rating": rating}, page, size)
}

func (r *bookRepository) ListByReader(ctx context.Context, reader string, page, size int) (model.ListBooks, error) {
	return r.list(ctx, bson.M{"createdBy.fullName": reader}, page, size)
}

func (r *bookRepository) Get(ctx context.Context, id string) (model.Book, error) {
	var book model.Book
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&book); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, errors.Wrap(err, "get book")
	}
	return book, nil
}

func (r *bookRepository) Insert(ctx context.Context, book model.Book) (model.Book, error) {
	book = prepareBook(book)
	if _, err := r.col.InsertOne(ctx, book); err != nil {
		return model.Book{}, errors.Wrap(err, "insert book")
	}
	return book, nil
}

func (r *bookRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "delete book")
	}
	if res.DeletedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *bookRepository) CountByGenre(ctx context.Context) ([]model.BooksByGenre, error) {
	pipe := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$genre"},
			{Key: "countOfBooks", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "countOfBooks", Value: -1}}}},
	}
	cur, err := r.col.Aggregate(ctx, pipe)
	if err != nil {
		return nil, errors.Wrap(err, "count by genre")
	}
	var out []model.BooksByGenre
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(err, "decode genre counts")
	}
	return out, nil
}

func (r *bookRepository) CountByAuthor(ctx context.Context) ([]model.BooksByAuthor, error) {
	pipe := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$author"},
			{Key: "countOfBooks", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "countOfBooks", Value: -1}}}},
	}
	cur, err := r.col.Aggregate(ctx, pipe)
	if err != nil {
		return nil, errors.Wrap(err, "count by author")
	}
	var out []model.BooksByAuthor
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(err, "decode author counts")
	}
	return out, nil
}
