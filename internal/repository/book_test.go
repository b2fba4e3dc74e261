package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/cloudybookclub/catalog-service/internal/model"
)

func TestListFindOptions(t *testing.T) {
	t.Parallel()

	var tests = []struct {
		name       string
		page, size int
		wantSkip   int64
		wantLimit  int64
		unpaged    bool
	}{
		{name: "first page", page: 0, size: 10, wantSkip: 0, wantLimit: 10},
		{name: "third page", page: 2, size: 10, wantSkip: 20, wantLimit: 10},
		{name: "odd size", page: 3, size: 7, wantSkip: 21, wantLimit: 7},
		{name: "zero size is unpaged", page: 5, size: 0, unpaged: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opts := listFindOptions(tt.page, tt.size)

			// Every variant sorts by creation time descending.
			require.Equal(t, bson.D{{Key: "createdDateTime", Value: -1}}, opts.Sort)

			if tt.unpaged {
				require.Nil(t, opts.Skip)
				require.Nil(t, opts.Limit)
				return
			}
			require.NotNil(t, opts.Skip)
			require.NotNil(t, opts.Limit)
			require.Equal(t, tt.wantSkip, *opts.Skip)
			require.Equal(t, tt.wantLimit, *opts.Limit)
		})
	}
}

func TestPrepareBook(t *testing.T) {
	t.Parallel()

	fresh := prepareBook(model.Book{Title: "The Martian"})
	require.NotEmpty(t, fresh.ID)
	require.False(t, fresh.CreatedDateTime.IsZero())

	// An already-stamped book keeps its id and creation time.
	created := time.Date(2024, 1, 5, 10, 15, 30, 0, time.UTC)
	kept := prepareBook(model.Book{
		ID:              "f8e7c9a2-1b4d-4f6a-9c3e-2d5b8a7f0c11",
		Title:           "The Martian",
		CreatedDateTime: created,
	})
	require.Equal(t, "f8e7c9a2-1b4d-4f6a-9c3e-2d5b8a7f0c11", kept.ID)
	require.Equal(t, created, kept.CreatedDateTime)

	// Stamping twice never reassigns.
	again := prepareBook(fresh)
	require.Equal(t, fresh.ID, again.ID)
	require.Equal(t, fresh.CreatedDateTime, again.CreatedDateTime)
}
