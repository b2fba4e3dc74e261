package googlebooks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cloudybookclub/catalog-service/config"
)

func testConfig(baseURL string) config.GoogleBooks {
	return config.GoogleBooks{
		SearchURL:      baseURL + "/books/v1/volumes?q=",
		GetByIDURL:     baseURL + "/books/v1/volumes/",
		CountryCode:    "country=GB",
		ConnectTimeout: time.Second,
		ReadTimeout:    5 * time.Second,
	}
}

func TestService_SearchByTitle_EncodesQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalItems":1,"items":[{"id":"abc","volumeInfo":{"title":"Tom & Jerry"}}]}`))
	}))
	defer srv.Close()

	svc := NewService(zap.NewExample(), testConfig(srv.URL))

	result, err := svc.SearchByTitle(context.Background(), "tom & jerry")
	require.NoError(t, err)
	require.Equal(t, "q=tom+%26+jerry&country=GB", gotQuery)
	require.Equal(t, 1, result.TotalItems)
	require.Len(t, result.Items, 1)
	require.Equal(t, "abc", result.Items[0].ID)
}

func TestService_SearchByTitle_EncodeFailureUsesRawTitle(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalItems":0,"items":[]}`))
	}))
	defer srv.Close()

	orig := encodeQuery
	encodeQuery = func(string) (string, error) {
		return "", errors.New("encode blew up")
	}
	defer func() { encodeQuery = orig }()

	svc := NewService(zap.NewExample(), testConfig(srv.URL))

	// The encode failure must never surface; the raw title goes on the wire.
	result, err := svc.SearchByTitle(context.Background(), "tom&jerry")
	require.NoError(t, err)
	require.Equal(t, "q=tom&jerry&country=GB", gotQuery)
	require.Equal(t, 0, result.TotalItems)
}

func TestService_SearchByTitle_RemoteErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := NewService(zap.NewExample(), testConfig(srv.URL))

	_, err := svc.SearchByTitle(context.Background(), "anything")
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 503")
}

func TestService_GetByID(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"MQehAgAAQBAJ","volumeInfo":{"title":"The Martian","authors":["Andy Weir"]}}`))
	}))
	defer srv.Close()

	svc := NewService(zap.NewExample(), testConfig(srv.URL))

	item, err := svc.GetByID(context.Background(), "MQehAgAAQBAJ")
	require.NoError(t, err)
	require.Equal(t, "/books/v1/volumes/MQehAgAAQBAJ/", gotPath)
	require.Equal(t, "country=GB", gotQuery)
	require.Equal(t, "MQehAgAAQBAJ", item.ID)
	require.Equal(t, "The Martian", item.VolumeInfo.Title)
}

func TestService_GetByID_ErrorStatusPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":404,"message":"The volume ID could not be found."}}`))
	}))
	defer srv.Close()

	svc := NewService(zap.NewExample(), testConfig(srv.URL))

	item, err := svc.GetByID(context.Background(), "nope")
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 404")
	require.Empty(t, item.ID)
}

func TestService_GetByID_TransportErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	svc := NewService(zap.NewExample(), testConfig(srv.URL))

	_, err := svc.GetByID(context.Background(), "MQehAgAAQBAJ")
	require.Error(t, err)
}
