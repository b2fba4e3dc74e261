package googlebooks

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/cloudybookclub/catalog-service/config"
	"github.com/cloudybookclub/catalog-service/internal/model"
)

// Service is a synchronous client for the Google Books API. No retry, no
// cache, no breaker: every remote failure is logged and surfaced unchanged.
type Service struct {
	log    *zap.Logger
	client *http.Client
	cfg    config.GoogleBooks
}

// encodeQuery is a seam for the encode-failure fallback. url.QueryEscape
// itself cannot fail, so the error path only fires when tests stub this out,
// but the contract stands: an encode failure degrades to the raw title and
// is never surfaced.
var encodeQuery = func(s string) (string, error) {
	return url.QueryEscape(s), nil
}

func NewService(log *zap.Logger, cfg config.GoogleBooks) *Service {
	return &Service{
		log: log.Named("googlebooks"),
		client: &http.Client{
			Timeout: cfg.ReadTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: cfg.ConnectTimeout}).DialContext,
			},
		},
		cfg: cfg,
	}
}

func (s *Service) SearchByTitle(ctx context.Context, title string) (model.BookSearchResult, error) {
	encoded, err := encodeQuery(title)
	if err != nil {
		s.log.Error("unable to encode query string - using as is", zap.String("title", title), zap.Error(err))
		encoded = title
	}

	u := s.cfg.SearchURL + encoded + "&" + s.cfg.CountryCode
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return model.BookSearchResult{}, errors.Wrap(err, "search request")
	}
	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Error("rest client error calling google books api", zap.Error(err))
		return model.BookSearchResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		err := errors.Errorf("google books api search: status %d", resp.StatusCode)
		s.log.Error("error calling google books api", zap.Error(err))
		return model.BookSearchResult{}, err
	}

	var result model.BookSearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return model.BookSearchResult{}, errors.Wrap(err, "decode search result")
	}
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (model.Item, error) {
	u := s.cfg.GetByIDURL + id + "/?" + s.cfg.CountryCode
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return model.Item{}, errors.Wrap(err, "get by id request")
	}
	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Error("rest client error calling google books api", zap.Error(err))
		return model.Item{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		payload, _ := io.ReadAll(resp.Body) //nolint:errcheck
		err := errors.Errorf("google books api get by id: status %d", resp.StatusCode)
		s.log.Error("error calling google books api",
			zap.ByteString("payload", payload),
			zap.Error(err))
		return model.Item{}, err
	}

	var item model.Item
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return model.Item{}, errors.Wrap(err, "decode item")
	}
	return item, nil
}
