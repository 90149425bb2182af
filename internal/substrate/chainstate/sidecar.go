package chainstate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/ratelimit"
)

// sidecar is a client of the Substrate API Sidecar REST service.
type sidecar struct {
	base    *url.URL
	http    *http.Client
	limiter ratelimit.Limiter
}

type storageResponse struct {
	Value json.RawMessage `json:"value"`
}

// get decodes the JSON body of GET path into out.
func (s *sidecar) get(ctx context.Context, path string, query url.Values, out any) error {
	s.limiter.Take()

	u := s.base.JoinPath(path)
	u.RawQuery = query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("request %s: status %d: %s", path, resp.StatusCode, bytes.TrimSpace(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// storage reads a pallet storage item at the block. It reports false when the value is None.
func (s *sidecar) storage(ctx context.Context, at, pallet, item string, out any, keys ...string) (bool, error) {
	query := url.Values{"at": {at}}
	for _, k := range keys {
		query.Add("keys[]", k)
	}

	var resp storageResponse
	if err := s.get(ctx, "pallets/"+pallet+"/storage/"+item, query, &resp); err != nil {
		return false, err
	}
	if len(resp.Value) == 0 || bytes.Equal(resp.Value, []byte("null")) {
		return false, nil
	}
	if err := json.Unmarshal(resp.Value, out); err != nil {
		return false, fmt.Errorf("decode %s.%s value: %w", pallet, item, err)
	}
	return true, nil
}

// constant reads a pallet constant at the block.
func (s *sidecar) constant(ctx context.Context, at, pallet, name string, out any) error {
	var resp storageResponse
	if err := s.get(ctx, "pallets/"+pallet+"/consts/"+name, url.Values{"at": {at}}, &resp); err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Value, out); err != nil {
		return fmt.Errorf("decode %s.%s constant: %w", pallet, name, err)
	}
	return nil
}
