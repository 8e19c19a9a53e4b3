package store

import (
	"time"

	"github.com/google/uuid"
)

// Asset is an uploaded binary (image, font, icon) referenced by templates
// and style sheets through its ID.
type Asset struct {
	ID      string    `msgpack:"id"`
	Name    string    `msgpack:"name"`
	MIME    string    `msgpack:"mime"`
	Data    []byte    `msgpack:"data"`
	Created time.Time `msgpack:"created"`
}

// PutAsset stores an asset, assigning an ID and creation time on first
// save. It returns the asset's ID.
func (s *Store) PutAsset(a *Asset) (string, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
		a.Created = time.Now().UTC()
	}
	if err := s.put(bucketAssets, a.ID, a); err != nil {
		return "", err
	}
	return a.ID, nil
}

// GetAsset loads the asset with the given ID; ok is false when absent.
func (s *Store) GetAsset(id string) (*Asset, bool, error) {
	var a Asset
	ok, err := s.get(bucketAssets, id, &a)
	if !ok || err != nil {
		return nil, false, err
	}
	return &a, true, nil
}

// DeleteAsset removes the asset with the given ID.
func (s *Store) DeleteAsset(id string) error {
	return s.delete(bucketAssets, id)
}

// ListAssets returns every stored asset ID in key order.
func (s *Store) ListAssets() ([]string, error) {
	return s.keys(bucketAssets)
}
