package store

import "time"

// StyleSheet is the persisted style state for one selector: the property
// values the panels have published for it.
type StyleSheet struct {
	Selector string            `msgpack:"selector"`
	Props    map[string]string `msgpack:"props"`
	Updated  time.Time         `msgpack:"updated"`
}

// PutStyle saves a style sheet under its selector, stamping Updated.
func (s *Store) PutStyle(sheet *StyleSheet) error {
	if sheet.Selector == "" {
		return errEmptyKey("style selector")
	}
	sheet.Updated = time.Now().UTC()
	return s.put(bucketStyles, sheet.Selector, sheet)
}

// GetStyle loads the style sheet for selector; ok is false when absent.
func (s *Store) GetStyle(selector string) (*StyleSheet, bool, error) {
	var sheet StyleSheet
	ok, err := s.get(bucketStyles, selector, &sheet)
	if !ok || err != nil {
		return nil, false, err
	}
	return &sheet, true, nil
}

// DeleteStyle removes the style sheet for selector.
func (s *Store) DeleteStyle(selector string) error {
	return s.delete(bucketStyles, selector)
}

// ListStyles returns every stored selector in key order.
func (s *Store) ListStyles() ([]string, error) {
	return s.keys(bucketStyles)
}

// MergeStyle overlays props onto the stored sheet for selector, creating
// the sheet if needed.
func (s *Store) MergeStyle(selector string, props map[string]string) error {
	sheet, ok, err := s.GetStyle(selector)
	if err != nil {
		return err
	}
	if !ok {
		sheet = &StyleSheet{Selector: selector, Props: map[string]string{}}
	}
	for prop, value := range props {
		sheet.Props[prop] = value
	}
	return s.PutStyle(sheet)
}
