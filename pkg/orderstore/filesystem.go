package orderstore

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/modorder/pkg/errors"
	"github.com/arthur-debert/modorder/pkg/filesystem"
	"github.com/arthur-debert/modorder/pkg/loadorder"
	"github.com/arthur-debert/modorder/pkg/logging"
	"github.com/arthur-debert/modorder/pkg/paths"
	"gopkg.in/yaml.v3"
)

type filesystemStore struct {
	fs  filesystem.FS
	dir string
}

// New creates a Store keeping one file per order in dir.
func New(fs filesystem.FS, dir string) Store {
	return &filesystemStore{
		fs:  fs,
		dir: dir,
	}
}

func (s *filesystemStore) path(name string) string {
	return filepath.Join(s.dir, paths.OrderFileName(name))
}

func (s *filesystemStore) List() ([]string, error) {
	orders, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(orders))
	for i, o := range orders {
		names[i] = o.Name
	}
	return names, nil
}

func (s *filesystemStore) Load(name string) (*loadorder.LoadOrder, error) {
	return s.read(s.path(name), name)
}

func (s *filesystemStore) LoadAll() ([]*loadorder.LoadOrder, error) {
	logger := logging.GetLogger("orderstore")

	entries, err := s.fs.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to list saved orders").
			WithDetail("dir", s.dir)
	}

	var orders []*loadorder.LoadOrder
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), paths.OrderFileExt) {
			continue
		}
		o, err := s.read(filepath.Join(s.dir, entry.Name()), paths.OrderNameFromFile(entry.Name()))
		if err != nil {
			logger.Warn().Err(err).Str("file", entry.Name()).Msg("Skipping unreadable saved order")
			continue
		}
		orders = append(orders, o)
	}

	sort.Slice(orders, func(i, j int) bool { return orders[i].Name < orders[j].Name })
	return orders, nil
}

func (s *filesystemStore) read(path, name string) (*loadorder.LoadOrder, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrOrderNotFound, "no saved order named %q", name).
				WithDetail("path", path)
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to read saved order").
			WithDetail("path", path)
	}

	o := loadorder.New(name)
	if err := yaml.Unmarshal(data, o); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to parse saved order").
			WithDetail("path", path)
	}
	if o.Name == "" {
		o.Name = name
	}
	return o, nil
}

func (s *filesystemStore) Save(order *loadorder.LoadOrder) error {
	logger := logging.GetLogger("orderstore")

	if strings.TrimSpace(order.Name) == "" {
		return errors.New(errors.ErrInvalidInput, "cannot save an order without a name")
	}
	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to create orders directory").
			WithDetail("dir", s.dir)
	}

	data, err := yaml.Marshal(order)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode saved order")
	}

	target := s.path(order.Name)
	if existing, err := s.read(target, order.Name); err == nil && existing.Name != order.Name {
		return errors.Newf(errors.ErrInvalidInput, "order %q would overwrite order %q", order.Name, existing.Name).
			WithDetail("path", target)
	}
	tmp := target + ".tmp"
	if err := s.fs.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write saved order").
			WithDetail("path", tmp)
	}
	if err := s.fs.Rename(tmp, target); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to replace saved order").
			WithDetail("path", target)
	}

	logger.Debug().Str("order", order.Name).Int("entries", order.Len()).Str("path", target).Msg("Saved order")
	return nil
}

func (s *filesystemStore) Delete(name string) error {
	path := s.path(name)
	if err := s.fs.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrOrderNotFound, "no saved order named %q", name).
				WithDetail("path", path)
		}
		return errors.Wrap(err, errors.ErrFileWrite, "failed to delete saved order").
			WithDetail("path", path)
	}
	return nil
}
