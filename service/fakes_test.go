package service

import (
	"Shotshelf/dao/cache"
	"Shotshelf/models"
	"Shotshelf/types"
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"

	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

type fakeGroupRepo struct {
	mu     sync.Mutex
	groups map[string]*models.Group
	err    error
}

func newFakeGroupRepo(groups ...*models.Group) *fakeGroupRepo {
	r := &fakeGroupRepo{groups: make(map[string]*models.Group)}
	for _, g := range groups {
		r.groups[g.Id] = g
	}
	return r
}

func (r *fakeGroupRepo) CreateGroup(_ context.Context, group *models.Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if group.Id == "" {
		group.Id = "group-" + group.Name
	}
	r.groups[group.Id] = group
	return nil
}

func (r *fakeGroupRepo) FindByID(_ context.Context, gid string) (*models.Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.groups[gid]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return g, nil
}

func (r *fakeGroupRepo) ListGroups(context.Context) ([]models.Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Group, 0, len(r.groups))
	for _, g := range r.groups {
		out = append(out, *g)
	}
	return out, nil
}

func (r *fakeGroupRepo) Exists(_ context.Context, gid string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.groups[gid]
	return ok, r.err
}

type fakeImageRepo struct {
	mu        sync.Mutex
	images    []*models.Image
	listErr   error
	createErr error
	failWrite map[string]bool
	writes    []string
	calls     int
}

func newFakeImageRepo(images ...*models.Image) *fakeImageRepo {
	return &fakeImageRepo{images: images, failWrite: make(map[string]bool)}
}

func (r *fakeImageRepo) CreateImage(_ context.Context, image *models.Image) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	if image.Id == "" {
		image.Id = "img-" + image.FilePath
	}
	r.images = append(r.images, image)
	return nil
}

func (r *fakeImageRepo) ListUncategorized(_ context.Context, groupId string) ([]models.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]models.Image, 0)
	for _, img := range r.images {
		if img.GroupId == groupId && img.Category == nil {
			out = append(out, *img)
		}
	}
	return out, nil
}

func (r *fakeImageRepo) ListByGroupOrderByCategory(_ context.Context, groupId string) ([]models.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]models.Image, 0)
	for _, img := range r.images {
		if img.GroupId == groupId {
			out = append(out, *img)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return deref(out[i].Category) < deref(out[j].Category)
	})
	return out, nil
}

func (r *fakeImageRepo) ListByGroup(_ context.Context, groupId, category string) ([]models.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Image, 0)
	for _, img := range r.images {
		if img.GroupId != groupId {
			continue
		}
		if category != "" && deref(img.Category) != category {
			continue
		}
		out = append(out, *img)
	}
	return out, nil
}

func (r *fakeImageRepo) UpdateCategory(_ context.Context, id, category string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWrite[id] {
		return errors.New("write rejected")
	}
	for _, img := range r.images {
		if img.Id == id {
			c := category
			img.Category = &c
			r.writes = append(r.writes, id)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeImageRepo) Categories(_ context.Context, groupId string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, img := range r.images {
		if img.GroupId == groupId && img.Category != nil && !seen[*img.Category] {
			seen[*img.Category] = true
			out = append(out, *img.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *fakeImageRepo) find(id string) *models.Image {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, img := range r.images {
		if img.Id == id {
			return img
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type fakeStorage struct {
	mu        sync.Mutex
	uploaded  map[string][]byte
	deleted   []string
	uploadErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploaded: make(map[string][]byte)}
}

func (s *fakeStorage) Upload(_ context.Context, objectKey string, reader io.Reader, _ string) error {
	if s.uploadErr != nil {
		return s.uploadErr
	}
	b, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploaded[objectKey] = b
	return nil
}

func (s *fakeStorage) Delete(_ context.Context, objectKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.uploaded, objectKey)
	s.deleted = append(s.deleted, objectKey)
	return nil
}

func (s *fakeStorage) PublicURL(objectKey string) (string, error) {
	if objectKey == "" {
		return "", errors.New("empty object key")
	}
	return "https://cdn.test/" + objectKey, nil
}

// fakeClassifier 按 URL 中的关键字返回分类，含 "panic" 时直接 panic
type fakeClassifier struct {
	mu    sync.Mutex
	calls []string
	label string
}

func (c *fakeClassifier) Classify(ctx context.Context, imageURL string) string {
	c.mu.Lock()
	c.calls = append(c.calls, imageURL)
	c.mu.Unlock()

	if _, ok := ctx.Deadline(); !ok {
		panic("classify called without deadline")
	}
	if strings.Contains(imageURL, "panic") {
		panic("vision model exploded")
	}
	if c.label != "" {
		return c.label
	}
	return types.CategoryUIDesign
}

type fakeFigma struct {
	mu    sync.Mutex
	calls int
	key   string
	err   error
}

func (f *fakeFigma) CreateFile(_ context.Context, accessToken, name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.key, nil
}

func (f *fakeFigma) FileURL(fileKey string) string {
	return "https://www.figma.com/file/" + fileKey
}

type fakeExportRepo struct {
	mu      sync.Mutex
	exports []*models.Export
	err     error
}

func (r *fakeExportRepo) CreateExport(_ context.Context, export *models.Export) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.exports = append(r.exports, export)
	return nil
}

func (r *fakeExportRepo) FindLatestByFileKey(_ context.Context, fileKey string) (*models.Export, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.exports) - 1; i >= 0; i-- {
		if r.exports[i].FileKey == fileKey {
			return r.exports[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeManifestCache struct {
	mu        sync.Mutex
	manifests map[string]*types.ExportManifest
	sets      int
}

func newFakeManifestCache() *fakeManifestCache {
	return &fakeManifestCache{manifests: make(map[string]*types.ExportManifest)}
}

func (c *fakeManifestCache) Set(_ context.Context, manifest *types.ExportManifest) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.manifests[manifest.FileKey] = manifest
	return nil
}

func (c *fakeManifestCache) Get(_ context.Context, fileKey string) (*types.ExportManifest, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.manifests[fileKey]
	if !ok {
		return nil, cache.ErrManifestMiss
	}
	return m, nil
}
