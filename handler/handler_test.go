package handler

import (
	"Shotshelf/models"
	"Shotshelf/service"
	"Shotshelf/types"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategorizeService struct {
	outcome *types.CategorizeOutcome
	err     error
	calls   []string
}

func (f *fakeCategorizeService) Categorize(_ context.Context, groupId string) (*types.CategorizeOutcome, error) {
	f.calls = append(f.calls, groupId)
	if groupId == "" {
		return nil, &service.Error{Kind: service.ErrInvalidArgument, Msg: "groupId is required"}
	}
	return f.outcome, f.err
}

type fakeExportService struct {
	result   *types.ExportResult
	manifest *types.ExportManifest
	err      error
}

func (f *fakeExportService) Export(context.Context, *types.ExportRequest) (*types.ExportResult, error) {
	return f.result, f.err
}

func (f *fakeExportService) GetManifest(_ context.Context, fileKey string) (*types.ExportManifest, error) {
	if f.manifest == nil || f.manifest.FileKey != fileKey {
		return nil, &service.Error{Kind: service.ErrNotFound, Msg: "Manifest not found"}
	}
	return f.manifest, nil
}

type fakeGroupService struct {
	group *models.Group
}

func (f *fakeGroupService) CreateGroup(_ context.Context, req *types.CreateGroupRequest) (*models.Group, error) {
	return &models.Group{Id: "g-new", Name: req.Name}, nil
}

func (f *fakeGroupService) ListGroups(context.Context) ([]models.Group, error) {
	return []models.Group{*f.group}, nil
}

func (f *fakeGroupService) GetGroup(_ context.Context, groupId string) (*models.Group, error) {
	if groupId != f.group.Id {
		return nil, &service.Error{Kind: service.ErrNotFound, Msg: "Group not found"}
	}
	return f.group, nil
}

type fakeImageService struct {
	uploaded []string
	category string
}

func (f *fakeImageService) UploadImages(_ context.Context, groupId string, headers []*multipart.FileHeader) (*types.UploadImagesResp, error) {
	resp := &types.UploadImagesResp{Images: []types.ImageItem{}, Failed: []types.UploadFailure{}}
	for _, h := range headers {
		f.uploaded = append(f.uploaded, h.Filename)
		resp.Images = append(resp.Images, types.ImageItem{Id: h.Filename, GroupId: groupId, FileName: h.Filename})
	}
	return resp, nil
}

func (f *fakeImageService) ListImages(_ context.Context, groupId, category string) ([]types.ImageItem, error) {
	f.category = category
	return []types.ImageItem{{Id: "a", GroupId: groupId}}, nil
}

func (f *fakeImageService) ListCategories(context.Context, string) ([]string, error) {
	return []string{types.CategoryBranding}, nil
}

func newRouter(registrars ...interface{ RegisterRouter(gin.IRouter) }) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	for _, h := range registrars {
		h.RegisterRouter(api)
	}
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCategorizeImages(t *testing.T) {
	t.Run("missing groupId", func(t *testing.T) {
		r := newRouter(&Categorize{CategorizeService: &fakeCategorizeService{}})
		w := doJSON(r, http.MethodPost, "/api/v1/categorize-images", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"groupId is required"}`, w.Body.String())
	})

	t.Run("empty body", func(t *testing.T) {
		r := newRouter(&Categorize{CategorizeService: &fakeCategorizeService{}})
		w := doJSON(r, http.MethodPost, "/api/v1/categorize-images", ``)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("nothing pending", func(t *testing.T) {
		r := newRouter(&Categorize{CategorizeService: &fakeCategorizeService{outcome: &types.CategorizeOutcome{}}})
		w := doJSON(r, http.MethodPost, "/api/v1/categorize-images", `{"groupId":"g1"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"No uncategorized images found"}`, w.Body.String())
	})

	t.Run("results", func(t *testing.T) {
		svc := &fakeCategorizeService{outcome: &types.CategorizeOutcome{
			Pending: 2,
			Results: types.CategorizeCounts{Success: 1, Failed: 1},
		}}
		r := newRouter(&Categorize{CategorizeService: svc})
		w := doJSON(r, http.MethodPost, "/api/v1/categorize-images", `{"groupId":"g1"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Categorization complete","results":{"success":1,"failed":1}}`, w.Body.String())
		assert.Equal(t, []string{"g1"}, svc.calls)
	})

	t.Run("query failure", func(t *testing.T) {
		r := newRouter(&Categorize{CategorizeService: &fakeCategorizeService{err: errors.New("fetch uncategorized images: db down")}})
		w := doJSON(r, http.MethodPost, "/api/v1/categorize-images", `{"groupId":"g1"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"fetch uncategorized images: db down"}`, w.Body.String())
	})
}

func TestExportToFigma(t *testing.T) {
	manifest := &types.ExportManifest{FileKey: "FK", Categories: []types.ManifestCategory{
		{Category: types.CategoryUIDesign, Images: []types.ManifestImage{{Name: "a.png", Url: "https://cdn/a.png"}}},
	}}

	t.Run("success", func(t *testing.T) {
		r := newRouter(&Export{ExportService: &fakeExportService{result: &types.ExportResult{
			FileKey: "FK", FileUrl: "https://www.figma.com/file/FK", Manifest: manifest,
		}}})
		w := doJSON(r, http.MethodPost, "/api/v1/export-to-figma", `{"groupId":"g1","groupName":"n","figmaAccessToken":"t"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp types.ExportResp
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "Export to Figma completed", resp.Message)
		assert.Equal(t, "FK", resp.FigmaFileKey)
		assert.Equal(t, "https://www.figma.com/file/FK", resp.FigmaUrl)
		assert.Equal(t, manifest, resp.Manifest)
	})

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid", &service.Error{Kind: service.ErrInvalidArgument, Msg: "groupId, groupName, and figmaAccessToken are required"}, http.StatusBadRequest},
		{"no images", &service.Error{Kind: service.ErrNotFound, Msg: "No images found in this group"}, http.StatusNotFound},
		{"figma failure", errors.New("failed to create figma file: Invalid token"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter(&Export{ExportService: &fakeExportService{err: tc.err}})
			w := doJSON(r, http.MethodPost, "/api/v1/export-to-figma", `{"groupId":"g1"}`)
			assert.Equal(t, tc.status, w.Code)
			assert.JSONEq(t, `{"error":"`+tc.err.Error()+`"}`, w.Body.String())
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		r := newRouter(&Export{ExportService: &fakeExportService{}})
		w := doJSON(r, http.MethodPost, "/api/v1/export-to-figma", `{"groupId":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("manifest", func(t *testing.T) {
		r := newRouter(&Export{ExportService: &fakeExportService{manifest: manifest}})
		w := doJSON(r, http.MethodGet, "/api/v1/exports/FK/manifest", "")
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(r, http.MethodGet, "/api/v1/exports/other/manifest", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Manifest not found"}`, w.Body.String())
	})
}

func TestGroupHandler(t *testing.T) {
	created := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	groups := &fakeGroupService{group: &models.Group{Id: "g1", Name: "Inspiration", CreatedAt: created, UpdatedAt: created}}
	images := &fakeImageService{}
	categorize := &fakeCategorizeService{outcome: &types.CategorizeOutcome{Pending: 1, Results: types.CategorizeCounts{Success: 1}}}
	r := newRouter(&GroupHandler{GroupService: groups, ImageService: images, CategorizeService: categorize})

	t.Run("create requires name", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/v1/groups", `{"description":"x"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("create", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/v1/groups", `{"name":"Mobile"}`)
		require.Equal(t, http.StatusOK, w.Code)
		var resp types.GroupResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "g-new", resp.Id)
		assert.Equal(t, "Mobile", resp.Name)
	})

	t.Run("get", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/v1/groups/g1", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"created_at":"2024-05-01T08:00:00Z"`)

		w = doJSON(r, http.MethodGet, "/api/v1/groups/missing", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("list", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/v1/groups", "")
		require.Equal(t, http.StatusOK, w.Code)
		var resp []types.GroupResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp, 1)
	})

	t.Run("upload and categorize", func(t *testing.T) {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		for _, name := range []string{"a.png", "b.png"} {
			part, err := mw.CreateFormFile("files", name)
			require.NoError(t, err)
			_, _ = part.Write([]byte("img"))
		}
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/groups/g1/images?categorize=true", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp types.UploadImagesResp
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Images, 2)
		require.NotNil(t, resp.Categorize)
		assert.Equal(t, 1, resp.Categorize.Results.Success)
		assert.ElementsMatch(t, []string{"a.png", "b.png"}, images.uploaded)
		assert.Equal(t, []string{"g1"}, categorize.calls)
	})

	t.Run("upload without form", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/v1/groups/g1/images", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("images by category", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/v1/groups/g1/images?category=Branding", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, types.CategoryBranding, images.category)
	})

	t.Run("categories", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/v1/groups/g1/categories", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `["Branding"]`, w.Body.String())
	})
}

func TestListTaxonomy(t *testing.T) {
	r := newRouter(&Category{})
	w := doJSON(r, http.MethodGet, "/api/v1/categories", "")
	require.Equal(t, http.StatusOK, w.Code)

	var categories []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	assert.Equal(t, types.Taxonomy(), categories)
}
