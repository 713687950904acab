package service

import (
	"Shotshelf/config"
	"Shotshelf/models"
	"Shotshelf/pkg/log"
	"Shotshelf/pkg/utils"
	"Shotshelf/types"
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

var categorizedImagesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "shotshelf_categorized_images_total",
		Help: "Images processed by the categorization pipeline",
	},
	[]string{"result"},
)

func init() {
	prometheus.MustRegister(categorizedImagesTotal)
}

var _ ICategorizeService = (*CategorizeService)(nil)

type ICategorizeService interface {
	// Categorize 给分组内所有未分类的图片打标签，返回成功/失败计数
	Categorize(ctx context.Context, groupId string) (*types.CategorizeOutcome, error)
}

type CategorizeService struct {
	Config     *config.Categorize
	ImageRepo  ImageRepository
	Storage    IStorageService
	Classifier ImageClassifier
}

func (s *CategorizeService) Categorize(ctx context.Context, groupId string) (*types.CategorizeOutcome, error) {
	if strings.TrimSpace(groupId) == "" {
		return nil, invalidArgument("groupId is required")
	}

	images, err := s.ImageRepo.ListUncategorized(ctx, groupId)
	if err != nil {
		return nil, fmt.Errorf("fetch uncategorized images: %w", err)
	}

	outcome := &types.CategorizeOutcome{Pending: len(images)}
	if len(images) == 0 {
		return outcome, nil
	}

	var success, failed atomic.Int64
	startTime := time.Now()

	p := pool.New().WithMaxGoroutines(s.workers())
	for i := range images {
		img := images[i]
		p.Go(func() {
			if err := s.categorizeOne(ctx, &img); err != nil {
				failed.Add(1)
				categorizedImagesTotal.WithLabelValues("failed").Inc()
				log.L.Error("categorize image failed", zap.String("image_id", img.Id), zap.Error(err))
				return
			}
			success.Add(1)
			categorizedImagesTotal.WithLabelValues("success").Inc()
		})
	}
	p.Wait()

	outcome.Results = types.CategorizeCounts{
		Success: int(success.Load()),
		Failed:  int(failed.Load()),
	}
	log.L.Info("categorization complete",
		zap.String("group_id", groupId),
		zap.Int("success", outcome.Results.Success),
		zap.Int("failed", outcome.Results.Failed),
		zap.Duration("cost", time.Since(startTime)),
	)
	return outcome, nil
}

// categorizeOne 单张图片的处理，panic 也算作失败
func (s *CategorizeService) categorizeOne(ctx context.Context, img *models.Image) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.L.Error("categorize panic", zap.String("trace", utils.PanicTrace(r)))
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	url, err := s.Storage.PublicURL(img.FilePath)
	if err != nil {
		return fmt.Errorf("resolve public url: %w", err)
	}

	classifyCtx, cancel := context.WithTimeout(ctx, s.Config.ItemTimeout)
	category := s.Classifier.Classify(classifyCtx, url)
	cancel()

	if err := s.ImageRepo.UpdateCategory(ctx, img.Id, category); err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

func (s *CategorizeService) workers() int {
	if s.Config.Workers < 1 {
		return 1
	}
	return s.Config.Workers
}
