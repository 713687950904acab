package llm

import (
	"Shotshelf/config"
	"Shotshelf/pkg/log"
	"Shotshelf/types"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
)

// Classifier 调用视觉模型给截图打一个分类标签
type Classifier struct {
	client    openai.Client
	enabled   bool
	model     string
	maxTokens int64
	timeout   time.Duration
}

func NewClassifier(cfg *config.LLMConfig) *Classifier {
	c := &Classifier{
		enabled:   cfg.APIKey != "",
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
	}
	if c.enabled {
		c.client = openai.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(cfg.BaseURL),
			option.WithMaxRetries(0),
		)
	}
	return c
}

// Classify 总是返回分类体系中的一个标签，任何失败都走关键词兜底
func (c *Classifier) Classify(ctx context.Context, imageURL string) (category string) {
	if !c.enabled {
		log.L.Warn("llm api key not configured, using fallback categorization", zap.String("url", imageURL))
		return FallbackCategory(imageURL)
	}

	defer func() {
		if r := recover(); r != nil {
			log.L.Error("classify panic", zap.Any("panic", r), zap.String("url", imageURL))
			category = FallbackCategory(imageURL)
		}
	}()

	reply, err := c.complete(ctx, imageURL)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			log.L.Error("llm api error",
				zap.Int("status", apiErr.StatusCode),
				zap.String("body", apiErr.RawJSON()),
				zap.String("url", imageURL),
			)
		} else {
			log.L.Error("failed to classify image", zap.Error(err), zap.String("url", imageURL))
		}
		return FallbackCategory(imageURL)
	}

	if types.IsCategory(reply) {
		return reply
	}
	log.L.Info("llm reply outside taxonomy", zap.String("reply", reply), zap.String("url", imageURL))
	return types.CategoryOther
}

func (c *Classifier) complete(ctx context.Context, imageURL string) (string, error) {
	contentParts := []openai.ChatCompletionContentPartUnionParam{
		{
			OfText: &openai.ChatCompletionContentPartTextParam{
				Text: categorizePrompt,
			},
		},
		{
			OfImageURL: &openai.ChatCompletionContentPartImageParam{
				ImageURL: openai.ChatCompletionContentPartImageImageURLParam{
					URL: imageURL,
				},
			},
		},
	}
	userMessage := openai.ChatCompletionUserMessageParam{
		Content: openai.ChatCompletionUserMessageParamContentUnion{
			OfArrayOfContentParts: contentParts,
		},
	}
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			{OfUser: &userMessage},
		},
		MaxTokens: openai.Int(c.maxTokens),
	}

	startTime := time.Now()
	completion, err := c.client.Chat.Completions.New(ctx, params, option.WithRequestTimeout(c.timeout))
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", nil
	}
	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	log.L.Info("classify image", zap.String("category", content), zap.Duration("gen time", time.Since(startTime)))
	return content, nil
}
