package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"velya/internal/entities"
)

const systemPrompt = "أنت مساعد ذكي رجولي يتقن جميع اللهجات العربية ومتخصص في بيع الأحذية."

// promptTemplate scopes the model to the storefront. Off-topic
// questions get redirected instead of answered.
const promptTemplate = `
أنت مساعد ذكي رجولي من المغرب، تتحدث وتفهم جميع اللهجات العربية، بما في ذلك الدارجة المغربية، اللهجة المصرية، الشامية، والخليجية، حتى لو كانت الكتابة غير رسمية أو تحتوي على أخطاء إملائية.

أنت مختص في متجر لبيع الأحذية.

تجيب فقط على الأسئلة المتعلقة بـ:
- أنواع الأحذية المتوفرة
- المقاسات، الأسعار، الألوان
- العروض، التوفر، المخزون
- طرق التوصيل، سياسة الإرجاع، ووسائل الدفع

⚠️ إذا كان السؤال خارج هذه المواضيع، أجب بلطف:
"أنا مختص فقط في بيع الأحذية. من فضلك أعد صياغة سؤالك."

💡 رسالة المستخدم (اللغة المكتشفة: %s):
"%s"

أجب باللهجة التي فهمتها، وكن واضحًا، مختصرًا، واحترافيًا.`

var errEmptyCompletion = errors.New("empty completion from model")

// OpenRouterClient calls the OpenRouter chat completion API through
// the OpenAI wire protocol. Transient failures are retried with a
// fixed delay; client-side errors fail immediately.
type OpenRouterClient struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	timeout     time.Duration
	maxAttempts int
	retryDelay  time.Duration
	log         *zap.Logger
}

type OpenRouterOptions struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
	MaxAttempts int
	RetryDelay  time.Duration
}

func NewOpenRouterClient(opts OpenRouterOptions, log *zap.Logger) *OpenRouterClient {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 3
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = time.Second
	}
	return &OpenRouterClient{
		client:      openai.NewClientWithConfig(cfg),
		model:       opts.Model,
		temperature: opts.Temperature,
		maxTokens:   opts.MaxTokens,
		timeout:     opts.Timeout,
		maxAttempts: opts.MaxAttempts,
		retryDelay:  opts.RetryDelay,
		log:         log,
	}
}

// Complete asks the model for a reply in the customer's language.
func (c *OpenRouterClient) Complete(ctx context.Context, userText string, locale entities.Locale) (string, error) {
	prompt := strings.TrimSpace(fmt.Sprintf(promptTemplate, string(locale), userText))

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		content, err := c.attempt(ctx, prompt)
		if err == nil {
			return content, nil
		}
		lastErr = err

		if !isRetryable(err) {
			c.log.Warn("generative call failed permanently",
				zap.Int("attempt", attempt),
				zap.Error(err))
			return "", err
		}

		c.log.Warn("generative call failed",
			zap.Int("attempt", attempt),
			zap.Int("attempts_left", c.maxAttempts-attempt),
			zap.Error(err))

		if attempt < c.maxAttempts {
			select {
			case <-time.After(c.retryDelay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}
	return "", fmt.Errorf("generative service unavailable after %d attempts: %w", c.maxAttempts, lastErr)
}

func (c *OpenRouterClient) attempt(ctx context.Context, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature:      c.temperature,
		MaxTokens:        c.maxTokens,
		PresencePenalty:  0.5,
		FrequencyPenalty: 0.4,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", errEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

// isRetryable treats rate limiting, server errors and transport
// failures as transient. Malformed requests and empty completions are
// not going to improve on retry.
func isRetryable(err error) bool {
	if errors.Is(err, errEmptyCompletion) {
		return false
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == 429 || apiErr.HTTPStatusCode >= 500
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == 429 || reqErr.HTTPStatusCode >= 500
	}
	// transport-level failure, timeout included
	return true
}
