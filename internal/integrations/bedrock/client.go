// Package bedrock sends chat turns to a model hosted on Amazon Bedrock using
// the Converse API.
package bedrock

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	brtypes "github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"

	"bodyshop-chat/internal/domain"
)

// converseAPI is the minimal Bedrock runtime interface required by Client.
// *bedrockruntime.Client satisfies it.
type converseAPI interface {
	Converse(ctx context.Context, params *bedrockruntime.ConverseInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error)
}

// Client calls one Bedrock model with a fixed output budget.
type Client struct {
	api       converseAPI
	modelID   string
	maxTokens int32
}

// New creates a Client for modelID.
func New(api converseAPI, modelID string, maxTokens int) (*Client, error) {
	if api == nil {
		return nil, errors.New("bedrock: api must not be nil")
	}
	modelID = strings.TrimSpace(modelID)
	if modelID == "" {
		return nil, errors.New("bedrock: model id must not be empty")
	}
	if maxTokens <= 0 {
		maxTokens = 1000
	}
	return &Client{api: api, modelID: modelID, maxTokens: int32(maxTokens)}, nil
}

// Provider names the backend for metrics and logs.
func (c *Client) Provider() string {
	return "bedrock"
}

// Chat sends the history with the system prompt and returns the reply text.
func (c *Client) Chat(ctx context.Context, system string, history []domain.ChatMessage) (string, error) {
	turns := domain.Turns(history)
	if len(turns) == 0 {
		return "", errors.New("bedrock: no user message to send")
	}

	messages := make([]brtypes.Message, 0, len(turns))
	for _, m := range turns {
		role := brtypes.ConversationRoleUser
		if m.Role == domain.RoleAssistant {
			role = brtypes.ConversationRoleAssistant
		}
		messages = append(messages, brtypes.Message{
			Role:    role,
			Content: []brtypes.ContentBlock{&brtypes.ContentBlockMemberText{Value: m.Content}},
		})
	}

	var systemBlocks []brtypes.SystemContentBlock
	if strings.TrimSpace(system) != "" {
		systemBlocks = append(systemBlocks, &brtypes.SystemContentBlockMemberText{Value: system})
	}

	out, err := c.api.Converse(ctx, &bedrockruntime.ConverseInput{
		ModelId:         aws.String(c.modelID),
		System:          systemBlocks,
		Messages:        messages,
		InferenceConfig: &brtypes.InferenceConfiguration{MaxTokens: aws.Int32(c.maxTokens)},
	})
	if err != nil {
		return "", fmt.Errorf("bedrock: converse: %w", err)
	}
	return outputText(out)
}

func outputText(out *bedrockruntime.ConverseOutput) (string, error) {
	if out == nil {
		return "", errors.New("bedrock: response is nil")
	}
	msg, ok := out.Output.(*brtypes.ConverseOutputMemberMessage)
	if !ok {
		return "", errors.New("bedrock: response did not include a message output")
	}

	var b strings.Builder
	for _, block := range msg.Value.Content {
		if text, ok := block.(*brtypes.ContentBlockMemberText); ok {
			b.WriteString(text.Value)
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", errors.New("bedrock: response contained no text content")
	}
	return text, nil
}
