package models

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

type OpenAILLM struct {
	Client *openai.Client
	Model  string
}

func NewOpenAILLM(apiKey, model string) *OpenAILLM {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAILLM{Client: openai.NewClient(apiKey), Model: model}
}

func (o *OpenAILLM) Name() string { return "OpenAI" }

func (o *OpenAILLM) GenerateParts(ctx context.Context, parts []Part) (string, error) {
	texts, images := splitParts(parts)
	prompt := strings.Join(texts, "\n\n")

	msg := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser}
	if len(images) == 0 {
		msg.Content = prompt
	} else {
		msg.MultiContent = []openai.ChatMessagePart{{
			Type: openai.ChatMessagePartTypeText,
			Text: prompt,
		}}
		for _, img := range images {
			mt := getOpenAIMimeType(img.MIME)
			if mt == "" {
				return "", fmt.Errorf("openai: unsupported image type %q", img.MIME)
			}
			dataURL := fmt.Sprintf("data:%s;base64,%s", mt, base64.StdEncoding.EncodeToString(img.Data))
			msg.MultiContent = append(msg.MultiContent, openai.ChatMessagePart{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL:    dataURL,
					Detail: openai.ImageURLDetailAuto,
				},
			})
		}
	}

	resp, err := o.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    o.Model,
		Messages: []openai.ChatCompletionMessage{msg},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response from OpenAI")
	}
	return resp.Choices[0].Message.Content, nil
}

var _ Model = (*OpenAILLM)(nil)
