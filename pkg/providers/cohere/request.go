package cohere

import "github.com/nerdneilsfield/cohere-translator/pkg/translation"

// 聊天历史中的角色
const (
	RoleSystem  = "SYSTEM"
	RoleUser    = "USER"
	RoleChatbot = "CHATBOT"
)

// Message 聊天历史中的一条消息
type Message struct {
	Role    string `json:"role"`
	Message string `json:"message"`
}

// ChatRequest /v1/chat 请求体
type ChatRequest struct {
	Model       string    `json:"model,omitempty"`
	ChatHistory []Message `json:"chat_history"`
	Message     string    `json:"message"`
	Stream      bool      `json:"stream"`
}

// BuildChatRequest 组装请求体：系统指令放入聊天历史，用户指令与原文拼接为消息
func BuildChatRequest(model string, prompt translation.Prompt, text string) ChatRequest {
	return ChatRequest{
		Model: model,
		ChatHistory: []Message{
			{Role: RoleSystem, Message: prompt.System},
		},
		Message: prompt.User + text,
		Stream:  true,
	}
}
